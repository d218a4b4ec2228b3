package planner

import (
	"slices"
	"time"
)

// compoundRatio is the share of compound exercises per goal.
var compoundRatio = map[Goal]float64{
	GoalStrength:      0.75,
	GoalMass:          0.6,
	GoalEndurance:     0.5,
	GoalReduction:     0.55,
	GoalRecomposition: 0.6,
}

// weekdayOrder sorts training days Monday first.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// pickSplit chooses the weekly split template for the profile. Lower back
// injuries override focus preferences: safety wins over the requested bias
// and the classic PPL structure is replaced with spine-friendly templates.
func pickSplit(p Profile) SplitTemplate {
	hasLowerBackInjury := slices.Contains(p.Injuries, "lower_back") ||
		slices.Contains(p.Injuries, "herniated_disc")

	focus := p.FocusBody
	if hasLowerBackInjury && focus == FocusLower {
		focus = FocusBalanced
	}

	days := p.DaysPerWeek

	if hasLowerBackInjury {
		if p.Experience == ExperienceBeginner {
			switch {
			case days <= 2:
				return splitTemplates["FBW_2"]
			case days <= 3:
				return splitTemplates["FBW_3"]
			default:
				return splitTemplates["MODIFIED_PP_4"]
			}
		}
		switch {
		case days <= 2:
			return splitTemplates["FBW_2"]
		case days == 3:
			return splitTemplates["FBW_3"]
		case days == 4:
			return splitTemplates["MODIFIED_PP_4"]
		case days == 5:
			return splitTemplates["MODIFIED_PP_5"]
		default:
			return splitTemplates["MODIFIED_PP_6"]
		}
	}

	switch focus {
	case FocusLower:
		switch {
		case days <= 2:
			return splitTemplates["FBW_2"]
		case days == 3:
			return splitTemplates["FBW_3"]
		case days == 4:
			return splitTemplates["LOWER_FOCUS_4"]
		default:
			return splitTemplates["LOWER_FOCUS_5"]
		}
	case FocusUpper:
		switch {
		case days <= 2:
			return splitTemplates["FBW_2"]
		case days == 3:
			// PPL gives two upper days out of three.
			return splitTemplates["PPL_3"]
		case days == 4:
			return splitTemplates["UPPER_FOCUS_4"]
		default:
			return splitTemplates["UPPER_FOCUS_5"]
		}
	case FocusCore:
		// Core work belongs in every session, so the three-day full-body
		// structure is used regardless of the requested day count.
		return splitTemplates["CORE_FOCUS_3"]
	}

	if p.Experience == ExperienceBeginner {
		switch {
		case days <= 2:
			return splitTemplates["FBW_2"]
		case days <= 3:
			return splitTemplates["FBW_3"]
		default:
			return splitTemplates["ULUL_4"]
		}
	}

	switch {
	case days <= 2:
		return splitTemplates["FBW_2"]
	case days == 3:
		if p.Goal == GoalMass || p.Goal == GoalStrength {
			return splitTemplates["PPL_3"]
		}
		return splitTemplates["FBW_3"]
	case days == 4:
		return splitTemplates["ULUL_4"]
	case days == 5:
		return splitTemplates["ULPPL_5"]
	default:
		return splitTemplates["PPL_6"]
	}
}

// SelectTrainingDays picks weekdays for the split. Preferred days are spread
// evenly when there are more than needed, topped up from the remaining week
// when there are fewer, and fixed default spreads apply when none are given.
func SelectTrainingDays(needed int, preferred []time.Weekday) []time.Weekday {
	sorted := make([]time.Weekday, 0, len(preferred))
	for _, d := range weekdayOrder {
		if slices.Contains(preferred, d) {
			sorted = append(sorted, d)
		}
	}

	if len(sorted) == 0 {
		defaults := map[int][]time.Weekday{
			2: {time.Monday, time.Thursday},
			3: {time.Monday, time.Wednesday, time.Friday},
			4: {time.Monday, time.Tuesday, time.Thursday, time.Friday},
			5: {time.Monday, time.Tuesday, time.Wednesday, time.Friday, time.Saturday},
			6: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
			7: weekdayOrder,
		}
		if days, ok := defaults[needed]; ok {
			return days
		}
		return defaults[3]
	}

	if len(sorted) >= needed {
		step := float64(len(sorted)) / float64(needed)
		selected := make([]time.Weekday, 0, needed)
		for i := range needed {
			selected = append(selected, sorted[int(float64(i)*step)])
		}
		return selected
	}

	selected := slices.Clone(sorted)
	for _, d := range weekdayOrder {
		if len(selected) >= needed {
			break
		}
		if !slices.Contains(selected, d) {
			selected = append(selected, d)
		}
	}
	slices.SortFunc(selected, func(a, b time.Weekday) int {
		return slices.Index(weekdayOrder, a) - slices.Index(weekdayOrder, b)
	})
	return selected
}

// sessionPlan sizes one training day: how many exercises fit the session and
// how they divide between compounds and isolations.
type sessionPlan struct {
	ExerciseCount  int
	CompoundCount  int
	IsolationCount int
	// AvgTimePerExercise is minutes budgeted per exercise.
	AvgTimePerExercise float64
	SessionTime        int
}

// calculateSessionPlan derives the exercise count from session length, goal,
// and experience. One exercise takes roughly 8 to 10 minutes including rest
// and equipment changes.
func calculateSessionPlan(sessionTime int, goal Goal, experience Experience) sessionPlan {
	var base int
	switch {
	case sessionTime <= 30:
		base = 3
	case sessionTime <= 45:
		base = 4
	case sessionTime <= 60:
		base = 5
	case sessionTime <= 75:
		base = 6
	case sessionTime <= 90:
		base = 7
	default:
		base = 8
	}

	switch goal {
	case GoalEndurance, GoalReduction:
		base++ // shorter rests fit more exercises
	case GoalStrength:
		base-- // long rests fit fewer
	}
	switch experience {
	case ExperienceBeginner:
		base--
	case ExperienceAdvanced:
		base++
	}

	base = max(3, min(base, 10))

	ratio, ok := compoundRatio[goal]
	if !ok {
		ratio = 0.6
	}
	compounds := int(float64(base)*ratio + 0.5)

	return sessionPlan{
		ExerciseCount:      base,
		CompoundCount:      compounds,
		IsolationCount:     base - compounds,
		AvgTimePerExercise: float64(sessionTime) / float64(base),
		SessionTime:        sessionTime,
	}
}
