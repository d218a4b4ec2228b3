package planner

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// scoreContext carries the block and profile inputs that weigh a candidate.
type scoreContext struct {
	Patterns     []Pattern
	MuscleGroups []string
	Profile      Profile
	WeakMuscles  []string
	FocusParts   []string
	Filter       filterContext
	Rand         *rand.Rand
}

// normalizePattern folds catalog pattern aliases into the canonical set.
func normalizePattern(p Pattern) Pattern {
	switch p {
	case "":
		return PatternAccessory
	case "carry", "isolation":
		return PatternAccessory
	default:
		return p
	}
}

// experienceRank orders experience levels for difficulty comparison.
func experienceRank(e Experience) int {
	switch e {
	case ExperienceBeginner:
		return 1
	case ExperienceAdvanced:
		return 3
	default:
		return 2
	}
}

func isPriorityExercise(code string) bool {
	for _, list := range priorityExercises {
		for _, priority := range list {
			if strings.Contains(code, priority) || strings.Contains(priority, code) {
				return true
			}
		}
	}
	return false
}

func isClassicExercise(code string) bool {
	for _, classic := range classicExercises {
		if strings.Contains(code, classic) || strings.Contains(classic, code) {
			return true
		}
	}
	return false
}

// scoreExercise rates one candidate for a block. Higher is better. Equipment
// quality dominates when the user owns real weights; the focus-body bonus is
// deliberately enormous so a focus region beats even the most popular
// exercises from other regions. A small random jitter breaks ties so
// repeated generations vary.
func scoreExercise(ex Exercise, sc scoreContext) float64 {
	score := 50.0
	code := strings.ToLower(ex.Code)
	equipment := normalizeEquipment(ex.Equipment)

	if sc.Filter.HasWeightedEquipment {
		if slices.Contains(trueWeightedEquipment, equipment) {
			score += 50 - float64(slices.Index(weightedEquipmentPriority, equipment)*5)
		} else if equipment == "bodyweight" {
			isCore := ex.Pattern == PatternCore || strings.EqualFold(ex.BodyPart, "CORE")
			isPullUp := strings.Contains(code, "pull_up") || strings.Contains(code, "chin_up")
			switch {
			case isCore:
				score -= 5
			case isPullUp:
				score -= 10
			default:
				score -= 40
			}
		} else if equipment == "band" {
			score -= 20
		}
	}

	if sc.Profile.Experience == ExperienceBeginner && sc.Filter.BodyweightOnly {
		for hard := range beginnerRegressions {
			if strings.Contains(code, hard) {
				score -= 60
				break
			}
		}
	regressions:
		for _, easier := range beginnerRegressions {
			for _, regression := range easier {
				if strings.Contains(code, regression) {
					score += 30
					break regressions
				}
			}
		}
	}

	if sc.Profile.FatigueTolerance == FatigueLow {
		switch {
		case ex.FatigueScore >= 7:
			score -= 40
		case ex.FatigueScore >= 5:
			score -= 15
		}
	}

	switch ex.Tier {
	case TierOptimal:
		score += 40
	case TierStandard:
		score += 20
	}

	if slices.Contains(sc.Patterns, normalizePattern(ex.Pattern)) {
		score += 25
	}

	if muscleGroupMatch(ex.PrimaryMuscle, sc.MuscleGroups) {
		score += 20
	}

	exRank := experienceRank(ex.Difficulty)
	userRank := experienceRank(sc.Profile.Experience)
	switch {
	case exRank == userRank:
		score += 15
	case exRank < userRank:
		score += 5
	case exRank > userRank+1:
		score -= 20
	}

	switch sc.Profile.Goal {
	case GoalStrength:
		if ex.RepRangeType == "strength" {
			score += 25
		}
		if ex.Mechanics == MechanicsCompound {
			score += 25
		}
		if ex.Mechanics == MechanicsIsolation {
			score -= 10
		}
	case GoalMass:
		if ex.RepRangeType == "hypertrophy" {
			score += 20
		}
		if ex.Mechanics == MechanicsCompound {
			score += 15
		}
	case GoalEndurance, GoalReduction:
		if ex.RepRangeType == "endurance" {
			score += 20
		}
	}

	if slices.Contains(sc.WeakMuscles, ex.PrimaryMuscle) {
		score += 25
	}

	if len(sc.FocusParts) > 0 && ex.BodyPart != "" &&
		slices.Contains(sc.FocusParts, strings.ToUpper(ex.BodyPart)) {
		score += 200
	}

	if sc.Filter.PreferUnilateral && ex.Unilateral {
		score += 10
	}

	priority := isPriorityExercise(code)
	if priority {
		score += 35
	}
	if sc.Filter.HasWeightedEquipment && priority {
		switch equipment {
		case "barbell":
			score += 20
		case "dumbbell":
			score += 18
		case "machine":
			score += 15
		case "cable":
			score += 12
		}
	}

	if isClassicExercise(code) {
		score += 30
	}
	if containsAnyToken(code, exoticTokens) {
		score -= 40
	}

	score += sc.Rand.Float64() * 3

	return score
}

// muscleGroupMatch matches a primary muscle against block muscle groups
// bidirectionally so "back" matches "upper back".
func muscleGroupMatch(primary string, groups []string) bool {
	primary = strings.ToLower(primary)
	if primary == "" {
		return false
	}
	for _, g := range groups {
		g = strings.ToLower(g)
		if strings.Contains(primary, g) || strings.Contains(g, primary) {
			return true
		}
	}
	return false
}

// expandWeakPoints resolves weak-point tags to catalog muscle names.
func expandWeakPoints(weakPoints []string) []string {
	var muscles []string
	for _, w := range weakPoints {
		if w == "none" {
			continue
		}
		if mapped, ok := weakPointMuscles[w]; ok {
			muscles = append(muscles, mapped...)
		} else {
			muscles = append(muscles, w)
		}
	}
	return muscles
}
