package aiplan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/myrjola/liftplan/internal/planner"
)

// heavyCompounds are barbell-class lifts that must never be programmed at
// high reps. Matched as substrings against exercise codes.
var heavyCompounds = []string{
	"deadlift", "squat", "bench_press", "overhead_press", "military_press",
	"barbell_row", "bent_over_row", "pendlay_row", "t_bar_row",
	"front_squat", "back_squat", "hip_thrust", "romanian_deadlift",
	"sumo_deadlift", "rack_pull", "good_morning", "clean", "snatch",
	"push_press", "leg_press", "hack_squat",
}

// heavyCompoundReps caps rep ranges for heavy compounds per goal.
var heavyCompoundReps = map[planner.Goal]string{
	planner.GoalStrength:      "4-6",
	planner.GoalMass:          "6-10",
	planner.GoalReduction:     "10-12",
	planner.GoalEndurance:     "12-15",
	planner.GoalRecomposition: "8-10",
}

type repsRule struct {
	def   string
	wrong []string
}

// goalReps holds the default rep range per goal and the ranges that signal
// the model ignored the goal.
var goalReps = map[planner.Goal]repsRule{
	planner.GoalStrength:      {def: "4-6", wrong: []string{"12-15", "15-20", "12-20", "10-15"}},
	planner.GoalMass:          {def: "8-12", wrong: []string{"12-15", "15-20", "3-5"}},
	planner.GoalReduction:     {def: "12-15", wrong: nil},
	planner.GoalEndurance:     {def: "15-20", wrong: []string{"3-5", "4-6", "6-8"}},
	planner.GoalRecomposition: {def: "8-12", wrong: []string{"12-15", "15-20", "3-5"}},
}

var leadingRepsRe = regexp.MustCompile(`\d+`)

// substitution records a code the model invented and its replacement.
type substitution struct {
	From string
	To   string
}

// resolveExerciseCodes replaces unknown codes with the closest catalog match
// and drops exercises that have no plausible match. Returns what changed so
// the caller can log it.
func resolveExerciseCodes(plan *aiPlan, eligible []planner.Exercise) (substituted []substitution, dropped []string) {
	valid := make(map[string]bool, len(eligible))
	for _, ex := range eligible {
		valid[ex.Code] = true
	}

	for d := range plan.Week {
		kept := plan.Week[d].Exercises[:0]
		for _, ex := range plan.Week[d].Exercises {
			if valid[ex.Code] {
				kept = append(kept, ex)
				continue
			}
			if similar, ok := findSimilarExercise(ex.Code, eligible); ok {
				substituted = append(substituted, substitution{From: ex.Code, To: similar.Code})
				ex.Code = similar.Code
				kept = append(kept, ex)
				continue
			}
			dropped = append(dropped, ex.Code)
		}
		plan.Week[d].Exercises = kept
	}
	return substituted, dropped
}

// findSimilarExercise matches an invented code against the catalog, first on
// the normalized form and then on substring overlap in either direction.
func findSimilarExercise(code string, eligible []planner.Exercise) (planner.Exercise, bool) {
	normalized := normalizeCode(code)
	for _, ex := range eligible {
		if normalizeCode(ex.Code) == normalized {
			return ex, true
		}
	}
	for _, ex := range eligible {
		if strings.Contains(ex.Code, code) || strings.Contains(code, ex.Code) {
			return ex, true
		}
	}
	return planner.Exercise{}, false
}

func normalizeCode(code string) string {
	code = strings.ToLower(code)
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', ' ', '-':
			return -1
		}
		return r
	}, code)
}

// calculateOptimalSets derives the set count a returned exercise should
// have. Constraints apply in order of importance: session time caps the
// volume, experience sets the recovery capacity, goal and fatigue tolerance
// adjust around it, and mechanics decides the band.
func calculateOptimalSets(p planner.Profile, isCompound bool) int {
	var base int
	switch {
	case p.SessionTime < 45:
		base = 2
	case p.SessionTime <= 60:
		base = 3
	default:
		base = 3
		if isCompound {
			base = 4
		}
	}

	switch p.Experience {
	case planner.ExperienceBeginner:
		base--
	case planner.ExperienceAdvanced:
		base++
	}

	if p.Goal == planner.GoalStrength && isCompound {
		base++
	} else if p.Goal == planner.GoalEndurance {
		base--
	}

	switch p.FatigueTolerance {
	case planner.FatigueLow:
		base--
	case planner.FatigueHigh:
		if p.SessionTime >= 60 {
			base++
		}
	}

	if isCompound {
		base = max(2, min(5, base))
	} else {
		base = max(2, min(4, base))
	}
	if p.SessionTime < 45 {
		base = min(base, 3)
	}
	// Beginners never go above three sets; the rest is junk volume.
	if p.Experience == planner.ExperienceBeginner {
		base = min(base, 3)
	}
	return base
}

// correctSetsReps rewrites sets and reps the model got wrong for the goal.
// Heavy compounds are checked first, then the goal's forbidden rep ranges.
// Returns the number of corrections applied.
func correctSetsReps(plan *aiPlan, p planner.Profile, catalog map[string]planner.Exercise) int {
	rule, ok := goalReps[p.Goal]
	if !ok {
		rule = goalReps[planner.GoalMass]
	}

	corrected := 0
	for d := range plan.Week {
		for i := range plan.Week[d].Exercises {
			ex := &plan.Week[d].Exercises[i]
			code := strings.ToLower(ex.Code)
			currentSets := ex.Sets
			if currentSets == 0 {
				currentSets = 3
			}

			info, known := catalog[ex.Code]
			isCompound := known && info.Mechanics == planner.MechanicsCompound
			isHeavy := false
			for _, heavy := range heavyCompounds {
				if strings.Contains(code, heavy) {
					isHeavy = true
					break
				}
			}

			optimal := calculateOptimalSets(p, isCompound || isHeavy)
			diff := currentSets - optimal
			if diff < 0 {
				diff = -diff
			}
			if diff >= 2 || (p.Experience == planner.ExperienceBeginner && currentSets > 3) {
				ex.Sets = optimal
				corrected++
			} else {
				ex.Sets = currentSets
			}

			if isHeavy {
				repsNum := 0
				if m := leadingRepsRe.FindString(ex.Reps); m != "" {
					repsNum, _ = strconv.Atoi(m)
				}
				if repsNum >= 12 || strings.Contains(ex.Reps, "12-15") || strings.Contains(ex.Reps, "15") {
					if capped, ok := heavyCompoundReps[p.Goal]; ok {
						ex.Reps = capped
					} else {
						ex.Reps = "8-10"
					}
					corrected++
					continue
				}
			}

			for _, wrong := range rule.wrong {
				if strings.Contains(ex.Reps, wrong) {
					ex.Reps = rule.def
					corrected++
					break
				}
			}
		}
	}
	return corrected
}
