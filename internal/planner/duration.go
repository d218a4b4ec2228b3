package planner

import (
	"math"
	"time"
)

// EstimateExerciseTime estimates the wall-clock cost of one configured
// exercise. Rest is charged for every set, not sets-1: the pause after the
// final set is the transition to the next exercise and that time is real.
func EstimateExerciseTime(ex ConfiguredExercise) time.Duration {
	const avgWorkSeconds = 50
	restSeconds := parseRestSeconds(ex.Rest)
	if restSeconds == 0 {
		restSeconds = 90
	}
	seconds := float64(ex.Sets)*avgWorkSeconds + float64(ex.Sets)*restSeconds + 90
	return time.Duration(seconds) * time.Second
}

func totalMinutes(exercises []ConfiguredExercise) float64 {
	var total time.Duration
	for _, ex := range exercises {
		if ex.EstimatedTime == 0 {
			total += 5 * time.Minute
			continue
		}
		total += ex.EstimatedTime
	}
	return total.Minutes()
}

// fitToDuration scales sets and rests until the day lands within 85% to 115%
// of the requested session length. Growth prefers compound sets, then
// isolation sets, then longer rests; shrinking trims isolation sets before
// compound sets. Returns the fitted exercises and the day length in minutes.
func fitToDuration(exercises []ConfiguredExercise, sessionTime int, goal Goal, experience Experience) ([]ConfiguredExercise, int) {
	minDuration := float64(sessionTime) * 0.85
	maxDuration := float64(sessionTime) * 1.15

	for i := range exercises {
		exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
	}
	current := totalMinutes(exercises)

	var maxCompoundSets int
	switch experience {
	case ExperienceAdvanced:
		maxCompoundSets = 8
	case ExperienceIntermediate:
		maxCompoundSets = 7
	default:
		maxCompoundSets = 5
	}
	maxIsolationSets := 5
	if experience == ExperienceAdvanced {
		maxIsolationSets = 6
	}
	maxRestSeconds := 150.0
	if goal == GoalStrength {
		maxRestSeconds = 240
	}

	attempts := 0
	for current < minDuration && attempts < 50 {
		attempts++
		grown := false

		for i := range exercises {
			if exercises[i].Mechanics == MechanicsCompound && exercises[i].Sets < maxCompoundSets {
				exercises[i].Sets++
				exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
				grown = true
				break
			}
		}
		if !grown {
			for i := range exercises {
				if exercises[i].Mechanics != MechanicsCompound && exercises[i].Sets < maxIsolationSets {
					exercises[i].Sets++
					exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
					grown = true
					break
				}
			}
		}
		if !grown {
			for i := range exercises {
				if parseRestSeconds(exercises[i].Rest) < maxRestSeconds {
					exercises[i].Rest = increaseRest(exercises[i].Rest)
					exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
					grown = true
					break
				}
			}
		}
		if !grown && attempts < 30 {
			const absoluteMax = 10
			for i := range exercises {
				if exercises[i].Sets < absoluteMax {
					exercises[i].Sets++
					exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
					grown = true
					break
				}
			}
		}
		if !grown {
			break
		}
		current = totalMinutes(exercises)
	}

	for current > maxDuration && attempts < 70 {
		attempts++
		shrunk := false

		for i := range exercises {
			if exercises[i].Mechanics != MechanicsCompound && exercises[i].Sets > 2 {
				exercises[i].Sets--
				exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
				shrunk = true
				break
			}
		}
		if !shrunk {
			for i := range exercises {
				if exercises[i].Mechanics == MechanicsCompound && exercises[i].Sets > 3 {
					exercises[i].Sets--
					exercises[i].EstimatedTime = EstimateExerciseTime(exercises[i])
					shrunk = true
					break
				}
			}
		}
		if !shrunk {
			break
		}
		current = totalMinutes(exercises)
	}

	return exercises, int(math.Round(current))
}
