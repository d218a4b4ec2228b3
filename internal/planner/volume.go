package planner

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var restNumberRe = regexp.MustCompile(`\d+`)

// parseRestSeconds averages the numbers in a rest string, so "90-120s" is
// 105 and "3-5min" is 4. Units are ignored; minute ranges are only used in
// strength rest strings which the duration fitter treats the same way.
func parseRestSeconds(rest string) float64 {
	matches := restNumberRe.FindAllString(rest, -1)
	if len(matches) == 0 {
		return 60
	}
	sum := 0.0
	for _, m := range matches {
		n, _ := strconv.Atoi(m)
		sum += float64(n)
	}
	return sum / float64(len(matches))
}

func increaseRest(rest string) string {
	return scaleRest(rest, func(n int) int { return int(math.Round(float64(n) * 1.25)) }, "90-120s")
}

func decreaseRest(rest string) string {
	return scaleRest(rest, func(n int) int { return max(30, int(math.Round(float64(n)*0.8))) }, "45-60s")
}

func scaleRest(rest string, scale func(int) int, fallback string) string {
	matches := restNumberRe.FindAllString(rest, -1)
	if len(matches) == 0 {
		if rest == "" {
			return fallback
		}
		return rest
	}
	nums := make([]int, len(matches))
	for i, m := range matches {
		n, _ := strconv.Atoi(m)
		nums[i] = scale(n)
	}
	if len(nums) == 2 {
		return fmt.Sprintf("%d-%ds", nums[0], nums[1])
	}
	return fmt.Sprintf("%ds", nums[0])
}

// configureVolume assigns sets, reps, and rest to one selected exercise.
// Set count starts from how many sets fit the per-exercise time budget and
// is clamped into the goal's band, then nudged by experience, fatigue
// tolerance, and position in the session. History, when present, yields a
// 2.5% load progression hint rounded to the nearest 0.5.
func configureVolume(ex Exercise, p Profile, history map[string]float64, sessionTime, totalExercises, index int) ConfiguredExercise {
	isCompound := ex.Mechanics == MechanicsCompound

	avgMinutesPerExercise := float64(sessionTime) / float64(totalExercises)

	var baseSetSeconds, baseRestSeconds float64
	switch p.Goal {
	case GoalStrength:
		baseSetSeconds, baseRestSeconds = 45, 180
	case GoalEndurance, GoalReduction:
		baseSetSeconds, baseRestSeconds = 30, 45
	default:
		baseSetSeconds, baseRestSeconds = 35, 90
	}

	// n sets take n*work + (n-1)*rest + 60s of setup.
	availableSeconds := avgMinutesPerExercise*60 - 60
	calculated := max(2, int(math.Round((availableSeconds+baseRestSeconds)/(baseSetSeconds+baseRestSeconds))))

	var (
		sets int
		reps string
		rest string
	)
	switch p.Goal {
	case GoalStrength:
		if isCompound {
			sets = min(6, max(4, calculated))
			reps = "3-5"
		} else {
			sets = min(4, max(3, calculated))
			reps = "6-8"
		}
		rest = "3-5min"
	case GoalMass:
		if isCompound {
			sets = min(5, max(4, calculated))
			reps = "6-10"
		} else {
			sets = min(4, max(3, calculated))
			reps = "10-12"
		}
		rest = "90-120s"
	case GoalEndurance, GoalReduction:
		sets = min(5, max(4, calculated))
		if isCompound {
			reps = "15-20"
		} else {
			reps = "15-25"
		}
		rest = "30-60s"
	default: // recomposition
		if isCompound {
			sets = min(5, max(3, calculated))
		} else {
			sets = min(4, max(3, calculated))
		}
		reps = "8-12"
		rest = "60-90s"
	}

	switch p.Experience {
	case ExperienceBeginner:
		sets = max(2, sets-1)
		rest = increaseRest(rest)
		if p.Goal == GoalStrength {
			reps = "5-8"
		}
	case ExperienceAdvanced:
		if isCompound && ex.Tier == TierOptimal {
			sets = min(6, sets+1)
		}
		if p.Goal != GoalStrength {
			rest = decreaseRest(rest)
		}
	}

	switch p.FatigueTolerance {
	case FatigueLow:
		if ex.FatigueScore >= 5 {
			sets = max(2, sets-1)
		}
		rest = increaseRest(rest)
	case FatigueHigh:
		if ex.FatigueScore <= 4 {
			sets = min(6, sets+1)
		}
		rest = decreaseRest(rest)
	}

	// The opening compound gets an extra set while fresh; trailing accessory
	// work keeps at least three.
	if index == 0 && isCompound {
		sets = min(6, sets+1)
	}
	if index >= totalExercises-2 && !isCompound {
		sets = max(3, sets)
	}

	if ex.Pattern == PatternCore {
		reps = "12-20"
		sets = min(sets, 3)
		rest = "45-60s"
	}

	if ex.Tier == TierWarmup {
		sets = 2
		reps = "10-15"
		rest = "30s"
	}

	var suggestedWeight string
	if lastMax, ok := history[ex.Code]; ok && lastMax > 0 {
		suggestedWeight = fmt.Sprintf("%.1f", math.Round(lastMax*1.025*2)/2)
	}

	avgSetSeconds := float64(ex.AvgSetSeconds)
	if avgSetSeconds == 0 {
		avgSetSeconds = 40
	}
	restSeconds := parseRestSeconds(rest)
	calculatedSeconds := float64(sets)*avgSetSeconds + float64(sets-1)*restSeconds + 60
	targetSeconds := avgMinutesPerExercise * 60
	estimated := max(calculatedSeconds, targetSeconds*0.8)

	return ConfiguredExercise{
		Exercise:        ex,
		Sets:            sets,
		Reps:            reps,
		Rest:            rest,
		SuggestedWeight: suggestedWeight,
		EstimatedTime:   time.Duration(estimated) * time.Second,
	}
}
