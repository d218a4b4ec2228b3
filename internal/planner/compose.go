package planner

import (
	"slices"
	"strings"
)

// dayKind classifies a block by its name so upper days never get leg work and
// lower days never get upper-body work.
type dayKind int

const (
	dayFullBody dayKind = iota
	dayUpper
	dayLower
)

func classifyDay(blockName string) dayKind {
	name := strings.ToLower(blockName)
	switch {
	case strings.Contains(name, "full"):
		return dayFullBody
	case strings.Contains(name, "upper"), strings.Contains(name, "push"), strings.Contains(name, "pull"):
		return dayUpper
	case strings.Contains(name, "lower"), strings.Contains(name, "legs"):
		return dayLower
	default:
		return dayFullBody
	}
}

// matchesDay reports whether an exercise belongs on this kind of day. Core
// work fits everywhere.
func matchesDay(ex Exercise, kind dayKind) bool {
	if kind == dayFullBody {
		return true
	}
	bodyPart := strings.ToUpper(ex.BodyPart)
	if bodyPart == "CORE" {
		return true
	}
	detailed := strings.ToLower(ex.DetailedMuscle)

	switch kind {
	case dayUpper:
		if slices.Contains(lowerBodyParts, bodyPart) {
			return false
		}
		for _, m := range lowerMuscles {
			if strings.Contains(detailed, m) {
				return false
			}
		}
	case dayLower:
		if slices.Contains(upperBodyParts, bodyPart) {
			return false
		}
		for _, m := range upperMuscles {
			if strings.Contains(detailed, m) {
				return false
			}
		}
	}
	return true
}

// scoredExercise pairs a candidate with its score for one block.
type scoredExercise struct {
	Exercise
	Score float64
}

// dayComposer tracks the per-day state while building one training day.
type dayComposer struct {
	block    BlockDef
	kind     dayKind
	selected []scoredExercise
	// muscleUse counts exercises per detailed muscle; at most two may share
	// one muscle.
	muscleUse     map[string]int
	patternCounts map[Pattern]int

	maxHighFatigue   int
	highFatigueCount int

	focusParts        []string
	minFocusExercises int
	focusSelected     int
}

func (c *dayComposer) muscleKey(ex Exercise) string {
	if ex.DetailedMuscle != "" {
		return ex.DetailedMuscle
	}
	if ex.PrimaryMuscle != "" {
		return ex.PrimaryMuscle
	}
	return "unknown"
}

func (c *dayComposer) alreadySelected(code string) bool {
	return slices.ContainsFunc(c.selected, func(s scoredExercise) bool {
		return s.Code == code
	})
}

// tooManySimilar enforces mutual-exclusion groups, family limits, and the
// per-pattern cap. This constraint never relaxes, not even in fallback.
func (c *dayComposer) tooManySimilar(ex Exercise) bool {
	code := ex.Code

	for _, group := range mutuallyExclusiveGroups {
		if !codeInGroup(code, group) {
			continue
		}
		for _, s := range c.selected {
			if codeInGroup(s.Code, group) {
				return true
			}
		}
	}

	for _, limit := range groupLimits {
		if !codeInGroup(code, limit.codes) {
			continue
		}
		count := 0
		for _, s := range c.selected {
			if codeInGroup(s.Code, limit.codes) {
				count++
			}
		}
		if count >= limit.max {
			return true
		}
	}

	pattern := normalizePattern(ex.Pattern)
	maxCount, ok := patternMaxCount[pattern]
	if !ok {
		maxCount = defaultPatternMax
	}
	return c.patternCounts[pattern] >= maxCount
}

func (c *dayComposer) overloadsMuscle(ex Exercise) bool {
	return c.muscleUse[c.muscleKey(ex)] >= 2
}

func (c *dayComposer) exceedsFatigue(ex Exercise) bool {
	return ex.FatigueScore >= 6 && c.highFatigueCount >= c.maxHighFatigue
}

func (c *dayComposer) matchesFocus(ex Exercise) bool {
	if len(c.focusParts) == 0 {
		return true
	}
	return slices.Contains(c.focusParts, strings.ToUpper(ex.BodyPart))
}

func (c *dayComposer) add(ex scoredExercise) {
	c.selected = append(c.selected, ex)
	c.muscleUse[c.muscleKey(ex.Exercise)]++
	c.patternCounts[normalizePattern(ex.Pattern)]++
	if c.matchesFocus(ex.Exercise) && len(c.focusParts) > 0 {
		c.focusSelected++
	}
	if ex.FatigueScore >= 6 {
		c.highFatigueCount++
	}
}

func codeInGroup(code string, group []string) bool {
	for _, member := range group {
		if strings.Contains(code, member) || strings.Contains(member, code) {
			return true
		}
	}
	return false
}

func tierRank(t Tier) int {
	switch t {
	case TierOptimal:
		return 3
	case TierStandard:
		return 2
	case TierWarmup:
		return 0
	default:
		return 1
	}
}

// composeDay selects the exercises for one training day. Pattern coverage
// comes first: one exercise per block pattern, best tier and score winning.
// A fill pass then tops up to the target count favoring block muscles and
// unworked muscles. The final order puts skill work first, then tier, then
// compounds, then descending fatigue.
func composeDay(eligible []Exercise, block BlockDef, blockName string, usedCodes map[string]bool, sc scoreContext) []Exercise {
	kind := classifyDay(blockName)

	composer := &dayComposer{
		block:         block,
		kind:          kind,
		muscleUse:     make(map[string]int),
		patternCounts: make(map[Pattern]int),
		focusParts:    sc.FocusParts,
	}
	switch sc.Profile.FatigueTolerance {
	case FatigueLow:
		composer.maxHighFatigue = 2
	case FatigueHigh:
		composer.maxHighFatigue = 6
	default:
		composer.maxHighFatigue = 4
	}
	// Forcing focus volume only makes sense on full-body days; an upper day
	// cannot hold leg exercises no matter the focus.
	if len(sc.FocusParts) > 0 && kind == dayFullBody {
		composer.minFocusExercises = (block.ExerciseCount*4 + 9) / 10
	}

	var candidates []scoredExercise
	for _, ex := range eligible {
		if usedCodes[ex.Code] {
			continue
		}
		if slices.Contains(blacklistedExercises, ex.Code) {
			continue
		}
		if !matchesDay(ex, kind) {
			continue
		}
		if sc.Profile.Experience == ExperienceBeginner &&
			containsAnyToken(strings.ToLower(ex.Code), beginnerBannedTokens) {
			continue
		}
		candidates = append(candidates, scoredExercise{
			Exercise: ex,
			Score:    scoreExercise(ex, sc),
		})
	}
	slices.SortFunc(candidates, func(a, b scoredExercise) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	// One exercise per block pattern.
	for _, pattern := range block.Patterns {
		if len(composer.selected) >= block.ExerciseCount {
			break
		}

		var patternMatches []scoredExercise
		for _, ex := range candidates {
			if normalizePattern(ex.Pattern) != pattern {
				continue
			}
			if composer.alreadySelected(ex.Code) ||
				composer.tooManySimilar(ex.Exercise) ||
				composer.overloadsMuscle(ex.Exercise) ||
				composer.exceedsFatigue(ex.Exercise) {
				continue
			}
			patternMatches = append(patternMatches, ex)
		}

		if len(sc.FocusParts) > 0 && composer.focusSelected < composer.minFocusExercises {
			var focusMatches []scoredExercise
			for _, ex := range patternMatches {
				if composer.matchesFocus(ex.Exercise) {
					focusMatches = append(focusMatches, ex)
				}
			}
			if len(focusMatches) > 0 {
				patternMatches = focusMatches
			}
		}

		slices.SortFunc(patternMatches, func(a, b scoredExercise) int {
			if diff := tierRank(b.Tier) - tierRank(a.Tier); diff != 0 {
				return diff
			}
			if block.CompoundFirst && pattern != PatternAccessory && pattern != PatternCore {
				aCompound := a.Mechanics == MechanicsCompound
				bCompound := b.Mechanics == MechanicsCompound
				if aCompound != bCompound {
					if aCompound {
						return -1
					}
					return 1
				}
			}
			switch {
			case a.Score > b.Score:
				return -1
			case a.Score < b.Score:
				return 1
			default:
				return 0
			}
		})

		if len(patternMatches) > 0 {
			composer.add(patternMatches[0])
		}
	}

	// Fill to the target count.
	for attempts := 0; len(composer.selected) < block.ExerciseCount && attempts < 100; attempts++ {
		needMoreFocus := len(sc.FocusParts) > 0 && composer.focusSelected < composer.minFocusExercises

		var remaining []scoredExercise
		for _, ex := range candidates {
			if composer.alreadySelected(ex.Code) || usedCodes[ex.Code] {
				continue
			}
			if composer.tooManySimilar(ex.Exercise) ||
				composer.overloadsMuscle(ex.Exercise) ||
				composer.exceedsFatigue(ex.Exercise) {
				continue
			}
			remaining = append(remaining, ex)
		}

		if needMoreFocus {
			var focus []scoredExercise
			for _, ex := range remaining {
				if composer.matchesFocus(ex.Exercise) {
					focus = append(focus, ex)
				}
			}
			if len(focus) > 0 {
				remaining = focus
			}
		}

		if len(remaining) == 0 {
			// Relax the overload and fatigue caps but keep the similarity
			// constraints; two deadlift variants in one day is never right.
			var fallback []scoredExercise
			for _, ex := range candidates {
				if composer.alreadySelected(ex.Code) || usedCodes[ex.Code] {
					continue
				}
				if composer.tooManySimilar(ex.Exercise) {
					continue
				}
				fallback = append(fallback, ex)
			}
			if len(fallback) == 0 {
				break
			}
			// Fallback picks still count against the pattern and fatigue
			// budgets, so later picks see them.
			composer.add(fallback[0])
			continue
		}

		slices.SortFunc(remaining, func(a, b scoredExercise) int {
			aScore, bScore := a.Score, b.Score
			if muscleGroupMatch(a.PrimaryMuscle, block.MuscleGroups) {
				aScore += 50
			}
			if muscleGroupMatch(b.PrimaryMuscle, block.MuscleGroups) {
				bScore += 50
			}
			if slices.Contains(block.Patterns, normalizePattern(a.Pattern)) {
				aScore += 30
			}
			if slices.Contains(block.Patterns, normalizePattern(b.Pattern)) {
				bScore += 30
			}
			if composer.muscleUse[composer.muscleKey(a.Exercise)] == 0 {
				aScore += 25
			}
			if composer.muscleUse[composer.muscleKey(b.Exercise)] == 0 {
				bScore += 25
			}
			if slices.Contains(sc.WeakMuscles, a.PrimaryMuscle) {
				aScore += 20
			}
			if slices.Contains(sc.WeakMuscles, b.PrimaryMuscle) {
				bScore += 20
			}
			switch {
			case aScore > bScore:
				return -1
			case aScore < bScore:
				return 1
			default:
				return 0
			}
		})
		composer.add(remaining[0])
	}

	slices.SortFunc(composer.selected, func(a, b scoredExercise) int {
		aSkill := containsAnyToken(strings.ToLower(a.Code), highSkillExercises)
		bSkill := containsAnyToken(strings.ToLower(b.Code), highSkillExercises)
		if aSkill != bSkill {
			if aSkill {
				return -1
			}
			return 1
		}
		if diff := tierRank(b.Tier) - tierRank(a.Tier); diff != 0 {
			return diff
		}
		aCompound := a.Mechanics == MechanicsCompound
		bCompound := b.Mechanics == MechanicsCompound
		if aCompound != bCompound {
			if aCompound {
				return -1
			}
			return 1
		}
		return b.FatigueScore - a.FatigueScore
	})

	result := make([]Exercise, len(composer.selected))
	for i, s := range composer.selected {
		result[i] = s.Exercise
	}
	return result
}
