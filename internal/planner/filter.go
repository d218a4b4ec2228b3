package planner

import (
	"slices"
	"strings"
)

// filterContext is the per-request view of the profile used by filtering and
// scoring: canonical equipment, expanded injury tokens, and derived blocks.
type filterContext struct {
	Equipment            []string
	HasWeightedEquipment bool
	BodyweightOnly       bool
	HasRings             bool

	ExpandedInjuries []string
	// BlockedCodeTokens from all of the profile's injuries.
	BlockedCodeTokens []string
	// BlockedPatterns from injuries; exercises matching AllowedAlternatives
	// survive the block.
	BlockedPatterns     []Pattern
	AllowedAlternatives []string
	BlockedGripTypes    []string
	BlockedMobility     []string
	PreferUnilateral    bool
	PreferMachines      bool
}

// normalizeEquipment canonicalizes one equipment tag.
func normalizeEquipment(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := equipmentAliases[tag]; ok {
		return canonical
	}
	return strings.ReplaceAll(tag, " ", "_")
}

// newFilterContext derives the filter view from a normalized profile.
func newFilterContext(p Profile) filterContext {
	fc := filterContext{
		PreferUnilateral: p.PreferUnilateral,
	}

	for _, eq := range p.Equipment {
		tag := normalizeEquipment(eq)
		if tag == "" || slices.Contains(fc.Equipment, tag) {
			continue
		}
		fc.Equipment = append(fc.Equipment, tag)
	}
	for _, eq := range fc.Equipment {
		if slices.Contains(trueWeightedEquipment, eq) {
			fc.HasWeightedEquipment = true
		}
		if eq == "rings" || eq == "gymnastic_rings" || eq == "gymnastics_rings" {
			fc.HasRings = true
		}
	}
	fc.BodyweightOnly = len(fc.Equipment) == 1 && fc.Equipment[0] == "bodyweight"

	for _, injury := range p.Injuries {
		if synonyms, ok := injurySynonyms[injury]; ok {
			fc.ExpandedInjuries = append(fc.ExpandedInjuries, synonyms...)
		} else {
			fc.ExpandedInjuries = append(fc.ExpandedInjuries, injury)
		}

		cfg, ok := injuryConfigs[injury]
		if !ok {
			continue
		}
		fc.BlockedCodeTokens = append(fc.BlockedCodeTokens, cfg.BlockedCodeTokens...)
		fc.BlockedPatterns = append(fc.BlockedPatterns, cfg.BlockedPatterns...)
		fc.AllowedAlternatives = append(fc.AllowedAlternatives, cfg.AllowedAlternatives...)
		fc.BlockedGripTypes = append(fc.BlockedGripTypes, cfg.BlockedGripTypes...)
		if cfg.PreferUnilateral {
			fc.PreferUnilateral = true
		}
		if cfg.PreferMachines {
			fc.PreferMachines = true
		}
	}

	for _, issue := range p.MobilityIssues {
		fc.BlockedMobility = append(fc.BlockedMobility, mobilityRequirements[issue]...)
	}

	return fc
}

// containsAnyToken reports whether code contains any of the tokens.
func containsAnyToken(code string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(code, token) {
			return true
		}
	}
	return false
}

// filterExercises keeps the catalog entries a profile may safely perform.
// Order of checks mirrors severity: injuries first, then equipment, then
// experience and goal restrictions. Warmup-tier entries never qualify as
// main work.
func filterExercises(catalog []Exercise, p Profile, fc filterContext) []Exercise {
	eligible := make([]Exercise, 0, len(catalog))

	for _, ex := range catalog {
		if ex.Tier == TierWarmup {
			continue
		}

		code := strings.ToLower(ex.Code)

		if injuryConflict(ex.ExcludedInjuries, fc.ExpandedInjuries) {
			continue
		}
		if containsAnyToken(code, fc.BlockedCodeTokens) {
			continue
		}
		if slices.Contains(fc.BlockedPatterns, ex.Pattern) &&
			!containsAnyToken(code, fc.AllowedAlternatives) {
			continue
		}

		if !fc.HasRings && containsAnyToken(code, ringsRequiredTokens) {
			continue
		}

		equipment := normalizeEquipment(ex.Equipment)
		if equipment != "" && equipment != "bodyweight" &&
			!slices.Contains(fc.Equipment, equipment) {
			continue
		}

		if containsAnyToken(code, alwaysBlockedTokens) {
			continue
		}
		if (p.Goal == GoalStrength || p.Goal == GoalMass) &&
			containsAnyToken(code, unstableSurfaceTokens) {
			continue
		}

		// Owning real weights rules out most bodyweight work; loaded
		// variants beat it for progressive overload. Pull-ups, dips, and
		// core work have no loaded substitute and stay in.
		if fc.HasWeightedEquipment && equipment == "bodyweight" {
			if containsAnyToken(code, blockedCalisthenicsTokens) {
				continue
			}
			if !matchesAllowedBodyweight(code) {
				continue
			}
		}

		if p.Experience != ExperienceAdvanced {
			if containsAnyToken(code, blockedCalisthenicsTokens) {
				continue
			}
			if containsAnyToken(code, eliteTokens) {
				continue
			}
		}

		if p.Experience == ExperienceBeginner {
			if ex.Difficulty == ExperienceAdvanced || string(ex.Difficulty) == "elite" {
				continue
			}
			if containsAnyToken(code, hardCalisthenicsTokens) &&
				!slices.Contains(fc.Equipment, "band") &&
				!slices.Contains(fc.Equipment, "machine") {
				continue
			}
		}

		if p.Goal == GoalStrength {
			if ex.Mechanics == MechanicsCardio || ex.Pattern == "plyometric" {
				continue
			}
			if containsAnyToken(code, cardioTokens) {
				continue
			}
		}

		if len(fc.BlockedGripTypes) > 0 && ex.GripType != "" &&
			slices.Contains(fc.BlockedGripTypes, strings.ToLower(ex.GripType)) {
			continue
		}

		if blockedByMobility(ex.MobilityRequired, fc.BlockedMobility) {
			continue
		}

		eligible = append(eligible, ex)
	}

	return eligible
}

// injuryConflict matches catalog exclusion entries against the user's
// expanded injury tokens bidirectionally, so "knee" matches "knee pain" and
// vice versa.
func injuryConflict(excluded, userInjuries []string) bool {
	for _, entry := range excluded {
		entry = strings.ToLower(entry)
		for _, injury := range userInjuries {
			injury = strings.ToLower(injury)
			if strings.Contains(entry, injury) || strings.Contains(injury, entry) {
				return true
			}
		}
	}
	return false
}

func matchesAllowedBodyweight(code string) bool {
	for _, allowed := range allowedBodyweightTokens {
		if strings.Contains(code, allowed) || strings.Contains(allowed, code) {
			return true
		}
	}
	return false
}

func blockedByMobility(required, blocked []string) bool {
	if len(blocked) == 0 {
		return false
	}
	for _, req := range required {
		if slices.Contains(blocked, strings.ToLower(req)) {
			return true
		}
	}
	return false
}
