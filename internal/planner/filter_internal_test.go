package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeEquipment(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Dumbbells", want: "dumbbell"},
		{raw: " body weight ", want: "bodyweight"},
		{raw: "none", want: "bodyweight"},
		{raw: "smith machine", want: "smith_machine"},
		{raw: "pull-up bar", want: "pull_up_bar"},
		{raw: "Barbell", want: "barbell"},
	}
	for _, tt := range tests {
		if got := normalizeEquipment(tt.raw); got != tt.want {
			t.Errorf("normalizeEquipment(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNewFilterContext(t *testing.T) {
	t.Run("expands injuries and equipment", func(t *testing.T) {
		fc := newFilterContext(Profile{
			Equipment: []string{"Barbells", "dumbbells", "barbell"},
			Injuries:  []string{"knees"},
		})

		if diff := cmp.Diff([]string{"barbell", "dumbbell"}, fc.Equipment); diff != "" {
			t.Errorf("Equipment mismatch (-want +got):\n%s", diff)
		}
		if !fc.HasWeightedEquipment {
			t.Error("barbell should count as weighted equipment")
		}
		if fc.BodyweightOnly {
			t.Error("BodyweightOnly set despite owning weights")
		}
		if diff := cmp.Diff([]string{"knee", "knees", "patella", "acl", "mcl"}, fc.ExpandedInjuries); diff != "" {
			t.Errorf("ExpandedInjuries mismatch (-want +got):\n%s", diff)
		}
		if !fc.PreferMachines {
			t.Error("knee injury should prefer machines")
		}
	})

	t.Run("bodyweight only", func(t *testing.T) {
		fc := newFilterContext(Profile{Equipment: []string{"bodyweight"}})
		if !fc.BodyweightOnly {
			t.Error("BodyweightOnly not set")
		}
		if fc.HasWeightedEquipment {
			t.Error("bodyweight counted as weighted equipment")
		}
	})

	t.Run("mobility issues block requirements", func(t *testing.T) {
		fc := newFilterContext(Profile{MobilityIssues: []string{"ankles"}})
		if diff := cmp.Diff([]string{"ankle_mobility", "ankle_dorsiflexion"}, fc.BlockedMobility); diff != "" {
			t.Errorf("BlockedMobility mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestInjuryConflict(t *testing.T) {
	tests := []struct {
		name     string
		excluded []string
		injuries []string
		want     bool
	}{
		{name: "substring match", excluded: []string{"knee pain"}, injuries: []string{"knee"}, want: true},
		{name: "reverse substring match", excluded: []string{"knee"}, injuries: []string{"knee pain"}, want: true},
		{name: "case insensitive", excluded: []string{"Lower Back"}, injuries: []string{"lower back"}, want: true},
		{name: "no overlap", excluded: []string{"shoulder"}, injuries: []string{"knee"}, want: false},
		{name: "no injuries", excluded: []string{"shoulder"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := injuryConflict(tt.excluded, tt.injuries); got != tt.want {
				t.Errorf("injuryConflict(%v, %v) = %v, want %v", tt.excluded, tt.injuries, got, tt.want)
			}
		})
	}
}

func TestFilterExercises(t *testing.T) {
	catalog := []Exercise{
		{Code: "barbell_bench_press", Pattern: PatternPushHorizontal, Mechanics: MechanicsCompound,
			Equipment: "barbell", Tier: TierOptimal, Difficulty: ExperienceIntermediate},
		{Code: "barbell_squat", Pattern: PatternKneeDominant, Mechanics: MechanicsCompound,
			Equipment: "barbell", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			ExcludedInjuries: []string{"knee"}},
		{Code: "leg_press", Pattern: PatternKneeDominant, Mechanics: MechanicsCompound,
			Equipment: "machine", Tier: TierStandard, Difficulty: ExperienceBeginner},
		{Code: "kettlebell_swing", Pattern: PatternHipDominant, Mechanics: MechanicsCompound,
			Equipment: "kettlebell", Tier: TierStandard, Difficulty: ExperienceIntermediate},
		{Code: "push_up", Pattern: PatternPushHorizontal, Mechanics: MechanicsCompound,
			Equipment: "bodyweight", Tier: TierStandard, Difficulty: ExperienceBeginner},
		{Code: "pull_up", Pattern: PatternPullVertical, Mechanics: MechanicsCompound,
			Equipment: "bodyweight", Tier: TierOptimal, Difficulty: ExperienceIntermediate},
		{Code: "ring_dip", Pattern: PatternPushVertical, Mechanics: MechanicsCompound,
			Equipment: "bodyweight", Tier: TierStandard, Difficulty: ExperienceAdvanced},
		{Code: "muscle_up", Pattern: PatternPullVertical, Mechanics: MechanicsCompound,
			Equipment: "bodyweight", Tier: TierAlternative, Difficulty: ExperienceAdvanced},
		{Code: "burpee", Pattern: "plyometric", Mechanics: MechanicsCardio,
			Equipment: "bodyweight", Tier: TierStandard, Difficulty: ExperienceBeginner},
		{Code: "swiss_ball_crunch", Pattern: PatternCore, Mechanics: MechanicsIsolation,
			Equipment: "bodyweight", Tier: TierAlternative, Difficulty: ExperienceBeginner},
		{Code: "jumping_jacks", Pattern: PatternAccessory, Mechanics: MechanicsCardio,
			Equipment: "bodyweight", Tier: TierWarmup, Difficulty: ExperienceBeginner},
		{Code: "overhead_squat", Pattern: PatternKneeDominant, Mechanics: MechanicsCompound,
			Equipment: "barbell", Tier: TierAlternative, Difficulty: ExperienceAdvanced,
			MobilityRequired: []string{"ankle_mobility"}},
	}

	eligibleCodes := func(p Profile) []string {
		t.Helper()
		p = NormalizeProfile(p)
		eligible := filterExercises(catalog, p, newFilterContext(p))
		codes := make([]string, 0, len(eligible))
		for _, ex := range eligible {
			codes = append(codes, ex.Code)
		}
		return codes
	}

	contains := func(codes []string, code string) bool {
		for _, c := range codes {
			if c == code {
				return true
			}
		}
		return false
	}

	t.Run("warmup tier never qualifies as main work", func(t *testing.T) {
		codes := eligibleCodes(Profile{Goal: GoalMass, Equipment: []string{"barbell", "machine"}})
		if contains(codes, "jumping_jacks") {
			t.Errorf("warmup entry selected as main work: %v", codes)
		}
	})

	t.Run("equipment the user lacks is excluded", func(t *testing.T) {
		codes := eligibleCodes(Profile{Goal: GoalMass, Equipment: []string{"barbell"}})
		if contains(codes, "leg_press") || contains(codes, "kettlebell_swing") {
			t.Errorf("unavailable equipment selected: %v", codes)
		}
		if !contains(codes, "barbell_bench_press") {
			t.Errorf("barbell work missing: %v", codes)
		}
	})

	t.Run("knee injury blocks catalog exclusions", func(t *testing.T) {
		codes := eligibleCodes(Profile{
			Goal: GoalMass, Equipment: []string{"barbell", "machine"}, Injuries: []string{"knees"},
		})
		if contains(codes, "barbell_squat") {
			t.Errorf("knee-excluded exercise selected: %v", codes)
		}
		if !contains(codes, "leg_press") {
			t.Errorf("safe machine alternative missing: %v", codes)
		}
	})

	t.Run("owning weights drops redundant bodyweight work", func(t *testing.T) {
		codes := eligibleCodes(Profile{Goal: GoalMass, Equipment: []string{"barbell", "dumbbell"}})
		if contains(codes, "push_up") {
			t.Errorf("bodyweight pressing kept despite owning weights: %v", codes)
		}
		// Pull-ups have no loaded substitute and stay in.
		if !contains(codes, "pull_up") {
			t.Errorf("pull_up missing: %v", codes)
		}
	})

	t.Run("skill moves need advanced experience", func(t *testing.T) {
		intermediate := eligibleCodes(Profile{Experience: ExperienceIntermediate, Goal: GoalMass})
		if contains(intermediate, "muscle_up") || contains(intermediate, "ring_dip") {
			t.Errorf("skill moves selected for intermediate: %v", intermediate)
		}
	})

	t.Run("rings required without rings owned", func(t *testing.T) {
		advanced := eligibleCodes(Profile{Experience: ExperienceAdvanced, Goal: GoalMass})
		if contains(advanced, "ring_dip") {
			t.Errorf("ring work selected without rings: %v", advanced)
		}
	})

	t.Run("strength goal excludes cardio", func(t *testing.T) {
		codes := eligibleCodes(Profile{Goal: GoalStrength, Equipment: []string{"barbell"}})
		if contains(codes, "burpee") {
			t.Errorf("cardio selected for strength: %v", codes)
		}
	})

	t.Run("unstable surfaces always blocked", func(t *testing.T) {
		codes := eligibleCodes(Profile{Goal: GoalEndurance})
		if contains(codes, "swiss_ball_crunch") {
			t.Errorf("unstable surface exercise selected: %v", codes)
		}
	})

	t.Run("mobility issue blocks requiring exercises", func(t *testing.T) {
		codes := eligibleCodes(Profile{
			Experience: ExperienceAdvanced, Goal: GoalMass,
			Equipment: []string{"barbell"}, MobilityIssues: []string{"ankles"},
		})
		if contains(codes, "overhead_squat") {
			t.Errorf("mobility-gated exercise selected: %v", codes)
		}
	})

	t.Run("beginners skip advanced difficulty", func(t *testing.T) {
		codes := eligibleCodes(Profile{
			Experience: ExperienceBeginner, Goal: GoalMass, Equipment: []string{"barbell"},
		})
		if contains(codes, "overhead_squat") {
			t.Errorf("advanced exercise selected for beginner: %v", codes)
		}
		// Hard calisthenics need band or machine assistance.
		if contains(codes, "pull_up") {
			t.Errorf("unassisted pull_up selected for beginner: %v", codes)
		}
	})
}
