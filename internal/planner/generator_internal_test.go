package planner

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/testhelpers"
)

// testCatalog is a compact catalog covering every movement pattern, the
// common equipment types, and two warmup entries.
func testCatalog() []Exercise {
	return []Exercise{
		{Code: "barbell_bench_press", PrimaryMuscle: "chest", DetailedMuscle: "pectorals",
			Pattern: PatternPushHorizontal, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "CHEST", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "strength", FatigueScore: 6},
		{Code: "incline_dumbbell_press", PrimaryMuscle: "chest", DetailedMuscle: "upper chest",
			Pattern: PatternPushHorizontal, Mechanics: MechanicsCompound, Equipment: "dumbbell",
			BodyPart: "CHEST", Tier: TierStandard, Difficulty: ExperienceIntermediate,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "machine_chest_press", PrimaryMuscle: "chest", DetailedMuscle: "mid chest",
			Pattern: PatternPushHorizontal, Mechanics: MechanicsCompound, Equipment: "machine",
			BodyPart: "CHEST", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 4},
		{Code: "overhead_press", PrimaryMuscle: "shoulders", DetailedMuscle: "front deltoids",
			Pattern: PatternPushVertical, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "SHOULDERS", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "strength", FatigueScore: 6},
		{Code: "dumbbell_shoulder_press", PrimaryMuscle: "shoulders", DetailedMuscle: "deltoids",
			Pattern: PatternPushVertical, Mechanics: MechanicsCompound, Equipment: "dumbbell",
			BodyPart: "SHOULDERS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "lateral_raise", PrimaryMuscle: "shoulders", DetailedMuscle: "side deltoids",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "dumbbell",
			BodyPart: "SHOULDERS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 2},
		{Code: "face_pull", PrimaryMuscle: "rear deltoids", DetailedMuscle: "rear deltoids",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "cable",
			BodyPart: "SHOULDERS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 2},
		{Code: "tricep_pushdown", PrimaryMuscle: "triceps", DetailedMuscle: "triceps",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "cable",
			BodyPart: "ARMS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 2},
		{Code: "dumbbell_curl", PrimaryMuscle: "biceps", DetailedMuscle: "biceps",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "dumbbell",
			BodyPart: "ARMS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 2},
		{Code: "barbell_row", PrimaryMuscle: "back", DetailedMuscle: "lats",
			Pattern: PatternPullHorizontal, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "BACK", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "strength", FatigueScore: 6},
		{Code: "cable_row", PrimaryMuscle: "back", DetailedMuscle: "mid back",
			Pattern: PatternPullHorizontal, Mechanics: MechanicsCompound, Equipment: "cable",
			BodyPart: "BACK", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 4},
		{Code: "lat_pulldown", PrimaryMuscle: "lats", DetailedMuscle: "upper lats",
			Pattern: PatternPullVertical, Mechanics: MechanicsCompound, Equipment: "cable",
			BodyPart: "BACK", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 4},
		{Code: "pull_up", PrimaryMuscle: "lats", DetailedMuscle: "lats width",
			Pattern: PatternPullVertical, Mechanics: MechanicsCompound, Equipment: "bodyweight",
			BodyPart: "BACK", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "barbell_squat", PrimaryMuscle: "quads", DetailedMuscle: "quadriceps",
			Pattern: PatternKneeDominant, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "LEGS", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "strength", FatigueScore: 8},
		{Code: "leg_press", PrimaryMuscle: "quads", DetailedMuscle: "quads sweep",
			Pattern: PatternKneeDominant, Mechanics: MechanicsCompound, Equipment: "machine",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "goblet_squat", PrimaryMuscle: "quads", DetailedMuscle: "quads and glutes",
			Pattern: PatternKneeDominant, Mechanics: MechanicsCompound, Equipment: "dumbbell",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "barbell_deadlift", PrimaryMuscle: "hamstrings", DetailedMuscle: "posterior chain",
			Pattern: PatternHipDominant, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "LEGS", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "strength", FatigueScore: 9},
		{Code: "romanian_deadlift", PrimaryMuscle: "hamstrings", DetailedMuscle: "hamstrings stretch",
			Pattern: PatternHipDominant, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "LEGS", Tier: TierOptimal, Difficulty: ExperienceIntermediate,
			RepRangeType: "hypertrophy", FatigueScore: 7},
		{Code: "hip_thrust", PrimaryMuscle: "glutes", DetailedMuscle: "glutes",
			Pattern: PatternHipDominant, Mechanics: MechanicsCompound, Equipment: "barbell",
			BodyPart: "GLUTES", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 5},
		{Code: "walking_lunge", PrimaryMuscle: "quads", DetailedMuscle: "glutes and quads",
			Pattern: PatternLunge, Mechanics: MechanicsCompound, Equipment: "dumbbell",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceIntermediate,
			RepRangeType: "hypertrophy", FatigueScore: 6},
		{Code: "leg_curl", PrimaryMuscle: "hamstrings", DetailedMuscle: "hamstring curl",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "machine",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 3},
		{Code: "leg_extension", PrimaryMuscle: "quads", DetailedMuscle: "quads isolation",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "machine",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "hypertrophy", FatigueScore: 3},
		{Code: "standing_calf_raise", PrimaryMuscle: "calves", DetailedMuscle: "calves",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "machine",
			BodyPart: "LEGS", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "endurance", FatigueScore: 2},
		{Code: "plank", PrimaryMuscle: "core", DetailedMuscle: "abs",
			Pattern: PatternCore, Mechanics: MechanicsIsolation, Equipment: "bodyweight",
			BodyPart: "CORE", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "endurance", FatigueScore: 2},
		{Code: "dead_bug", PrimaryMuscle: "core", DetailedMuscle: "deep core",
			Pattern: PatternCore, Mechanics: MechanicsIsolation, Equipment: "bodyweight",
			BodyPart: "CORE", Tier: TierStandard, Difficulty: ExperienceBeginner,
			RepRangeType: "endurance", FatigueScore: 1},
		{Code: "jumping_jacks", PrimaryMuscle: "full body", DetailedMuscle: "full body",
			Pattern: PatternAccessory, Mechanics: MechanicsCardio, Equipment: "bodyweight",
			BodyPart: "CARDIO", Tier: TierWarmup, Difficulty: ExperienceBeginner,
			RepRangeType: "endurance", FatigueScore: 2},
		{Code: "arm_circles", PrimaryMuscle: "shoulders", DetailedMuscle: "rotator cuff",
			Pattern: PatternAccessory, Mechanics: MechanicsIsolation, Equipment: "bodyweight",
			BodyPart: "SHOULDERS", Tier: TierWarmup, Difficulty: ExperienceBeginner,
			RepRangeType: "endurance", FatigueScore: 1},
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return &Generator{
		logger:  testhelpers.NewLogger(testhelpers.NewWriter(t)),
		newRand: func() *rand.Rand { return rand.New(rand.NewPCG(7, 13)) },
	}
}

func TestNormalizeProfile(t *testing.T) {
	got := NormalizeProfile(Profile{Equipment: []string{"Dumbbells", "dumbbell"}})

	if got.Experience != ExperienceIntermediate {
		t.Errorf("Experience = %s, want intermediate default", got.Experience)
	}
	if got.Goal != GoalMass {
		t.Errorf("Goal = %s, want mass default", got.Goal)
	}
	if got.DaysPerWeek != 4 {
		t.Errorf("DaysPerWeek = %d, want 4 default", got.DaysPerWeek)
	}
	if got.SessionTime != 60 {
		t.Errorf("SessionTime = %d, want 60 default", got.SessionTime)
	}
	if got.FatigueTolerance != FatigueMedium {
		t.Errorf("FatigueTolerance = %s, want medium default", got.FatigueTolerance)
	}
	want := []string{"dumbbell", "bodyweight"}
	if len(got.Equipment) != len(want) || got.Equipment[0] != want[0] || got.Equipment[1] != want[1] {
		t.Errorf("Equipment = %v, want %v", got.Equipment, want)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(NormalizeProfile(Profile{})); err != nil {
		t.Errorf("normalized empty profile should validate, got %v", err)
	}

	err := Validate(Profile{Goal: GoalMass, DaysPerWeek: 9, SessionTime: -5})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	want := []string{"daysPerWeek", "sessionTime"}
	if len(validationErr.Fields) != len(want) ||
		validationErr.Fields[0] != want[0] || validationErr.Fields[1] != want[1] {
		t.Errorf("Fields = %v, want %v", validationErr.Fields, want)
	}
}

func TestGenerateBeginnerTwoDayStrength(t *testing.T) {
	generator := newTestGenerator(t)
	plan, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Experience: ExperienceBeginner, Goal: GoalStrength,
		DaysPerWeek: 2, SessionTime: 45,
		Equipment: []string{"barbell", "dumbbell", "machine", "cable"},
	}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.Split != "Full Body Workout (2x/week)" {
		t.Errorf("Split = %q, want the two-day full-body split", plan.Split)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(plan.Days))
	}
	wantDays := []string{"Monday", "Thursday"}
	for i, day := range plan.Days {
		if day.Weekday.String() != wantDays[i] {
			t.Errorf("day %d = %s, want %s", i, day.Weekday, wantDays[i])
		}
		if len(day.Exercises) == 0 {
			t.Errorf("day %d has no exercises", i)
		}
	}
}

func TestGenerateIntermediateMassThreeDays(t *testing.T) {
	generator := newTestGenerator(t)
	plan, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Experience: ExperienceIntermediate, Goal: GoalMass,
		DaysPerWeek: 3, SessionTime: 60,
		Equipment: []string{"barbell", "dumbbell", "machine", "cable"},
	}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.Split != "Push/Pull/Legs (3x/week)" {
		t.Errorf("Split = %q, want push/pull/legs", plan.Split)
	}
	if len(plan.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(plan.Days))
	}
	if plan.Days[0].Block != "Push" || plan.Days[1].Block != "Pull" || plan.Days[2].Block != "Legs" {
		t.Errorf("blocks = %s/%s/%s, want Push/Pull/Legs",
			plan.Days[0].Block, plan.Days[1].Block, plan.Days[2].Block)
	}

	// Hypertrophy compounds run 6-10 reps with 90-120s rests.
	for _, ex := range plan.Days[0].Exercises {
		if ex.Mechanics == MechanicsCompound && ex.Reps != "6-10" {
			t.Errorf("compound %s reps = %q, want 6-10", ex.Code, ex.Reps)
		}
	}

	if got := len(plan.Progression); got != 4 {
		t.Errorf("progression notes = %d, want 4", got)
	}
	if plan.Summary.TotalExercises == 0 || len(plan.Summary.MusclesCovered) == 0 {
		t.Errorf("summary not aggregated: %+v", plan.Summary)
	}
}

func TestGenerateNeverRepeatsExercisesInWeek(t *testing.T) {
	generator := newTestGenerator(t)
	plan, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Experience: ExperienceAdvanced, Goal: GoalMass,
		DaysPerWeek: 4, SessionTime: 75,
		Equipment: []string{"barbell", "dumbbell", "machine", "cable"},
	}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	seen := map[string]bool{}
	hinges := 0
	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			if seen[ex.Code] {
				t.Errorf("exercise %s appears on multiple days", ex.Code)
			}
			seen[ex.Code] = true
			if strings.Contains(ex.Code, "deadlift") {
				hinges++
			}
		}
	}
	// Picking one deadlift variant retires the whole group for the week.
	if hinges > 1 {
		t.Errorf("%d deadlift variants in one week, want at most 1", hinges)
	}
}

func TestGenerateWarmups(t *testing.T) {
	generator := newTestGenerator(t)
	plan, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Experience: ExperienceIntermediate, Goal: GoalMass,
		DaysPerWeek: 2, SessionTime: 60,
		Equipment:     []string{"barbell", "dumbbell", "machine", "cable"},
		IncludeWarmup: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, day := range plan.Days {
		if len(day.Warmup) == 0 {
			t.Fatalf("day %d has no warmup", i)
		}
		for _, warmup := range day.Warmup {
			if warmup.Tier != TierWarmup {
				t.Errorf("warmup slot filled with %s tier %s", warmup.Code, warmup.Tier)
			}
			if warmup.Sets != 2 || warmup.Reps != "10-15" || warmup.Rest != "30s" {
				t.Errorf("warmup %s = %dx%s rest %s, want 2x10-15 rest 30s",
					warmup.Code, warmup.Sets, warmup.Reps, warmup.Rest)
			}
		}
	}
}

func TestGenerateInvalidProfile(t *testing.T) {
	generator := newTestGenerator(t)
	_, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Goal: GoalMass, DaysPerWeek: 8,
	}, nil)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
}

func TestGenerateProgressionHint(t *testing.T) {
	generator := newTestGenerator(t)
	history := map[string]float64{"barbell_bench_press": 80}
	plan, err := generator.Generate(t.Context(), testCatalog(), Profile{
		Experience: ExperienceIntermediate, Goal: GoalMass,
		DaysPerWeek: 3, SessionTime: 60,
		Equipment: []string{"barbell", "dumbbell", "machine", "cable"},
	}, history)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	found := false
	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			if ex.Code == "barbell_bench_press" {
				found = true
				// 80kg * 1.025 rounded to the nearest 0.5.
				if ex.SuggestedWeight != "82.0" {
					t.Errorf("SuggestedWeight = %q, want 82.0", ex.SuggestedWeight)
				}
			}
		}
	}
	if !found {
		t.Skip("bench press not selected this run")
	}
}
