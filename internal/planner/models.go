// Package planner generates personalized weekly workout plans from an
// exercise catalog and a user profile. The pipeline filters the catalog for
// eligibility, picks a weekly split, composes each training day, assigns
// sets/reps/rest, and scales volume to fit the requested session length.
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/myrjola/liftplan/internal/i18n"
)

// Goal is the training goal driving rep ranges and rest periods.
type Goal string

const (
	GoalStrength      Goal = "strength"
	GoalMass          Goal = "mass"
	GoalEndurance     Goal = "endurance"
	GoalReduction     Goal = "reduction"
	GoalRecomposition Goal = "recomposition"
)

// Experience is the user's training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Mechanics classifies an exercise as multi-joint, single-joint, or cardio.
type Mechanics string

const (
	MechanicsCompound  Mechanics = "compound"
	MechanicsIsolation Mechanics = "isolation"
	MechanicsCardio    Mechanics = "cardio"
)

// Tier ranks exercise quality. Optimal exercises are preferred over standard
// and alternative ones; warmup-tier exercises are only used for warmups.
type Tier string

const (
	TierOptimal     Tier = "optimal"
	TierStandard    Tier = "standard"
	TierAlternative Tier = "alternative"
	TierWarmup      Tier = "warmup"
)

// Pattern is a movement-pattern tag used to guarantee day-level variety.
type Pattern string

const (
	PatternPushHorizontal Pattern = "push_horizontal"
	PatternPushVertical   Pattern = "push_vertical"
	PatternPullHorizontal Pattern = "pull_horizontal"
	PatternPullVertical   Pattern = "pull_vertical"
	PatternKneeDominant   Pattern = "knee_dominant"
	PatternHipDominant    Pattern = "hip_dominant"
	PatternLunge          Pattern = "lunge"
	PatternCore           Pattern = "core"
	PatternAccessory      Pattern = "accessory"
)

// FatigueTolerance caps how much systemically fatiguing work fits in a day.
type FatigueTolerance string

const (
	FatigueLow    FatigueTolerance = "low"
	FatigueMedium FatigueTolerance = "medium"
	FatigueHigh   FatigueTolerance = "high"
)

// FocusBody biases the weekly structure toward a body region.
type FocusBody string

const (
	FocusBalanced FocusBody = "balanced"
	FocusUpper    FocusBody = "upper"
	FocusLower    FocusBody = "lower"
	FocusCore     FocusBody = "core"
)

// Exercise is one catalog entry. Catalog entries are immutable once loaded
// and may be shared between concurrent generation requests.
type Exercise struct {
	Code                string
	Name                string
	Translations        map[i18n.Language]string
	PrimaryMuscle       string
	SecondaryMuscles    []string
	Pattern             Pattern
	Mechanics           Mechanics
	Equipment           string
	BodyPart            string
	DetailedMuscle      string
	Tier                Tier
	Difficulty          Experience
	RepRangeType        string
	FatigueScore        int
	Unilateral          bool
	AvgSetSeconds       int
	GripType            string
	ExcludedInjuries    []string
	MobilityRequired    []string
	DescriptionMarkdown string
}

// LocalizedName returns the display name in the given language, falling back
// to the English name.
func (e Exercise) LocalizedName(lang i18n.Language) string {
	if name, ok := e.Translations[lang]; ok && name != "" {
		return name
	}
	return e.Name
}

// Profile is the normalized input to plan generation. Construct it through
// NormalizeProfile so equipment tags and defaults are canonical.
type Profile struct {
	Experience       Experience
	Goal             Goal
	DaysPerWeek      int
	SessionTime      int // minutes
	Equipment        []string
	Injuries         []string
	FocusBody        FocusBody
	WeakPoints       []string
	FatigueTolerance FatigueTolerance
	PreferUnilateral bool
	PreferredDays    []time.Weekday
	MobilityIssues   []string
	IncludeWarmup    bool
}

// BlockDef describes one training day of a split template.
type BlockDef struct {
	MuscleGroups  []string
	Patterns      []Pattern
	ExerciseCount int
	CompoundFirst bool
	// PreferCodes lists exercise code fragments favored for this block,
	// used by injury-safe templates to steer selection toward machines.
	PreferCodes []string
}

// SplitTemplate is a named weekly structure. Templates are hand-authored
// data; selection between them is a deterministic decision tree.
type SplitTemplate struct {
	Key      string
	Name     string
	Schedule []string
	Blocks   map[string]BlockDef
}

// ConfiguredExercise is an exercise with assigned volume.
type ConfiguredExercise struct {
	Exercise

	Sets            int
	Reps            string
	Rest            string
	SuggestedWeight string
	EstimatedTime   time.Duration
}

// DayPlan is one training day of a generated week.
type DayPlan struct {
	Weekday           time.Weekday
	Block             string
	Warmup            []ConfiguredExercise
	Exercises         []ConfiguredExercise
	EstimatedDuration int // minutes
	TotalFatigue      int
}

// ProgressionNote is a week-by-week progression instruction.
type ProgressionNote struct {
	Week int    `json:"week"`
	Note string `json:"note"`
}

// Summary aggregates week-level statistics for display.
type Summary struct {
	TotalExercises     int
	AvgExercisesPerDay int
	AvgDuration        int // minutes
	MusclesCovered     []string
}

// WeekPlan is the full generation result.
type WeekPlan struct {
	Split       string
	Days        []DayPlan
	Progression []ProgressionNote
	Summary     Summary

	// Degraded is set when the AI generation path failed and the plan came
	// from the local fallback generator instead.
	Degraded       bool
	DegradedReason string
}

// ValidationError reports every missing or invalid profile field at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Fields, ", "))
}
