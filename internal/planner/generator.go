package planner

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
)

// Generator turns a profile and catalog into a weekly plan. A Generator is
// safe for concurrent use; all per-request state lives on the stack.
type Generator struct {
	logger *slog.Logger
	// newRand builds the per-request RNG used for score jitter. Tests
	// replace it with a seeded source.
	newRand func() *rand.Rand
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{
		logger: logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// NormalizeProfile fills profile defaults and canonicalizes equipment.
// Bodyweight is always available.
func NormalizeProfile(p Profile) Profile {
	if p.Experience == "" {
		p.Experience = ExperienceIntermediate
	}
	if p.Goal == "" {
		p.Goal = GoalMass
	}
	if p.DaysPerWeek == 0 {
		p.DaysPerWeek = 4
	}
	if p.SessionTime == 0 {
		p.SessionTime = 60
	}
	if p.FocusBody == "" {
		p.FocusBody = FocusBalanced
	}
	if p.FatigueTolerance == "" {
		p.FatigueTolerance = FatigueMedium
	}

	normalized := make([]string, 0, len(p.Equipment)+1)
	for _, eq := range p.Equipment {
		tag := normalizeEquipment(eq)
		if tag != "" && !slices.Contains(normalized, tag) {
			normalized = append(normalized, tag)
		}
	}
	if !slices.Contains(normalized, "bodyweight") {
		normalized = append(normalized, "bodyweight")
	}
	p.Equipment = normalized

	return p
}

// Validate reports every invalid profile field at once.
func Validate(p Profile) error {
	var fields []string
	if p.Goal == "" {
		fields = append(fields, "goal")
	}
	if p.DaysPerWeek < 1 || p.DaysPerWeek > 7 {
		fields = append(fields, "daysPerWeek")
	}
	if p.SessionTime < 0 {
		fields = append(fields, "sessionTime")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Generate builds a full week plan. Exercise codes never repeat within the
// week; picking one member of a mutual-exclusion group retires the whole
// group for the remaining days.
func (g *Generator) Generate(ctx context.Context, catalog []Exercise, profile Profile, history map[string]float64) (WeekPlan, error) {
	p := NormalizeProfile(profile)
	if err := Validate(p); err != nil {
		return WeekPlan{}, err
	}

	fc := newFilterContext(p)
	eligible := filterExercises(catalog, p, fc)

	g.logger.DebugContext(ctx, "filtered catalog",
		slog.Int("catalog", len(catalog)),
		slog.Int("eligible", len(eligible)))
	if len(eligible) < 20 {
		g.logger.WarnContext(ctx, "few eligible exercises after filtering",
			slog.Int("eligible", len(eligible)))
	}

	split := pickSplit(p)
	days := SelectTrainingDays(len(split.Schedule), p.PreferredDays)
	session := calculateSessionPlan(p.SessionTime, p.Goal, p.Experience)

	var focusParts []string
	if p.FocusBody != FocusBalanced {
		focusParts = focusBodyParts[p.FocusBody]
	}
	weakMuscles := expandWeakPoints(p.WeakPoints)
	rng := g.newRand()

	usedCodes := make(map[string]bool)
	plan := WeekPlan{Split: split.Name}

	for i, blockName := range split.Schedule {
		block := split.Blocks[blockName]
		// The session budget, not the template, decides how many exercises
		// fit the day.
		block.ExerciseCount = session.ExerciseCount

		sc := scoreContext{
			Patterns:     block.Patterns,
			MuscleGroups: block.MuscleGroups,
			Profile:      p,
			WeakMuscles:  weakMuscles,
			FocusParts:   focusParts,
			Filter:       fc,
			Rand:         rng,
		}

		dayExercises := composeDay(eligible, block, blockName, usedCodes, sc)

		for _, ex := range dayExercises {
			usedCodes[ex.Code] = true
			for _, group := range mutuallyExclusiveGroups {
				if codeInGroup(ex.Code, group) {
					for _, member := range group {
						usedCodes[member] = true
					}
				}
			}
		}

		var warmup []ConfiguredExercise
		if p.IncludeWarmup {
			for _, ex := range selectWarmups(catalog, usedCodes) {
				warmup = append(warmup, configureVolume(ex, p, history, p.SessionTime, session.ExerciseCount, 0))
			}
		}

		configured := make([]ConfiguredExercise, len(dayExercises))
		for idx, ex := range dayExercises {
			configured[idx] = configureVolume(ex, p, history, p.SessionTime, len(dayExercises), idx)
		}
		configured, duration := fitToDuration(configured, p.SessionTime, p.Goal, p.Experience)

		totalFatigue := 0
		for _, ex := range configured {
			if ex.FatigueScore > 0 {
				totalFatigue += ex.FatigueScore
			} else {
				totalFatigue += 3
			}
		}

		plan.Days = append(plan.Days, DayPlan{
			Weekday:           days[i],
			Block:             blockName,
			Warmup:            warmup,
			Exercises:         configured,
			EstimatedDuration: duration,
			TotalFatigue:      totalFatigue,
		})
	}

	plan.Progression = ProgressionModel(p.Experience)
	plan.Summary = Summarize(plan.Days)

	return plan, nil
}

// selectWarmups picks up to two unused warmup-tier entries.
func selectWarmups(catalog []Exercise, usedCodes map[string]bool) []Exercise {
	var warmups []Exercise
	for _, ex := range catalog {
		if ex.Tier != TierWarmup || usedCodes[ex.Code] {
			continue
		}
		warmups = append(warmups, ex)
		if len(warmups) == 2 {
			break
		}
	}
	return warmups
}

// ProgressionModel returns the four-week progression notes. Beginners get
// linear load progression; everyone else runs a double-progression wave
// ending in a deload.
func ProgressionModel(experience Experience) []ProgressionNote {
	if experience == ExperienceBeginner {
		return []ProgressionNote{
			{Week: 1, Note: "Week 1: Learn the technique. Use light weights."},
			{Week: 2, Note: "Week 2: Add 2.5kg to the main lifts."},
			{Week: 3, Note: "Week 3: Focus on full range of motion."},
			{Week: 4, Note: "Week 4: Lighter week at 75% of normal volume."},
		}
	}
	return []ProgressionNote{
		{Week: 1, Note: "Week 1: Adaptation. Keep 3-4 reps in reserve."},
		{Week: 2, Note: "Week 2: Add 2.5% load or one extra rep."},
		{Week: 3, Note: "Week 3: Maximum intensity, 1-2 reps in reserve."},
		{Week: 4, Note: "Week 4: Deload at 50% volume, focus on technique."},
	}
}

// Summarize aggregates week-level statistics over the planned days.
func Summarize(days []DayPlan) Summary {
	var (
		total         int
		totalDuration int
		muscles       []string
	)
	for _, day := range days {
		total += len(day.Exercises)
		totalDuration += day.EstimatedDuration
		for _, ex := range day.Exercises {
			muscle := strings.TrimSpace(ex.PrimaryMuscle)
			if muscle != "" && !slices.Contains(muscles, muscle) {
				muscles = append(muscles, muscle)
			}
		}
	}

	if len(days) == 0 {
		return Summary{}
	}
	return Summary{
		TotalExercises:     total,
		AvgExercisesPerDay: (total + len(days)/2) / len(days),
		AvgDuration:        (totalDuration + len(days)/2) / len(days),
		MusclesCovered:     muscles,
	}
}
