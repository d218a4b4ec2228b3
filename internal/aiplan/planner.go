// Package aiplan generates week plans with an OpenAI chat model. The model
// receives the user profile and the eligible catalog, and its answer is
// parsed, validated against the catalog, and corrected before it becomes a
// plan. Any failure is returned to the caller, which falls back to the local
// generator.
package aiplan

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/planner"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	completionMaxTokens   = 8192
	completionTemperature = 0.5
)

// Planner asks an OpenAI chat model for a week plan.
type Planner struct {
	client openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

// New builds a Planner using the given API key.
func New(apiKey string, logger *slog.Logger) *Planner {
	return &Planner{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4oMini,
		logger: logger,
	}
}

// PlanWeek implements planner.AIPlanner.
func (a *Planner) PlanWeek(ctx context.Context, profile planner.Profile, eligible []planner.Exercise) (planner.WeekPlan, error) {
	if len(eligible) == 0 {
		return planner.WeekPlan{}, errors.New("no eligible exercises")
	}
	if len(eligible) < 20 {
		a.logger.WarnContext(ctx, "few eligible exercises for model",
			slog.Int("eligible", len(eligible)))
	}

	days := planner.SelectTrainingDays(profile.DaysPerWeek, profile.PreferredDays)
	userPrompt, err := buildUserPrompt(profile, eligible, days)
	if err != nil {
		return planner.WeekPlan{}, errors.Wrap(err, "build prompt")
	}

	a.logger.DebugContext(ctx, "requesting chat completion",
		slog.String("model", string(a.model)),
		slog.Int("eligible", len(eligible)))

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(completionMaxTokens),
		Temperature: openai.Float(completionTemperature),
	})
	if err != nil {
		return planner.WeekPlan{}, errors.Wrap(err, "chat completion")
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return planner.WeekPlan{}, errors.New("empty completion")
	}

	a.logger.DebugContext(ctx, "received chat completion",
		slog.Int64("prompt_tokens", completion.Usage.PromptTokens),
		slog.Int64("completion_tokens", completion.Usage.CompletionTokens))

	plan, err := parsePlanResponse(completion.Choices[0].Message.Content)
	if err != nil {
		return planner.WeekPlan{}, err
	}

	substituted, droppedCodes := resolveExerciseCodes(&plan, eligible)
	for _, sub := range substituted {
		a.logger.WarnContext(ctx, "substituted unknown exercise code",
			slog.String("from", sub.From), slog.String("to", sub.To))
	}
	if len(droppedCodes) > 0 {
		a.logger.WarnContext(ctx, "dropped unknown exercise codes",
			slog.String("codes", strings.Join(droppedCodes, ", ")))
	}

	catalog := make(map[string]planner.Exercise, len(eligible))
	for _, ex := range eligible {
		catalog[ex.Code] = ex
	}
	if corrected := correctSetsReps(&plan, profile, catalog); corrected > 0 {
		a.logger.DebugContext(ctx, "corrected sets and reps",
			slog.Int("corrections", corrected))
	}

	return toWeekPlan(plan, profile, catalog, days)
}

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// toWeekPlan converts the validated model answer into the shared plan shape.
// Unrecognized weekday names fall back to the precomputed training days.
func toWeekPlan(plan aiPlan, profile planner.Profile, catalog map[string]planner.Exercise, days []time.Weekday) (planner.WeekPlan, error) {
	result := planner.WeekPlan{Split: plan.SplitName}
	if result.Split == "" {
		result.Split = "AI Weekly Plan"
	}

	for i, day := range plan.Week {
		if len(day.Exercises) == 0 {
			return planner.WeekPlan{}, errors.Wrap(errors.New("plan day has no exercises"),
				"convert plan", slog.String("day", day.Day))
		}

		weekday, ok := weekdayByName[strings.ToLower(strings.TrimSpace(day.Day))]
		if !ok && len(days) > 0 {
			weekday = days[i%len(days)]
		}

		block := day.DayName
		if block == "" {
			block = day.Focus
		}
		if block == "" {
			block = "Training"
		}

		var (
			configured   []planner.ConfiguredExercise
			totalFatigue int
			totalTime    time.Duration
		)
		for _, ex := range day.Exercises {
			info, known := catalog[ex.Code]
			if !known {
				// resolveExerciseCodes keeps only catalog codes.
				continue
			}
			ce := planner.ConfiguredExercise{
				Exercise: info,
				Sets:     max(1, ex.Sets),
				Reps:     ex.Reps,
				Rest:     ex.Rest,
			}
			if ce.Reps == "" {
				ce.Reps = "8-12"
			}
			if ce.Rest == "" {
				ce.Rest = "90s"
			}
			ce.EstimatedTime = planner.EstimateExerciseTime(ce)
			totalTime += ce.EstimatedTime
			if info.FatigueScore > 0 {
				totalFatigue += info.FatigueScore
			} else {
				totalFatigue += 3
			}
			configured = append(configured, ce)
		}
		if len(configured) == 0 {
			return planner.WeekPlan{}, errors.Wrap(errors.New("plan day has no valid exercises"),
				"convert plan", slog.String("day", day.Day))
		}

		duration := day.EstimatedDuration
		if duration <= 0 {
			duration = int(math.Round(totalTime.Minutes()))
		}

		result.Days = append(result.Days, planner.DayPlan{
			Weekday:           weekday,
			Block:             block,
			Exercises:         configured,
			EstimatedDuration: duration,
			TotalFatigue:      totalFatigue,
		})
	}

	result.Progression = planner.ProgressionModel(profile.Experience)
	result.Summary = planner.Summarize(result.Days)
	return result, nil
}
