package planner

import (
	"context"
	"log/slog"

	"github.com/myrjola/liftplan/internal/errors"
)

// AIPlanner generates a week plan with an external model. Implementations
// must only return exercises drawn from the eligible catalog they are given.
type AIPlanner interface {
	PlanWeek(ctx context.Context, profile Profile, eligible []Exercise) (WeekPlan, error)
}

// Service is the application-facing API for plan generation and catalog
// browsing. The AI planner is optional; when absent or failing, the local
// generator produces the plan.
type Service struct {
	repo      *Repository
	generator *Generator
	ai        AIPlanner
	logger    *slog.Logger
}

func NewService(repo *Repository, generator *Generator, ai AIPlanner, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		ai:        ai,
		logger:    logger,
	}
}

// Exercises returns the catalog.
func (s *Service) Exercises(ctx context.Context) ([]Exercise, error) {
	return s.repo.Exercises(ctx)
}

// Exercise returns one catalog entry or ErrNotFound.
func (s *Service) Exercise(ctx context.Context, code string) (Exercise, error) {
	return s.repo.Exercise(ctx, code)
}

// RecordLift stores a max-load observation used for progression hints.
func (s *Service) RecordLift(ctx context.Context, sessionToken, exerciseCode string, maxWeight float64) error {
	return s.repo.RecordLift(ctx, sessionToken, exerciseCode, maxWeight)
}

// GeneratePlan builds, persists, and returns a week plan for the session.
// The AI path runs first when configured; any failure there degrades to the
// local generator instead of failing the request.
func (s *Service) GeneratePlan(ctx context.Context, sessionToken string, profile Profile, forceLocal bool) (WeekPlan, int64, error) {
	p := NormalizeProfile(profile)
	if err := Validate(p); err != nil {
		return WeekPlan{}, 0, err
	}

	catalog, err := s.repo.Exercises(ctx)
	if err != nil {
		return WeekPlan{}, 0, errors.Wrap(err, "load catalog")
	}
	history, err := s.repo.MaxWeights(ctx, sessionToken)
	if err != nil {
		return WeekPlan{}, 0, errors.Wrap(err, "load lift history")
	}

	var plan WeekPlan
	generated := false
	if s.ai != nil && !forceLocal {
		eligible := filterExercises(catalog, p, newFilterContext(p))
		plan, err = s.ai.PlanWeek(ctx, p, eligible)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "ai plan generation failed, using local generator",
				errors.SlogError(err))
		} else {
			generated = true
		}
	}
	if !generated {
		localPlan, genErr := s.generator.Generate(ctx, catalog, p, history)
		if genErr != nil {
			return WeekPlan{}, 0, genErr
		}
		if s.ai != nil && !forceLocal {
			localPlan.Degraded = true
			localPlan.DegradedReason = "AI plan generation failed; plan produced by the local generator."
		}
		plan = localPlan
	}

	planID, err := s.repo.SavePlan(ctx, sessionToken, plan)
	if err != nil {
		return WeekPlan{}, 0, errors.Wrap(err, "save plan")
	}
	return plan, planID, nil
}

// CurrentPlan returns the latest stored plan for the session.
func (s *Service) CurrentPlan(ctx context.Context, sessionToken string) (WeekPlan, error) {
	return s.repo.LatestPlan(ctx, sessionToken)
}
