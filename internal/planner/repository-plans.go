package planner

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/myrjola/liftplan/internal/errors"
)

// SavePlan stores a generated week plan for a session and returns its id.
func (r *Repository) SavePlan(ctx context.Context, sessionToken string, plan WeekPlan) (int64, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}
	defer r.rollback(ctx, tx)

	degraded := 0
	if plan.Degraded {
		degraded = 1
	}
	result, err := tx.ExecContext(ctx, `
INSERT INTO plans (session_token, split, degraded, degraded_reason) VALUES (?, ?, ?, ?)`,
		sessionToken, plan.Split, degraded, plan.DegradedReason)
	if err != nil {
		return 0, errors.Wrap(err, "insert plan")
	}
	planID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "plan id")
	}

	for dayIdx, day := range plan.Days {
		result, err = tx.ExecContext(ctx, `
INSERT INTO plan_days (plan_id, position, weekday, block, estimated_duration, total_fatigue)
VALUES (?, ?, ?, ?, ?, ?)`,
			planID, dayIdx, int(day.Weekday), day.Block, day.EstimatedDuration, day.TotalFatigue)
		if err != nil {
			return 0, errors.Wrap(err, "insert plan day", slog.Int("day", dayIdx))
		}
		dayID, err := result.LastInsertId()
		if err != nil {
			return 0, errors.Wrap(err, "plan day id")
		}

		if err = insertDayExercises(ctx, tx, dayID, day.Warmup, true); err != nil {
			return 0, err
		}
		if err = insertDayExercises(ctx, tx, dayID, day.Exercises, false); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit plan")
	}
	return planID, nil
}

func insertDayExercises(ctx context.Context, tx *sql.Tx, dayID int64, exercises []ConfiguredExercise, warmup bool) error {
	warmupFlag := 0
	if warmup {
		warmupFlag = 1
	}
	for i, ex := range exercises {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO plan_exercises (plan_day_id, position, exercise_code, warmup, sets, reps, rest, suggested_weight)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			dayID, i, ex.Code, warmupFlag, ex.Sets, ex.Reps, ex.Rest, ex.SuggestedWeight); err != nil {
			return errors.Wrap(err, "insert plan exercise", slog.String("exercise", ex.Code))
		}
	}
	return nil
}

// PlanByID loads one stored plan with its days and exercises. Returns
// ErrNotFound when the plan does not exist or belongs to another session.
func (r *Repository) PlanByID(ctx context.Context, sessionToken string, planID int64) (WeekPlan, error) {
	var (
		plan     WeekPlan
		degraded int
	)
	row := r.db.ReadOnly.QueryRowContext(ctx, `
SELECT split, degraded, degraded_reason FROM plans WHERE id = ? AND session_token = ?`,
		planID, sessionToken)
	if err := row.Scan(&plan.Split, &degraded, &plan.DegradedReason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WeekPlan{}, errors.Wrap(ErrNotFound, "plan", slog.Int64("id", planID))
		}
		return WeekPlan{}, errors.Wrap(err, "scan plan")
	}
	plan.Degraded = degraded != 0

	dayIDs, err := r.loadPlanDays(ctx, planID, &plan)
	if err != nil {
		return WeekPlan{}, err
	}
	for i, dayID := range dayIDs {
		if err = r.loadDayExercises(ctx, dayID, &plan.Days[i]); err != nil {
			return WeekPlan{}, err
		}
	}
	plan.Summary = Summarize(plan.Days)
	return plan, nil
}

// LatestPlan returns the most recent plan for a session or ErrNotFound.
func (r *Repository) LatestPlan(ctx context.Context, sessionToken string) (WeekPlan, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
SELECT id FROM plans WHERE session_token = ? ORDER BY created_at DESC, id DESC LIMIT 1`, sessionToken)
	var planID int64
	if err := row.Scan(&planID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WeekPlan{}, errors.Wrap(ErrNotFound, "latest plan")
		}
		return WeekPlan{}, errors.Wrap(err, "scan latest plan id")
	}
	return r.PlanByID(ctx, sessionToken, planID)
}

func (r *Repository) loadPlanDays(ctx context.Context, planID int64, plan *WeekPlan) ([]int64, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
SELECT id, weekday, block, estimated_duration, total_fatigue
FROM plan_days WHERE plan_id = ? ORDER BY position`, planID)
	if err != nil {
		return nil, errors.Wrap(err, "query plan days")
	}
	defer r.closeRows(ctx, rows)

	var dayIDs []int64
	for rows.Next() {
		var (
			dayID   int64
			weekday int
			day     DayPlan
		)
		if err = rows.Scan(&dayID, &weekday, &day.Block, &day.EstimatedDuration, &day.TotalFatigue); err != nil {
			return nil, errors.Wrap(err, "scan plan day")
		}
		day.Weekday = time.Weekday(weekday)
		plan.Days = append(plan.Days, day)
		dayIDs = append(dayIDs, dayID)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate plan days")
	}
	return dayIDs, nil
}

func (r *Repository) loadDayExercises(ctx context.Context, dayID int64, day *DayPlan) error {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
SELECT pe.warmup, pe.sets, pe.reps, pe.rest, pe.suggested_weight, `+exerciseColumns+`
FROM plan_exercises AS pe JOIN exercises ON exercises.code = pe.exercise_code
WHERE pe.plan_day_id = ? ORDER BY pe.position`, dayID)
	if err != nil {
		return errors.Wrap(err, "query plan exercises")
	}
	defer r.closeRows(ctx, rows)

	for rows.Next() {
		var (
			warmup                                       int
			configured                                   ConfiguredExercise
			nameFi, secondary, excluded, mobility, grips string
			unilateral                                   int
		)
		if err = rows.Scan(
			&warmup, &configured.Sets, &configured.Reps, &configured.Rest, &configured.SuggestedWeight,
			&configured.Code, &configured.Name, &nameFi, &configured.PrimaryMuscle, &secondary,
			&configured.Pattern, &configured.Mechanics, &configured.Equipment, &configured.BodyPart,
			&configured.DetailedMuscle, &configured.Tier, &configured.Difficulty, &configured.RepRangeType,
			&configured.FatigueScore, &unilateral, &configured.AvgSetSeconds, &grips, &excluded, &mobility,
			&configured.DescriptionMarkdown,
		); err != nil {
			return errors.Wrap(err, "scan plan exercise")
		}
		configured.Unilateral = unilateral != 0
		configured.GripType = grips
		configured.SecondaryMuscles = splitList(secondary)
		configured.EstimatedTime = EstimateExerciseTime(configured)
		if warmup != 0 {
			day.Warmup = append(day.Warmup, configured)
		} else {
			day.Exercises = append(day.Exercises, configured)
		}
	}
	if err = rows.Err(); err != nil {
		return errors.Wrap(err, "iterate plan exercises")
	}
	return nil
}

func (r *Repository) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", errors.SlogError(err))
	}
}
