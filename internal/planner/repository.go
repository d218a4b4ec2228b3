package planner

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.NewSentinel("not found")

// Repository persists the exercise catalog, lift history, and generated
// plans.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

const exerciseColumns = `code, name, name_fi, primary_muscle, secondary_muscles, pattern, mechanics, equipment,
       body_part, detailed_muscle, tier, difficulty, rep_range_type, fatigue_score, unilateral,
       avg_set_seconds, grip_type, excluded_injuries, mobility_required, description_markdown`

// Exercises returns the full catalog ordered by code.
func (r *Repository) Exercises(ctx context.Context) ([]Exercise, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY code`)
	if err != nil {
		return nil, errors.Wrap(err, "query exercises")
	}
	defer r.closeRows(ctx, rows)

	var exercises []Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan exercise")
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate exercises")
	}
	return exercises, nil
}

// Exercise returns one catalog entry or ErrNotFound.
func (r *Repository) Exercise(ctx context.Context, code string) (Exercise, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE code = ?`, code)
	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, errors.Wrap(ErrNotFound, "exercise", slog.String("code", code))
	}
	if err != nil {
		return Exercise{}, errors.Wrap(err, "scan exercise", slog.String("code", code))
	}
	return ex, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (Exercise, error) {
	var (
		ex                                           Exercise
		nameFi, secondary, excluded, mobility, grips string
		unilateral                                   int
	)
	if err := row.Scan(
		&ex.Code, &ex.Name, &nameFi, &ex.PrimaryMuscle, &secondary, &ex.Pattern, &ex.Mechanics,
		&ex.Equipment, &ex.BodyPart, &ex.DetailedMuscle, &ex.Tier, &ex.Difficulty, &ex.RepRangeType,
		&ex.FatigueScore, &unilateral, &ex.AvgSetSeconds, &grips, &excluded, &mobility,
		&ex.DescriptionMarkdown,
	); err != nil {
		return Exercise{}, err
	}
	ex.Unilateral = unilateral != 0
	ex.GripType = grips
	ex.SecondaryMuscles = splitList(secondary)
	ex.ExcludedInjuries = splitList(excluded)
	ex.MobilityRequired = splitList(mobility)
	if nameFi != "" {
		ex.Translations = map[i18n.Language]string{i18n.Finnish: nameFi}
	}
	return ex, nil
}

// splitList parses a comma separated column into a slice, dropping empties.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *Repository) closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "close rows", errors.SlogError(err))
	}
}
