package planner

import (
	"context"
	"log/slog"

	"github.com/myrjola/liftplan/internal/errors"
)

// MaxWeights returns the most recent max load per exercise for a session.
func (r *Repository) MaxWeights(ctx context.Context, sessionToken string) (map[string]float64, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
SELECT exercise_code, max_weight
FROM lift_history
WHERE session_token = ?
  AND id IN (SELECT MAX(id) FROM lift_history WHERE session_token = ? GROUP BY exercise_code)`,
		sessionToken, sessionToken)
	if err != nil {
		return nil, errors.Wrap(err, "query lift history")
	}
	defer r.closeRows(ctx, rows)

	weights := make(map[string]float64)
	for rows.Next() {
		var (
			code   string
			weight float64
		)
		if err = rows.Scan(&code, &weight); err != nil {
			return nil, errors.Wrap(err, "scan lift history")
		}
		weights[code] = weight
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate lift history")
	}
	return weights, nil
}

// RecordLift stores a max load observation for progression hints.
func (r *Repository) RecordLift(ctx context.Context, sessionToken, exerciseCode string, maxWeight float64) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
INSERT INTO lift_history (session_token, exercise_code, max_weight) VALUES (?, ?, ?)`,
		sessionToken, exerciseCode, maxWeight); err != nil {
		return errors.Wrap(err, "insert lift history",
			slog.String("exercise", exerciseCode))
	}
	return nil
}
