package main

import (
	"net/http"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/planner"
)

type liftRequest struct {
	ExerciseCode string  `json:"exerciseCode"`
	MaxWeight    float64 `json:"maxWeight"`
}

// liftPOST records a max-load observation for this session. Later plans use
// it to suggest a progressed working weight.
func (app *application) liftPOST(w http.ResponseWriter, r *http.Request) {
	var req liftRequest
	if err := app.readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ExerciseCode == "" || req.MaxWeight <= 0 {
		app.clientError(w, r, http.StatusBadRequest, "exerciseCode and a positive maxWeight are required")
		return
	}

	if _, err := app.planService.Exercise(r.Context(), req.ExerciseCode); err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	sessionID := app.sessionID(r)
	if err := app.planService.RecordLift(r.Context(), sessionID, req.ExerciseCode, req.MaxWeight); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
