package main

import (
	"crypto/rand"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/myrjola/liftplan/internal/contexthelpers"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/planner"
)

const (
	sessionKeyID     = "session_id"
	sessionKeyPlanID = "plan_id"
)

type planRequest struct {
	Experience       string   `json:"experience"`
	Goal             string   `json:"goal"`
	DaysPerWeek      int      `json:"daysPerWeek"`
	SessionTime      int      `json:"sessionTime"`
	Equipment        []string `json:"equipment"`
	Injuries         []string `json:"injuries"`
	FocusBody        string   `json:"focusBody"`
	WeakPoints       []string `json:"weakPoints"`
	FatigueTolerance string   `json:"fatigueTolerance"`
	PreferUnilateral bool     `json:"preferUnilateral"`
	PreferredDays    []string `json:"preferredDays"`
	MobilityIssues   []string `json:"mobilityIssues"`
	IncludeWarmup    bool     `json:"includeWarmup"`
	ForceLocal       bool     `json:"forceLocal"`
}

type configuredExerciseResponse struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	PrimaryMuscle    string `json:"primaryMuscle"`
	Pattern          string `json:"pattern"`
	Mechanics        string `json:"mechanics"`
	Equipment        string `json:"equipment"`
	Sets             int    `json:"sets"`
	Reps             string `json:"reps"`
	Rest             string `json:"rest"`
	SuggestedWeight  string `json:"suggestedWeight,omitempty"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

type dayResponse struct {
	Weekday           string                       `json:"weekday"`
	Block             string                       `json:"block"`
	Warmup            []configuredExerciseResponse `json:"warmup,omitempty"`
	Exercises         []configuredExerciseResponse `json:"exercises"`
	EstimatedDuration int                          `json:"estimatedDuration"`
	TotalFatigue      int                          `json:"totalFatigue"`
}

type summaryResponse struct {
	TotalExercises     int      `json:"totalExercises"`
	AvgExercisesPerDay int      `json:"avgExercisesPerDay"`
	AvgDuration        int      `json:"avgDuration"`
	MusclesCovered     []string `json:"musclesCovered"`
}

type planResponse struct {
	ID             int64                     `json:"id"`
	Split          string                    `json:"split"`
	Days           []dayResponse             `json:"days"`
	Progression    []planner.ProgressionNote `json:"progression"`
	Summary        summaryResponse           `json:"summary"`
	Degraded       bool                      `json:"degraded"`
	DegradedReason string                    `json:"degradedReason,omitempty"`
}

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// toProfile converts the request body into a planner profile. Weekday names
// are matched case-insensitively.
func toProfile(req planRequest) (planner.Profile, error) {
	preferredDays := make([]time.Weekday, 0, len(req.PreferredDays))
	for _, name := range req.PreferredDays {
		day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return planner.Profile{}, errors.Wrap(errors.New("unknown weekday"),
				"parse preferred days", slog.String("weekday", name))
		}
		preferredDays = append(preferredDays, day)
	}

	return planner.Profile{
		Experience:       planner.Experience(req.Experience),
		Goal:             planner.Goal(req.Goal),
		DaysPerWeek:      req.DaysPerWeek,
		SessionTime:      req.SessionTime,
		Equipment:        req.Equipment,
		Injuries:         req.Injuries,
		FocusBody:        planner.FocusBody(req.FocusBody),
		WeakPoints:       req.WeakPoints,
		FatigueTolerance: planner.FatigueTolerance(req.FatigueTolerance),
		PreferUnilateral: req.PreferUnilateral,
		PreferredDays:    preferredDays,
		MobilityIssues:   req.MobilityIssues,
		IncludeWarmup:    req.IncludeWarmup,
	}, nil
}

func newPlanResponse(plan planner.WeekPlan, planID int64, lang i18n.Language) planResponse {
	days := make([]dayResponse, 0, len(plan.Days))
	for _, day := range plan.Days {
		days = append(days, dayResponse{
			Weekday:           day.Weekday.String(),
			Block:             day.Block,
			Warmup:            newExerciseResponses(day.Warmup, lang),
			Exercises:         newExerciseResponses(day.Exercises, lang),
			EstimatedDuration: day.EstimatedDuration,
			TotalFatigue:      day.TotalFatigue,
		})
	}
	degradedReason := ""
	if plan.Degraded {
		degradedReason = i18n.Translate(lang, "plan.degraded")
	}
	return planResponse{
		ID:          planID,
		Split:       plan.Split,
		Days:        days,
		Progression: plan.Progression,
		Summary: summaryResponse{
			TotalExercises:     plan.Summary.TotalExercises,
			AvgExercisesPerDay: plan.Summary.AvgExercisesPerDay,
			AvgDuration:        plan.Summary.AvgDuration,
			MusclesCovered:     plan.Summary.MusclesCovered,
		},
		Degraded:       plan.Degraded,
		DegradedReason: degradedReason,
	}
}

func newExerciseResponses(exercises []planner.ConfiguredExercise, lang i18n.Language) []configuredExerciseResponse {
	responses := make([]configuredExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		responses = append(responses, configuredExerciseResponse{
			Code:             ex.Code,
			Name:             ex.LocalizedName(lang),
			PrimaryMuscle:    ex.PrimaryMuscle,
			Pattern:          string(ex.Pattern),
			Mechanics:        string(ex.Mechanics),
			Equipment:        ex.Equipment,
			Sets:             ex.Sets,
			Reps:             ex.Reps,
			Rest:             ex.Rest,
			SuggestedWeight:  ex.SuggestedWeight,
			EstimatedMinutes: int(math.Round(ex.EstimatedTime.Minutes())),
		})
	}
	return responses
}

// sessionID returns the stable identifier for this anonymous session,
// creating one on first use.
func (app *application) sessionID(r *http.Request) string {
	ctx := r.Context()
	id := app.sessionManager.GetString(ctx, sessionKeyID)
	if id == "" {
		id = rand.Text()
		app.sessionManager.Put(ctx, sessionKeyID, id)
	}
	return id
}

// planPOST generates a plan for the posted profile, persists it, and stores
// its id in the session.
func (app *application) planPOST(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := app.readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	profile, err := toProfile(req)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "unknown weekday in preferredDays")
		return
	}

	sessionID := app.sessionID(r)
	plan, planID, err := app.planService.GeneratePlan(r.Context(), sessionID, profile, req.ForceLocal)
	if err != nil {
		var validationErr *planner.ValidationError
		if errors.As(err, &validationErr) {
			app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
				Error:  "invalid profile",
				Fields: validationErr.Fields,
			})
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyPlanID, planID)

	lang := contexthelpers.Language(r.Context())
	app.writeJSON(w, r, http.StatusOK, newPlanResponse(plan, planID, lang))
}

// planCurrentGET returns the latest plan generated in this session.
func (app *application) planCurrentGET(w http.ResponseWriter, r *http.Request) {
	lang := contexthelpers.Language(r.Context())
	sessionID := app.sessionManager.GetString(r.Context(), sessionKeyID)
	if sessionID == "" {
		app.clientError(w, r, http.StatusNotFound, i18n.Translate(lang, "plan.none"))
		return
	}

	plan, err := app.planService.CurrentPlan(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, i18n.Translate(lang, "plan.none"))
			return
		}
		app.serverError(w, r, err)
		return
	}

	planID := app.sessionManager.GetInt64(r.Context(), sessionKeyPlanID)
	app.writeJSON(w, r, http.StatusOK, newPlanResponse(plan, planID, lang))
}
