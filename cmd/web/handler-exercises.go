package main

import (
	"bytes"
	"net/http"

	"github.com/myrjola/liftplan/internal/contexthelpers"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/planner"
)

type exerciseSummary struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	PrimaryMuscle string `json:"primaryMuscle"`
	Pattern       string `json:"pattern"`
	Mechanics     string `json:"mechanics"`
	Equipment     string `json:"equipment"`
	BodyPart      string `json:"bodyPart"`
	Tier          string `json:"tier"`
	Difficulty    string `json:"difficulty"`
	Unilateral    bool   `json:"unilateral"`
}

type exerciseDetail struct {
	exerciseSummary

	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	FatigueScore     int      `json:"fatigueScore"`
	GripType         string   `json:"gripType,omitempty"`
	ExcludedInjuries []string `json:"excludedInjuries,omitempty"`
	MobilityRequired []string `json:"mobilityRequired,omitempty"`
	DescriptionHTML  string   `json:"descriptionHtml,omitempty"`
}

func newExerciseSummary(ex planner.Exercise, lang i18n.Language) exerciseSummary {
	return exerciseSummary{
		Code:          ex.Code,
		Name:          ex.LocalizedName(lang),
		PrimaryMuscle: ex.PrimaryMuscle,
		Pattern:       string(ex.Pattern),
		Mechanics:     string(ex.Mechanics),
		Equipment:     ex.Equipment,
		BodyPart:      ex.BodyPart,
		Tier:          string(ex.Tier),
		Difficulty:    string(ex.Difficulty),
		Unilateral:    ex.Unilateral,
	}
}

// exercisesGET lists the exercise catalog with localized display names.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	exercises, err := app.planService.Exercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	lang := contexthelpers.Language(r.Context())
	response := make([]exerciseSummary, 0, len(exercises))
	for _, ex := range exercises {
		response = append(response, newExerciseSummary(ex, lang))
	}
	app.writeJSON(w, r, http.StatusOK, response)
}

// exerciseGET returns one catalog entry with its description rendered from
// markdown to HTML.
func (app *application) exerciseGET(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	exercise, err := app.planService.Exercise(r.Context(), code)
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	detail := exerciseDetail{
		exerciseSummary:  newExerciseSummary(exercise, contexthelpers.Language(r.Context())),
		SecondaryMuscles: exercise.SecondaryMuscles,
		FatigueScore:     exercise.FatigueScore,
		GripType:         exercise.GripType,
		ExcludedInjuries: exercise.ExcludedInjuries,
		MobilityRequired: exercise.MobilityRequired,
	}
	if exercise.DescriptionMarkdown != "" {
		var buf bytes.Buffer
		if err = app.markdown.Convert([]byte(exercise.DescriptionMarkdown), &buf); err != nil {
			app.serverError(w, r, errors.Wrap(err, "render description"))
			return
		}
		detail.DescriptionHTML = buf.String()
	}
	app.writeJSON(w, r, http.StatusOK, detail)
}
