package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/liftplan/internal/contexthelpers"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
)

// maxRequestBody caps JSON request bodies at one megabyte.
const maxRequestBody = 1 << 20

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("path", contexthelpers.CurrentPath(r.Context())), errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound, "not found")
}

// readJSON decodes the request body into dst, rejecting unknown fields and
// trailing content.
func (app *application) readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// requestLanguage resolves the response language from the lang query
// parameter, then from the Accept-Language header, defaulting to English.
func requestLanguage(r *http.Request) i18n.Language {
	if lang := i18n.Language(r.URL.Query().Get("lang")); lang != "" && i18n.IsSupported(lang) {
		return lang
	}
	accept := r.Header.Get("Accept-Language")
	for part := range strings.SplitSeq(accept, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexAny(tag, "-;"); i != -1 {
			tag = tag[:i]
		}
		if lang := i18n.Language(strings.ToLower(tag)); i18n.IsSupported(lang) {
			return lang
		}
	}
	return i18n.DefaultLanguage
}
