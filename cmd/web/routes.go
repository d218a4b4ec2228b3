package main

import (
	"net/http"
)

// routes wires the JSON API behind the shared middleware chain:
// recover-panic, then request logging, then the session manager, then the
// per-request timeout.
func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/exercises", app.exercisesGET)
	mux.HandleFunc("GET /api/exercises/{code}", app.exerciseGET)
	mux.HandleFunc("POST /api/plan", app.planPOST)
	mux.HandleFunc("GET /api/plan/current", app.planCurrentGET)
	mux.HandleFunc("POST /api/lifts", app.liftPOST)
	mux.HandleFunc("/", app.notFound)

	return app.recoverPanic(
		app.logAndTraceRequest(
			noCache(
				app.sessionManager.LoadAndSave(
					commonContext(
						app.timeout(mux))))))
}
