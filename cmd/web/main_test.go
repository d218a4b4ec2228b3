package main

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/myrjola/liftplan/internal/planner"
	"github.com/myrjola/liftplan/internal/sqlite"
	"github.com/myrjola/liftplan/internal/testhelpers"
	"github.com/yuin/goldmark"
)

// newTestServer starts the API against an in-memory database seeded with the
// fixture catalog. The returned client carries session cookies between
// requests.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close database: %v", closeErr)
		}
	})

	sessionManager := initializeSessionManager(db)
	// The test server speaks plain HTTP.
	sessionManager.Cookie.Secure = false

	repository := planner.NewRepository(db, logger)
	app := &application{
		logger:         logger,
		sessionManager: sessionManager,
		planService:    planner.NewService(repository, planner.NewGenerator(logger), nil, logger),
		flightRecorder: nil,
		markdown:       goldmark.New(),
	}

	server := httptest.NewServer(app.routes())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("new cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	return server, client
}
