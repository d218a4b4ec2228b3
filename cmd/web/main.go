package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/myrjola/liftplan/internal/aiplan"
	"github.com/myrjola/liftplan/internal/envstruct"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/flightrecorder"
	"github.com/myrjola/liftplan/internal/logging"
	"github.com/myrjola/liftplan/internal/planner"
	"github.com/myrjola/liftplan/internal/sqlite"
	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	planService    *planner.Service
	flightRecorder *flightrecorder.Service
	markdown       goldmark.Markdown
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTPLAN_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTPLAN_SQLITE_URL" envDefault:"./liftplan.sqlite3"`
	// OpenAIAPIKey enables the AI plan generation path. When empty, plans
	// always come from the local generator.
	OpenAIAPIKey string `env:"LIFTPLAN_OPENAI_API_KEY" envDefault:""`
	// TracesDirectory is where timeout flight-recorder traces are written.
	TracesDirectory string `env:"LIFTPLAN_TRACES_DIRECTORY" envDefault:"./traces"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)

	repository := planner.NewRepository(db, logger)
	generator := planner.NewGenerator(logger)

	var aiPlanner planner.AIPlanner
	if cfg.OpenAIAPIKey != "" {
		aiPlanner = aiplan.New(cfg.OpenAIAPIKey, logger)
		logger.LogAttrs(ctx, slog.LevelInfo, "AI plan generation enabled")
	} else {
		logger.LogAttrs(ctx, slog.LevelInfo, "no OpenAI API key, plans come from the local generator")
	}

	recorder, err := flightrecorder.New(flightrecorder.Config{
		Logger:    logger,
		TracesDir: cfg.TracesDirectory,
	})
	if err != nil {
		return errors.Wrap(err, "new flight recorder")
	}
	if err = recorder.Start(ctx); err != nil {
		return errors.Wrap(err, "start flight recorder")
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		planService:    planner.NewService(repository, generator, aiPlanner, logger),
		flightRecorder: recorder,
		markdown:       goldmark.New(),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.configureAndStartServer(egCtx, cfg.Addr)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		recorder.Stop(context.WithoutCancel(egCtx))
		return nil
	})
	if err = eg.Wait(); err != nil {
		return errors.Wrap(err, "run server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
