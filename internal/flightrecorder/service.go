// Package flightrecorder captures runtime execution traces when a request
// times out, so slow plan generations can be diagnosed after the fact.
package flightrecorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"sync/atomic"
	"time"
)

const (
	// defaultMinAge is how far back the in-memory trace window reaches.
	defaultMinAge = 5 * time.Minute

	// defaultMaxBytes bounds the in-memory trace buffer.
	defaultMaxBytes = 64 * 1024 * 1024 // 64MB

	// captureCooldown limits how often a trace file may be written.
	captureCooldown = 30 * time.Minute
)

// Service wraps [trace.FlightRecorder] with cooldown-limited capture to disk.
type Service struct {
	logger    *slog.Logger
	recorder  *trace.FlightRecorder
	tracesDir string
	// lastCapture holds the Unix timestamp of the newest written trace.
	lastCapture atomic.Int64
}

// Config configures the flight recorder service.
type Config struct {
	Logger    *slog.Logger
	MinAge    time.Duration
	MaxBytes  uint64
	TracesDir string
}

// New validates cfg, creates the traces directory when missing, and returns
// a stopped Service.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.TracesDir == "" {
		return nil, errors.New("traces directory is required")
	}

	if stat, err := os.Stat(cfg.TracesDir); err != nil {
		if err = os.MkdirAll(cfg.TracesDir, 0500); err != nil {
			return nil, fmt.Errorf("create traces directory: %w", err)
		}
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("traces path is not a directory: %s", cfg.TracesDir)
	}

	minAge := cfg.MinAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}

	recorder := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   minAge,
		MaxBytes: maxBytes,
	})
	if recorder == nil {
		return nil, errors.New("failed to create flight recorder")
	}

	return &Service{
		logger:      cfg.Logger,
		recorder:    recorder,
		tracesDir:   cfg.TracesDir,
		lastCapture: atomic.Int64{},
	}, nil
}

// Start begins recording.
func (s *Service) Start(ctx context.Context) error {
	if err := s.recorder.Start(); err != nil {
		return fmt.Errorf("start flight recorder: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder started",
		slog.String("min_age", defaultMinAge.String()),
		slog.Uint64("max_bytes", defaultMaxBytes),
		slog.String("cooldown", captureCooldown.String()))

	return nil
}

// Stop ends recording.
func (s *Service) Stop(ctx context.Context) {
	s.recorder.Stop()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder stopped")
}

// CaptureTimeoutTrace writes the current trace window to the traces
// directory. At most one file is written per cooldown period; concurrent
// callers race on a compare-and-swap and the losers return without writing.
func (s *Service) CaptureTimeoutTrace(ctx context.Context) {
	now := time.Now().Unix()
	last := s.lastCapture.Load()

	sinceLast := time.Unix(now, 0).Sub(time.Unix(last, 0))
	if last > 0 && sinceLast < captureCooldown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "skipping trace capture due to cooldown",
			slog.Time("last_capture", time.Unix(last, 0)),
			slog.Duration("remaining_cooldown", captureCooldown-sinceLast))
		return
	}

	if !s.lastCapture.CompareAndSwap(last, now) {
		return
	}

	timestamp := time.Unix(now, 0).UTC().Format("20060102-150405")
	path := filepath.Join(s.tracesDir, fmt.Sprintf("timeout-%s.trace", timestamp))

	file, err := os.Create(path)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to create trace file",
			slog.String("file", path),
			slog.Any("error", err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to close trace file",
				slog.String("file", path),
				slog.Any("error", closeErr))
		}
	}()

	written, err := s.recorder.WriteTo(file)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to write trace",
			slog.String("file", path),
			slog.Any("error", err))
		return
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured timeout trace",
		slog.String("file", path),
		slog.Int64("bytes", written))
}
