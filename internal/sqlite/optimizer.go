package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// optimizeInterval is how often PRAGMA optimize reruns on the write
// connection. Hourly is the cadence https://www.sqlite.org/pragma.html#pragma_optimize
// recommends for long-lived connections.
const optimizeInterval = time.Hour

// startDatabaseOptimizer keeps query planner statistics fresh until ctx is
// cancelled. The first run uses the 0x10002 mask so tables without stats get
// analyzed immediately.
func (db *Database) startDatabaseOptimizer(ctx context.Context) {
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize = 0x10002;"); err != nil {
		err = fmt.Errorf("init optimize database: %w", err)
		db.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", slog.Any("error", err))
	}
	for {
		start := time.Now()
		if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			err = fmt.Errorf("optimize database: %w", err)
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", slog.Any("error", err))
		} else {
			db.logger.LogAttrs(ctx, slog.LevelInfo, "optimized database",
				slog.Duration("duration", time.Since(start)))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(optimizeInterval):
		}
	}
}
