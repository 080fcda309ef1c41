package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook logs every bun query with its operation, duration and affected rows.
type QueryHook struct {
	slowThreshold time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook() *QueryHook {
	return &QueryHook{slowThreshold: 500 * time.Millisecond}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)

	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", event.Operation()),
			slog.String("query", event.Query),
			slog.Duration("took", duration),
			slog.Any("error", event.Err),
		)
		return
	}

	var affected int64
	if event.Result != nil {
		affected, _ = event.Result.RowsAffected()
	}

	level := slog.LevelDebug
	if duration >= h.slowThreshold {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "Query executed",
		slog.String("type", "db"),
		slog.String("operation", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", affected),
	)
}
