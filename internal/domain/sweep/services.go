package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/domain/badges"
	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/domain/stats"
)

type Service interface {
	SweepOne(ctx context.Context, userID string) ([]string, error)
	SweepAll(ctx context.Context) (*Report, error)
}

type Orchestrator struct {
	users     activity.Store
	stats     stats.Service
	ledger    awards.Service
	catalog   badges.Catalog
	evaluator *badges.Evaluator
	workers   int64
}

func NewOrchestrator(
	users activity.Store,
	aggregator stats.Service,
	ledger awards.Service,
	catalog badges.Catalog,
	evaluator *badges.Evaluator,
	workers int,
) *Orchestrator {
	if workers <= 0 {
		workers = 1
	}
	return &Orchestrator{
		users:     users,
		stats:     aggregator,
		ledger:    ledger,
		catalog:   catalog,
		evaluator: evaluator,
		workers:   int64(workers),
	}
}

// SweepOne evaluates a single user against the current catalog and returns the
// badges newly awarded by this call.
func (o *Orchestrator) SweepOne(ctx context.Context, userID string) ([]string, error) {
	exists, err := o.users.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", userID, err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}

	rules, err := o.catalog.GetAllRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load badge catalog: %w", err)
	}

	return o.sweepUser(ctx, userID, rules)
}

// SweepAll evaluates every user. Per-user failures are recorded in the report and
// do not stop the sweep. A cancelled context stops scheduling further users.
func (o *Orchestrator) SweepAll(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.New(), Results: make([]UserResult, 0)}

	rules, err := o.catalog.GetAllRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load badge catalog: %w", err)
	}

	userIDs, err := o.users.GetAllUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	slog.Info("Starting badge sweep",
		slog.String("type", "sweep"),
		slog.String("run_id", report.RunID.String()),
		slog.Int("users", len(userIDs)),
		slog.Int("rules", len(rules)),
		slog.Int64("workers", o.workers))

	results := make([]UserResult, len(userIDs))
	done := make([]bool, len(userIDs))

	var g errgroup.Group
	sem := semaphore.NewWeighted(o.workers)

	for i, userID := range userIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		i, userID := i, userID
		g.Go(func() error {
			defer sem.Release(1)

			awarded, err := o.sweepUser(ctx, userID, rules)
			results[i] = UserResult{UserID: userID, Awarded: awarded, Err: err}
			done[i] = true
			if err != nil {
				slog.Error("Badge sweep failed for user",
					slog.String("type", "sweep"),
					slog.String("run_id", report.RunID.String()),
					slog.String("user_id", userID),
					slog.Any("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range results {
		if !done[i] {
			continue
		}
		report.Results = append(report.Results, results[i])
		if results[i].Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	report.Duration = time.Since(start)

	slog.Info("Badge sweep finished",
		slog.String("type", "sweep"),
		slog.String("run_id", report.RunID.String()),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("awarded", report.Awarded()),
		slog.Duration("took", report.Duration))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("badge sweep interrupted after %d of %d users: %w",
			len(report.Results), len(userIDs), err)
	}
	return report, nil
}

func (o *Orchestrator) sweepUser(ctx context.Context, userID string, rules []badges.Rule) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := o.stats.ComputeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := o.ledger.ListAwardedBadgeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible := o.evaluator.Evaluate(snapshot, rules, owned)

	awarded := make([]string, 0, len(eligible))
	var failures []error
	for _, badgeID := range eligible {
		created, err := o.ledger.Award(ctx, userID, badgeID)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		if created {
			awarded = append(awarded, badgeID)
		}
	}

	if len(failures) > 0 {
		return awarded, errors.Join(failures...)
	}
	return awarded, nil
}
