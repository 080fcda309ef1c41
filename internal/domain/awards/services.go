package awards

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Service interface {
	Award(ctx context.Context, userID, badgeID string) (bool, error)
	ListAwardedBadgeIDs(ctx context.Context, userID string) (map[string]struct{}, error)
	ListAwards(ctx context.Context, userID string) ([]Award, error)
}

type ledger struct {
	store Store
	now   func() time.Time
}

func NewLedger(store Store) *ledger {
	return &ledger{
		store: store,
		now:   time.Now,
	}
}

// Award grants badgeID to userID at most once. A repeated grant returns
// created == false and no error.
func (l *ledger) Award(ctx context.Context, userID, badgeID string) (bool, error) {
	created, err := l.store.InsertIfAbsent(ctx, Award{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: l.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to award %s to %s: %w", badgeID, userID, err)
	}

	if created {
		slog.Info("Badge awarded",
			slog.String("type", "sweep"),
			slog.String("user_id", userID),
			slog.String("badge_id", badgeID))
	} else {
		slog.Debug("Badge already awarded",
			slog.String("type", "sweep"),
			slog.String("user_id", userID),
			slog.String("badge_id", badgeID))
	}

	return created, nil
}

func (l *ledger) ListAwardedBadgeIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	awards, err := l.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards for %s: %w", userID, err)
	}

	ids := make(map[string]struct{}, len(awards))
	for _, a := range awards {
		ids[a.BadgeID] = struct{}{}
	}
	return ids, nil
}

func (l *ledger) ListAwards(ctx context.Context, userID string) ([]Award, error) {
	awards, err := l.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards for %s: %w", userID, err)
	}
	return awards, nil
}
