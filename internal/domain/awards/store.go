package awards

import "context"

type Store interface {
	// InsertIfAbsent atomically inserts the award unless one already exists for
	// the same (UserID, BadgeID). It reports whether a row was created.
	InsertIfAbsent(ctx context.Context, award Award) (bool, error)
	// ListByUser returns the user's awards, newest first.
	ListByUser(ctx context.Context, userID string) ([]Award, error)
}
