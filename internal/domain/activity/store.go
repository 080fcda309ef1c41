package activity

import "context"

// Store is the read-only source of user activity.
type Store interface {
	GetUserSessions(ctx context.Context, userID string) ([]Session, error)
	GetUserChallengeParticipations(ctx context.Context, userID string) ([]Participation, error)
	CountChallengesCreated(ctx context.Context, userID string) (int64, error)
	GetAllUserIDs(ctx context.Context) ([]string, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}
