package leaderboard

import "context"

type ProfileSource interface {
	GetProfiles(ctx context.Context, userIDs []string) (map[string]Profile, error)
}

// Source provides population-wide aggregates for ranking.
type Source interface {
	ProfileSource
	GetAllUserIDs(ctx context.Context) ([]string, error)
	BadgeTotals(ctx context.Context) (map[string]BadgeTotal, error)
	ChallengeTotals(ctx context.Context) (map[string]ChallengeTotal, error)
	SessionTotals(ctx context.Context, window Window) (map[string]SessionTotal, error)
}
