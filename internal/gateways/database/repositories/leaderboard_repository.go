package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/internal/gateways/database/models"
	"github.com/pumppro/rankengine/rankengine/config"
)

// leaderboardRepository serves population-wide aggregates. Every call hits the
// database; nothing here is cached.
type leaderboardRepository struct {
	*BaseRepository
}

func NewLeaderboardRepository(db *bun.DB) leaderboard.Source {
	return &leaderboardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *leaderboardRepository) GetAllUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.SelectWithTimeout(ctx, "get_all_user_ids", "user", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model((*models.User)(nil)).
			Column("id").
			Order("id ASC").
			Scan(ctx, &ids)
	})
	return ids, err
}

func (r *leaderboardRepository) GetProfiles(ctx context.Context, userIDs []string) (map[string]leaderboard.Profile, error) {
	profiles := make(map[string]leaderboard.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	var users []*models.User
	err := r.SelectWithTimeout(ctx, "get_profiles", "user", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&users).
			Where("u.id IN (?)", bun.In(userIDs)).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		profiles[u.ID] = leaderboard.Profile{
			UserID:      u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
		}
	}
	return profiles, nil
}

func (r *leaderboardRepository) BadgeTotals(ctx context.Context) (map[string]leaderboard.BadgeTotal, error) {
	var rows []struct {
		UserID string `bun:"user_id"`
		Points int64  `bun:"points"`
		Count  int64  `bun:"badge_count"`
	}

	ctx, cancel := r.WithCustomTimeout(ctx, config.RankingQueryTimeout)
	defer cancel()

	err := r.db.NewSelect().
		Model((*models.UserBadge)(nil)).
		ColumnExpr("ub.user_id").
		ColumnExpr("COALESCE(SUM(b.point_value), 0) AS points").
		ColumnExpr("COUNT(*) AS badge_count").
		Join("LEFT JOIN badges AS b ON b.id = ub.badge_id").
		GroupExpr("ub.user_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, r.HandleError("badge_totals", "user_badge", err)
	}

	totals := make(map[string]leaderboard.BadgeTotal, len(rows))
	for _, row := range rows {
		totals[row.UserID] = leaderboard.BadgeTotal{Points: row.Points, Count: row.Count}
	}
	return totals, nil
}

func (r *leaderboardRepository) ChallengeTotals(ctx context.Context) (map[string]leaderboard.ChallengeTotal, error) {
	var completed []struct {
		UserID string `bun:"user_id"`
		Count  int64  `bun:"completed"`
	}
	var created []struct {
		UserID string `bun:"creator_id"`
		Count  int64  `bun:"created"`
	}

	ctx, cancel := r.WithCustomTimeout(ctx, config.RankingQueryTimeout)
	defer cancel()

	err := r.db.NewSelect().
		Model((*models.ChallengeParticipation)(nil)).
		ColumnExpr("cp.user_id").
		ColumnExpr("COUNT(*) AS completed").
		Where("cp.status = ?", string(activity.StatusCompleted)).
		GroupExpr("cp.user_id").
		Scan(ctx, &completed)
	if err != nil {
		return nil, r.HandleError("challenge_totals", "challenge_participation", err)
	}

	err = r.db.NewSelect().
		Model((*models.Challenge)(nil)).
		ColumnExpr("c.creator_id").
		ColumnExpr("COUNT(*) AS created").
		GroupExpr("c.creator_id").
		Scan(ctx, &created)
	if err != nil {
		return nil, r.HandleError("challenge_totals", "challenge", err)
	}

	totals := make(map[string]leaderboard.ChallengeTotal, len(completed)+len(created))
	for _, row := range completed {
		t := totals[row.UserID]
		t.Completed = row.Count
		totals[row.UserID] = t
	}
	for _, row := range created {
		t := totals[row.UserID]
		t.Created = row.Count
		totals[row.UserID] = t
	}
	return totals, nil
}

func (r *leaderboardRepository) SessionTotals(ctx context.Context, window leaderboard.Window) (map[string]leaderboard.SessionTotal, error) {
	var rows []struct {
		UserID   string `bun:"user_id"`
		Sessions int64  `bun:"sessions"`
		Calories int64  `bun:"calories"`
	}

	ctx, cancel := r.WithCustomTimeout(ctx, config.RankingQueryTimeout)
	defer cancel()

	q := r.db.NewSelect().
		Model((*models.TrainingSession)(nil)).
		ColumnExpr("ts.user_id").
		ColumnExpr("COUNT(*) AS sessions").
		ColumnExpr("COALESCE(SUM(ts.calories_burned), 0) AS calories").
		GroupExpr("ts.user_id")
	if !window.From.IsZero() {
		q = q.Where("ts.date >= ?", window.From)
	}
	if !window.To.IsZero() {
		q = q.Where("ts.date < ?", window.To)
	}

	if err := q.Scan(ctx, &rows); err != nil {
		return nil, r.HandleError("session_totals", "training_session", err)
	}

	totals := make(map[string]leaderboard.SessionTotal, len(rows))
	for _, row := range rows {
		totals[row.UserID] = leaderboard.SessionTotal{Sessions: row.Sessions, Calories: row.Calories}
	}
	return totals, nil
}
