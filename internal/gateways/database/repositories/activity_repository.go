package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/gateways/database/models"
)

type activityRepository struct {
	*BaseRepository
}

func NewActivityRepository(db *bun.DB) activity.Store {
	return &activityRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *activityRepository) GetUserSessions(ctx context.Context, userID string) ([]activity.Session, error) {
	var rows []*models.TrainingSession
	err := r.SelectWithTimeout(ctx, "get_user_sessions", "training_session", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Where("ts.user_id = ?", userID).
			Order("ts.date DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]activity.Session, len(rows))
	for i, row := range rows {
		sessions[i] = activity.Session{
			Date:            row.Date,
			DurationMinutes: row.DurationMinutes,
			CaloriesBurned:  row.CaloriesBurned,
			Repetitions:     row.Repetitions,
		}
	}
	return sessions, nil
}

func (r *activityRepository) GetUserChallengeParticipations(ctx context.Context, userID string) ([]activity.Participation, error) {
	var rows []*models.ChallengeParticipation
	err := r.SelectWithTimeout(ctx, "get_user_participations", "challenge_participation", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Where("cp.user_id = ?", userID).
			Order("cp.joined_at ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	participations := make([]activity.Participation, len(rows))
	for i, row := range rows {
		participations[i] = activity.Participation{
			ChallengeID: row.ChallengeID,
			Status:      activity.ParticipationStatus(row.Status),
		}
	}
	return participations, nil
}

func (r *activityRepository) CountChallengesCreated(ctx context.Context, userID string) (int64, error) {
	count, err := r.Count(ctx, "challenge", r.db.NewSelect().
		Model((*models.Challenge)(nil)).
		Where("c.creator_id = ?", userID))
	return int64(count), err
}

func (r *activityRepository) GetAllUserIDs(ctx context.Context) ([]string, error) {
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

func (r *activityRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	return r.Exists(ctx, "user", r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("u.id = ?", userID))
}
