package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/gateways/database/models"
)

type awardRepository struct {
	*BaseRepository
}

func NewAwardRepository(db *bun.DB) awards.Store {
	return &awardRepository{BaseRepository: NewBaseRepository(db)}
}

// InsertIfAbsent relies on the unique (user_id, badge_id) constraint. A conflicting
// insert affects no rows and reports created == false.
func (r *awardRepository) InsertIfAbsent(ctx context.Context, award awards.Award) (bool, error) {
	row := &models.UserBadge{
		ID:       uuid.NewString(),
		UserID:   award.UserID,
		BadgeID:  award.BadgeID,
		EarnedAt: award.EarnedAt,
	}

	result, err := r.ExecWithTimeout(ctx, "insert_award", "user_badge", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(row).
			On("CONFLICT (user_id, badge_id) DO NOTHING").
			Exec(ctx)
	})
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.HandleError("insert_award", "user_badge", err)
	}
	return affected == 1, nil
}

func (r *awardRepository) ListByUser(ctx context.Context, userID string) ([]awards.Award, error) {
	var rows []*models.UserBadge
	err := r.SelectWithTimeout(ctx, "list_awards", "user_badge", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Where("ub.user_id = ?", userID).
			Order("ub.earned_at DESC", "ub.badge_id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]awards.Award, len(rows))
	for i, row := range rows {
		out[i] = awards.Award{
			UserID:   row.UserID,
			BadgeID:  row.BadgeID,
			EarnedAt: row.EarnedAt,
		}
	}
	return out, nil
}
