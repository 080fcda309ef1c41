package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pumppro/rankengine/internal/domain/badges"
	"github.com/pumppro/rankengine/internal/gateways/database/models"
)

type badgeRepository struct {
	*BaseRepository
}

// NewBadgeRepository returns the read-only badge catalog.
func NewBadgeRepository(db *bun.DB) badges.Catalog {
	return &badgeRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *badgeRepository) GetAllRules(ctx context.Context) ([]badges.Rule, error) {
	var rows []*models.Badge
	err := r.SelectWithTimeout(ctx, "get_all_rules", "badge", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Order("b.created_at ASC", "b.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	rules := make([]badges.Rule, len(rows))
	for i, row := range rows {
		rules[i] = toRule(row)
	}
	return rules, nil
}

func (r *badgeRepository) GetRule(ctx context.Context, badgeID string) (*badges.Rule, error) {
	row := new(models.Badge)
	err := r.SelectOneWithTimeout(ctx, "get_rule", "badge", badgeID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(row).
			Where("b.id = ?", badgeID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	rule := toRule(row)
	return &rule, nil
}

func toRule(row *models.Badge) badges.Rule {
	return badges.Rule{
		ID:         row.ID,
		Name:       row.Name,
		RuleType:   badges.RuleType(row.RuleType),
		Threshold:  row.Threshold,
		PointValue: row.PointValue,
	}
}
