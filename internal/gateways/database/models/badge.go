package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Badge struct {
	bun.BaseModel `bun:"table:badges,alias:b"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	RuleType    string    `bun:"rule_type,notnull"`
	Threshold   int64     `bun:"threshold,notnull"`
	PointValue  int64     `bun:"point_value,notnull,default:0"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// UserBadge is an earned badge. The (user_id, badge_id) constraint is what
// makes awarding idempotent.
type UserBadge struct {
	bun.BaseModel `bun:"table:user_badges,alias:ub"`

	ID       string    `bun:"id,pk"`
	UserID   string    `bun:"user_id,notnull,unique:user_badge"`
	BadgeID  string    `bun:"badge_id,notnull,unique:user_badge"`
	EarnedAt time.Time `bun:"earned_at,notnull"`
}
