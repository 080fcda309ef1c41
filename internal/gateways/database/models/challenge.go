package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Challenge struct {
	bun.BaseModel `bun:"table:challenges,alias:c"`

	ID        string    `bun:"id,pk"`
	CreatorID string    `bun:"creator_id,notnull"`
	Name      string    `bun:"name,notnull"`
	StartsAt  time.Time `bun:"starts_at"`
	EndsAt    time.Time `bun:"ends_at"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// ChallengeParticipation is unique per (user_id, challenge_id).
type ChallengeParticipation struct {
	bun.BaseModel `bun:"table:challenge_participations,alias:cp"`

	ID          string    `bun:"id,pk"`
	UserID      string    `bun:"user_id,notnull,unique:user_challenge"`
	ChallengeID string    `bun:"challenge_id,notnull,unique:user_challenge"`
	Status      string    `bun:"status,notnull"`
	JoinedAt    time.Time `bun:"joined_at,notnull,default:current_timestamp"`
}
