package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          string    `bun:"id,pk"`
	Username    string    `bun:"username,notnull,unique"`
	DisplayName string    `bun:"display_name"`
	AvatarURL   string    `bun:"avatar_url"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
