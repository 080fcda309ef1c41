package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TrainingSession struct {
	bun.BaseModel `bun:"table:training_sessions,alias:ts"`

	ID              string    `bun:"id,pk"`
	UserID          string    `bun:"user_id,notnull"`
	Date            time.Time `bun:"date,notnull"`
	DurationMinutes int64     `bun:"duration_minutes,notnull,default:0"`
	CaloriesBurned  int64     `bun:"calories_burned,notnull,default:0"`
	Repetitions     int64     `bun:"repetitions,notnull,default:0"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
