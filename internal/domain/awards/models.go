package awards

import "time"

// Award is the immutable record of a user earning a badge.
type Award struct {
	UserID   string    `json:"userId"`
	BadgeID  string    `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}
