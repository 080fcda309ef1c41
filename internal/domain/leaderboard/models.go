package leaderboard

import (
	"fmt"
	"strings"
	"time"
)

type Dimension string

const (
	DimensionGlobal    Dimension = "global"
	DimensionChallenge Dimension = "challenge"
	DimensionCalorie   Dimension = "calorie"
	DimensionMonthly   Dimension = "monthly"
)

var Dimensions = []Dimension{DimensionGlobal, DimensionChallenge, DimensionCalorie, DimensionMonthly}

func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Dimensions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown leaderboard dimension %q", s)
}

// Entry is one ranked row. Rank is 1-based and unique within a ranking.
type Entry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Score       int64  `json:"score"`

	BadgeCount          int64 `json:"badgeCount"`
	ChallengesCompleted int64 `json:"challengesCompleted"`
	ChallengesCreated   int64 `json:"challengesCreated"`
	SessionCount        int64 `json:"sessionCount"`
	Calories            int64 `json:"calories"`
}

type Filters struct {
	Limit  int
	Offset int
	// Month and Year select the monthly window. Zero means the current one.
	Month time.Month
	Year  int
	// Query narrows the page to users whose name fuzzily matches. Ranks are unaffected.
	Query string
}

type Page struct {
	Dimension  Dimension `json:"dimension"`
	Month      int       `json:"month,omitempty"`
	Year       int       `json:"year,omitempty"`
	TotalUsers int       `json:"totalUsers"`
	Matched    int       `json:"matched"`
	Entries    []Entry   `json:"entries"`
	ComputedAt time.Time `json:"computedAt"`
}

// Position is a single user's standing within a full ranking.
type Position struct {
	Entry      Entry     `json:"entry"`
	Dimension  Dimension `json:"dimension"`
	TotalUsers int       `json:"totalUsers"`
	Percentile float64   `json:"percentile"` // top X%
}

type Profile struct {
	UserID      string
	Username    string
	DisplayName string
	AvatarURL   string
}

func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

type BadgeTotal struct {
	Points int64
	Count  int64
}

type ChallengeTotal struct {
	Completed int64
	Created   int64
}

type SessionTotal struct {
	Sessions int64
	Calories int64
}

// Window is a half-open [From, To) time range. Zero bounds are open.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}
