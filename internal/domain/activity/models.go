package activity

import "time"

type ParticipationStatus string

const (
	StatusJoined     ParticipationStatus = "JOINED"
	StatusInProgress ParticipationStatus = "IN_PROGRESS"
	StatusCompleted  ParticipationStatus = "COMPLETED"
	StatusAbandoned  ParticipationStatus = "ABANDONED"
)

// Session is one logged training session.
type Session struct {
	Date            time.Time
	DurationMinutes int64
	CaloriesBurned  int64
	Repetitions     int64
}

type Participation struct {
	ChallengeID string
	Status      ParticipationStatus
}
