package stats

// Snapshot is the per-user aggregate the badge rules are evaluated against.
// It is rebuilt on every evaluation and never cached.
type Snapshot struct {
	UserID               string `json:"userId"`
	TotalSessions        int64  `json:"totalSessions"`
	TotalDurationMinutes int64  `json:"totalDurationMinutes"`
	TotalCalories        int64  `json:"totalCalories"`
	TotalRepetitions     int64  `json:"totalRepetitions"`
	TrainingStreakDays   int64  `json:"trainingStreakDays"`
	ChallengesCompleted  int64  `json:"challengesCompleted"`
	ChallengesCreated    int64  `json:"challengesCreated"`
	ChallengesWon        int64  `json:"challengesWon"`
}
