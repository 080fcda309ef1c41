package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/pumppro/rankengine/internal/domain/activity"
)

type Service interface {
	ComputeStats(ctx context.Context, userID string) (*Snapshot, error)
}

type service struct {
	store    activity.Store
	location *time.Location
	now      func() time.Time
}

// NewService builds the stats aggregator. Calendar days are taken in loc; nil means UTC.
func NewService(store activity.Store, loc *time.Location) *service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		store:    store,
		location: loc,
		now:      time.Now,
	}
}

func (s *service) ComputeStats(ctx context.Context, userID string) (*Snapshot, error) {
	sessions, err := s.store.GetUserSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for %s: %w", userID, err)
	}

	participations, err := s.store.GetUserChallengeParticipations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations for %s: %w", userID, err)
	}

	created, err := s.store.CountChallengesCreated(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count created challenges for %s: %w", userID, err)
	}

	snapshot := &Snapshot{
		UserID:            userID,
		TotalSessions:     int64(len(sessions)),
		ChallengesCreated: created,
		// No win detection exists for challenges yet.
		ChallengesWon: 0,
	}

	dates := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		snapshot.TotalDurationMinutes += session.DurationMinutes
		snapshot.TotalCalories += session.CaloriesBurned
		snapshot.TotalRepetitions += session.Repetitions
		dates = append(dates, session.Date)
	}

	for _, p := range participations {
		if p.Status == activity.StatusCompleted {
			snapshot.ChallengesCompleted++
		}
	}

	snapshot.TrainingStreakDays = TrainingStreak(dates, s.now().In(s.location))

	return snapshot, nil
}
