package stats

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/activity/mock"
	"github.com/pumppro/rankengine/internal/domain/errs"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func storeMock(t *testing.T, userID string, sessions []activity.Session, participations []activity.Participation, created int64) *mock.MockStore {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		GetUserSessions(gomock.Any(), userID).
		Return(sessions, nil)
	store.EXPECT().
		GetUserChallengeParticipations(gomock.Any(), userID).
		Return(participations, nil)
	store.EXPECT().
		CountChallengesCreated(gomock.Any(), userID).
		Return(created, nil)
	return store
}

func Test_service_ComputeStats(t *testing.T) {
	tests := []struct {
		name           string
		sessions       []activity.Session
		participations []activity.Participation
		created        int64
		want           *Snapshot
	}{
		{
			name: "NoActivity",
			want: &Snapshot{UserID: "u1"},
		},
		{
			name: "Aggregates",
			sessions: []activity.Session{
				{Date: fixedNow, DurationMinutes: 30, CaloriesBurned: 250, Repetitions: 100},
				{Date: fixedNow.AddDate(0, 0, -1), DurationMinutes: 45, CaloriesBurned: 400, Repetitions: 60},
				{Date: fixedNow.AddDate(0, 0, -3), DurationMinutes: 20, CaloriesBurned: 150, Repetitions: 40},
			},
			participations: []activity.Participation{
				{ChallengeID: "c1", Status: activity.StatusCompleted},
				{ChallengeID: "c2", Status: activity.StatusInProgress},
				{ChallengeID: "c3", Status: activity.StatusCompleted},
				{ChallengeID: "c4", Status: activity.StatusAbandoned},
			},
			created: 2,
			want: &Snapshot{
				UserID:               "u1",
				TotalSessions:        3,
				TotalDurationMinutes: 95,
				TotalCalories:        800,
				TotalRepetitions:     200,
				TrainingStreakDays:   2,
				ChallengesCompleted:  2,
				ChallengesCreated:    2,
				ChallengesWon:        0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(storeMock(t, "u1", tt.sessions, tt.participations, tt.created), time.UTC)
			s.now = func() time.Time { return fixedNow }

			got, err := s.ComputeStats(context.Background(), "u1")
			if err != nil {
				t.Fatalf("service.ComputeStats() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("service.ComputeStats() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_service_ComputeStats_StoreError(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		GetUserSessions(gomock.Any(), "u1").
		Return(nil, errs.ErrUnavailable)

	s := NewService(store, time.UTC)
	_, err := s.ComputeStats(context.Background(), "u1")
	if !errors.Is(err, errs.ErrUnavailable) {
		t.Errorf("service.ComputeStats() error = %v, want %v", err, errs.ErrUnavailable)
	}
}
