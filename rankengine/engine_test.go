package rankengine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/badges"
	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/internal/gateways/memory"
)

func memoryStores(store *memory.Store) Stores {
	return Stores{Activity: store, Catalog: store, Awards: store, Leaderboard: store}
}

func TestEngine_SweepThenRank(t *testing.T) {
	store := memory.New()
	store.SetRules([]badges.Rule{
		{ID: "first-steps", RuleType: badges.RuleTotalSessions, Threshold: 1, PointValue: 10},
		{ID: "regular", RuleType: badges.RuleTotalSessions, Threshold: 3, PointValue: 40},
		{ID: "organizer", RuleType: badges.RuleChallengesCreated, Threshold: 1, PointValue: 25},
	})
	for _, u := range []memory.User{
		{ID: "ana", Username: "ana", DisplayName: "Ana"},
		{ID: "ben", Username: "ben", DisplayName: "Ben"},
		{ID: "cy", Username: "cy", DisplayName: "Cy"},
	} {
		store.AddUser(u)
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		store.LogSession("ana", activity.Session{Date: now.AddDate(0, 0, -i), CaloriesBurned: 300})
	}
	store.LogSession("ben", activity.Session{Date: now, CaloriesBurned: 800})
	store.CreateChallenge(memory.Challenge{ID: "c1", CreatorID: "ben"})
	store.Join("cy", "c1", activity.StatusCompleted)

	e, err := New(*DefaultConfig(), memoryStores(store))
	require.NoError(t, err)
	ctx := context.Background()

	report, err := e.Sweeper.SweepAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, report.Succeeded)
	require.Equal(t, 4, report.Awarded())

	page, err := e.Ranker.Rank(ctx, leaderboard.DimensionGlobal, leaderboard.Filters{})
	require.NoError(t, err)
	require.Len(t, page.Entries, 3)
	require.Equal(t, "ana", page.Entries[0].UserID)
	require.EqualValues(t, 50, page.Entries[0].Score)
	require.Equal(t, "ben", page.Entries[1].UserID)
	require.EqualValues(t, 35, page.Entries[1].Score)
	require.Equal(t, "cy", page.Entries[2].UserID)
	require.Equal(t, "Cy", page.Entries[2].DisplayName)

	page, err = e.Ranker.Rank(ctx, leaderboard.DimensionChallenge, leaderboard.Filters{})
	require.NoError(t, err)
	require.Equal(t, []string{"cy", "ben", "ana"}, []string{page.Entries[0].UserID, page.Entries[1].UserID, page.Entries[2].UserID})

	pos, err := e.Ranker.UserRank(ctx, leaderboard.DimensionCalorie, "ana", leaderboard.Filters{})
	require.NoError(t, err)
	require.Equal(t, 1, pos.Entry.Rank)
	require.EqualValues(t, 900, pos.Entry.Score)

	snapshot, err := e.Stats.ComputeStats(ctx, "ana")
	require.NoError(t, err)
	require.EqualValues(t, 3, snapshot.TrainingStreakDays)

	history, err := e.Ledger.ListAwards(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestEngine_InvalidTimezone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Timezone = "Nowhere/Land"

	_, err := New(*cfg, memoryStores(memory.New()))
	require.Error(t, err)
}
