package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/internal/domain/leaderboard/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileCache_FetchesOnlyMisses(t *testing.T) {
	source := mock.NewMockProfileSource(gomock.NewController(t))
	source.EXPECT().
		GetProfiles(gomock.Any(), []string{"u1", "u2"}).
		Return(map[string]leaderboard.Profile{
			"u1": {UserID: "u1", Username: "one"},
			"u2": {UserID: "u2", Username: "two"},
		}, nil).
		Times(1)
	source.EXPECT().
		GetProfiles(gomock.Any(), []string{"u3"}).
		Return(map[string]leaderboard.Profile{
			"u3": {UserID: "u3", Username: "three"},
		}, nil).
		Times(1)

	cache, err := leaderboard.NewProfileCache(source, 10, time.Minute)
	require.NoError(t, err)

	got, err := cache.GetProfiles(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = cache.GetProfiles(context.Background(), []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	require.Equal(t, "three", got["u3"].Username)
	require.Equal(t, "one", got["u1"].Username)
}

func TestProfileCache_Disabled(t *testing.T) {
	source := mock.NewMockProfileSource(gomock.NewController(t))
	source.EXPECT().
		GetProfiles(gomock.Any(), []string{"u1"}).
		Return(map[string]leaderboard.Profile{"u1": {UserID: "u1"}}, nil).
		Times(2)

	cache, err := leaderboard.NewProfileCache(source, 0, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := cache.GetProfiles(context.Background(), []string{"u1"})
		require.NoError(t, err)
	}
}

func TestProfileCache_Purge(t *testing.T) {
	source := mock.NewMockProfileSource(gomock.NewController(t))
	source.EXPECT().
		GetProfiles(gomock.Any(), []string{"u1"}).
		Return(map[string]leaderboard.Profile{"u1": {UserID: "u1"}}, nil).
		Times(2)

	cache, err := leaderboard.NewProfileCache(source, 10, time.Minute)
	require.NoError(t, err)

	_, err = cache.GetProfiles(context.Background(), []string{"u1"})
	require.NoError(t, err)
	cache.Purge()
	_, err = cache.GetProfiles(context.Background(), []string{"u1"})
	require.NoError(t, err)
}

func TestProfileCache_SourceError(t *testing.T) {
	source := mock.NewMockProfileSource(gomock.NewController(t))
	source.EXPECT().
		GetProfiles(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrUnavailable)

	cache, err := leaderboard.NewProfileCache(source, 10, time.Minute)
	require.NoError(t, err)

	_, err = cache.GetProfiles(context.Background(), []string{"u1"})
	require.True(t, errors.Is(err, errs.ErrUnavailable))
}

func TestRanker_UsesProfileCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	source.EXPECT().GetAllUserIDs(gomock.Any()).Return([]string{"u1"}, nil).Times(2)
	source.EXPECT().BadgeTotals(gomock.Any()).Return(map[string]leaderboard.BadgeTotal{"u1": {Points: 5, Count: 1}}, nil).Times(2)
	source.EXPECT().
		GetProfiles(gomock.Any(), []string{"u1"}).
		Return(map[string]leaderboard.Profile{"u1": {UserID: "u1", Username: "one"}}, nil).
		Times(1)

	cache, err := leaderboard.NewProfileCache(source, 10, time.Minute)
	require.NoError(t, err)
	ranker := leaderboard.NewRanker(source, cache, leaderboard.Options{})

	for i := 0; i < 2; i++ {
		page, err := ranker.Rank(context.Background(), leaderboard.DimensionGlobal, leaderboard.Filters{})
		require.NoError(t, err)
		require.Len(t, page.Entries, 1)
		require.Equal(t, "one", page.Entries[0].Username)
		require.EqualValues(t, 5, page.Entries[0].Score)
	}
}
