package sweep_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/domain/badges"
	catalogmock "github.com/pumppro/rankengine/internal/domain/badges/mock"
	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/domain/stats"
	"github.com/pumppro/rankengine/internal/domain/sweep"
	"github.com/pumppro/rankengine/internal/gateways/memory"
)

const firstSteps = "first-steps-badge-id"

var testRules = []badges.Rule{
	{ID: firstSteps, Name: "First Steps", RuleType: badges.RuleTotalSessions, Threshold: 1, PointValue: 10},
	{ID: "calorie-crusher", Name: "Calorie Crusher", RuleType: badges.RuleTotalCalories, Threshold: 1000, PointValue: 50},
}

func newOrchestrator(store *memory.Store, workers int) *sweep.Orchestrator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sweep.NewOrchestrator(
		store,
		stats.NewService(store, time.UTC),
		awards.NewLedger(store),
		store,
		badges.NewEvaluator(logger),
		workers,
	)
}

func TestOrchestrator_SweepOne_FirstSteps(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)
	store.AddUser(memory.User{ID: "u1", Username: "newbie"})
	o := newOrchestrator(store, 1)
	ctx := context.Background()

	got, err := o.SweepOne(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, got)

	store.LogSession("u1", activity.Session{Date: time.Now(), DurationMinutes: 30, CaloriesBurned: 200})

	got, err = o.SweepOne(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{firstSteps}, got)

	got, err = o.SweepOne(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, got)

	require.Len(t, store.Awards(), 1)
}

func TestOrchestrator_SweepOne_UnknownUser(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)

	_, err := newOrchestrator(store, 1).SweepOne(context.Background(), "ghost")
	require.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
}

func TestOrchestrator_SweepOne_TransientError(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)
	store.AddUser(memory.User{ID: "u1"})
	store.FailReadsFor("u1", true)

	_, err := newOrchestrator(store, 1).SweepOne(context.Background(), "u1")
	require.True(t, errors.Is(err, errs.ErrUnavailable), "got %v", err)
}

func TestOrchestrator_SweepOne_ConcurrentSameUser(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)
	store.AddUser(memory.User{ID: "u1"})
	store.LogSession("u1", activity.Session{Date: time.Now(), CaloriesBurned: 1500})
	o := newOrchestrator(store, 1)

	const callers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		awarded []string
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := o.SweepOne(context.Background(), "u1")
			assert.NoError(t, err)
			mu.Lock()
			awarded = append(awarded, got...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.ElementsMatch(t, []string{firstSteps, "calorie-crusher"}, awarded)
	require.Len(t, store.Awards(), 2)
}

func TestOrchestrator_SweepAll_IsolatesFailures(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)
	for _, id := range []string{"u1", "u2", "u3", "u4"} {
		store.AddUser(memory.User{ID: id})
		store.LogSession(id, activity.Session{Date: time.Now(), CaloriesBurned: 100})
	}
	store.FailReadsFor("u2", true)

	report, err := newOrchestrator(store, 2).SweepAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Succeeded)
	require.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 4)

	for i, id := range []string{"u1", "u2", "u3", "u4"} {
		res := report.Results[i]
		require.Equal(t, id, res.UserID)
		if id == "u2" {
			require.True(t, errors.Is(res.Err, errs.ErrUnavailable))
			require.Empty(t, res.Awarded)
			continue
		}
		require.NoError(t, res.Err)
		require.Equal(t, []string{firstSteps}, res.Awarded)
	}
	require.Equal(t, 3, report.Awarded())

	// The failed user is picked up by the next run once the store recovers.
	store.FailReadsFor("u2", false)
	report, err = newOrchestrator(store, 2).SweepAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Awarded())
	require.Equal(t, []string{firstSteps}, report.Results[1].Awarded)
}

func TestOrchestrator_SweepAll_Cancelled(t *testing.T) {
	store := memory.New()
	store.SetRules(testRules)
	store.AddUser(memory.User{ID: "u1"})
	store.LogSession("u1", activity.Session{Date: time.Now()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newOrchestrator(store, 2).SweepAll(ctx)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
	require.NotNil(t, report)
	require.Empty(t, report.Results)
	require.Empty(t, store.Awards())
}

func TestOrchestrator_SweepAll_CatalogError(t *testing.T) {
	catalog := catalogmock.NewMockCatalog(gomock.NewController(t))
	catalog.EXPECT().GetAllRules(gomock.Any()).Return(nil, errs.ErrUnavailable)

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := sweep.NewOrchestrator(store, stats.NewService(store, time.UTC), awards.NewLedger(store), catalog, badges.NewEvaluator(logger), 2)

	_, err := o.SweepAll(context.Background())
	require.True(t, errors.Is(err, errs.ErrUnavailable), "got %v", err)
}

func TestOrchestrator_SweepAll_LoadsCatalogOnce(t *testing.T) {
	catalog := catalogmock.NewMockCatalog(gomock.NewController(t))
	catalog.EXPECT().GetAllRules(gomock.Any()).Return(testRules, nil).Times(1)

	store := memory.New()
	for _, id := range []string{"a", "b", "c"} {
		store.AddUser(memory.User{ID: id})
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := sweep.NewOrchestrator(store, stats.NewService(store, time.UTC), awards.NewLedger(store), catalog, badges.NewEvaluator(logger), 3)

	report, err := o.SweepAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Succeeded)
	require.Zero(t, report.Awarded())
}
