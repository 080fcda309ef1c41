package awards_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/domain/awards/mock"
	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/gateways/memory"
)

func TestLedger_Award_ConcurrentIdempotent(t *testing.T) {
	store := memory.New()
	ledger := awards.NewLedger(store)

	const callers = 64
	var (
		wg      sync.WaitGroup
		created atomic.Int32
		failed  atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := ledger.Award(context.Background(), "u1", "first-steps")
			if err != nil {
				failed.Add(1)
				return
			}
			if ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Zero(t, failed.Load())
	require.EqualValues(t, 1, created.Load())
	require.Len(t, store.Awards(), 1)
}

func TestLedger_Award_Duplicate(t *testing.T) {
	ledger := awards.NewLedger(memory.New())
	ctx := context.Background()

	created, err := ledger.Award(ctx, "u1", "b1")
	require.NoError(t, err)
	require.True(t, created)

	created, err = ledger.Award(ctx, "u1", "b1")
	require.NoError(t, err)
	require.False(t, created)

	created, err = ledger.Award(ctx, "u2", "b1")
	require.NoError(t, err)
	require.True(t, created)
}

func TestLedger_ListAwardedBadgeIDs(t *testing.T) {
	ledger := awards.NewLedger(memory.New())
	ctx := context.Background()

	for _, b := range []string{"b1", "b2", "b1"} {
		_, err := ledger.Award(ctx, "u1", b)
		require.NoError(t, err)
	}

	got, err := ledger.ListAwardedBadgeIDs(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"b1": {}, "b2": {}}, got)

	got, err = ledger.ListAwardedBadgeIDs(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLedger_StoreError(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		Return(false, errs.ErrUnavailable)
	store.EXPECT().
		ListByUser(gomock.Any(), "u1").
		Return(nil, errs.ErrUnavailable)

	ledger := awards.NewLedger(store)

	created, err := ledger.Award(context.Background(), "u1", "b1")
	require.False(t, created)
	require.True(t, errors.Is(err, errs.ErrUnavailable))

	_, err = ledger.ListAwards(context.Background(), "u1")
	require.True(t, errors.Is(err, errs.ErrUnavailable))
}
