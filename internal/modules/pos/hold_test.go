package pos

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

func heldFixture(name string) *HeldTransaction {
	return &HeldTransaction{
		ID:   uuid.New(),
		Name: name,
		Lines: []*LineItem{
			{ID: uuid.New(), ProductID: uuid.New(), Name: "Chips", Quantity: 2, UnitPrice: 10, OriginalPrice: 10},
		},
		Subtotal:  20,
		Tax:       1.75,
		Total:     21.75,
		CreatedAt: time.Now(),
	}
}

func TestHoldStoreRecallRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryHoldStore()
	ht := heldFixture("Lunch break")
	require.NoError(t, s.Save(ctx, ht))

	got, err := s.Recall(ctx, ht.ID.String())
	require.NoError(t, err)
	assert.Equal(t, ht.Name, got.Name)
	assert.Equal(t, ht.Total, got.Total)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestHoldStoreSecondRecallNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryHoldStore()
	ht := heldFixture("once only")
	require.NoError(t, s.Save(ctx, ht))

	_, err := s.Recall(ctx, ht.ID.String())
	require.NoError(t, err)

	_, err = s.Recall(ctx, ht.ID.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHoldStoreRecallUnknownID(t *testing.T) {
	s := NewMemoryHoldStore()
	_, err := s.Recall(context.Background(), uuid.NewString())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = s.Recall(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHoldStoreConcurrentRecallSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryHoldStore()
	ht := heldFixture("contested")
	require.NoError(t, s.Save(ctx, ht))

	const attempts = 20
	var wg sync.WaitGroup
	wins := make(chan *HeldTransaction, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, err := s.Recall(ctx, ht.ID.String()); err == nil {
				wins <- got
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, collect(wins), 1, "exactly one recall may succeed")
}

func collect(ch chan *HeldTransaction) []*HeldTransaction {
	var out []*HeldTransaction
	for ht := range ch {
		out = append(out, ht)
	}
	return out
}

func TestHoldStoreListExcludesRecalled(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryHoldStore()
	a, b := heldFixture("a"), heldFixture("b")
	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))

	_, err := s.Recall(ctx, a.ID.String())
	require.NoError(t, err)

	held, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, b.ID, held[0].ID)
}
