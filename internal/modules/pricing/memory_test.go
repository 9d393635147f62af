package pricing

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	e, err := s.Get(context.Background(), uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestMemoryStoreApplyAndGet(t *testing.T) {
	s := NewMemoryStore()
	cid, pid := uuid.New(), uuid.New()

	s.Apply([]MemoryWrite{{CustomerID: cid, ProductID: pid, RememberedPrice: f64(8.50), LastChargedPrice: 8.50}})

	e, err := s.Get(context.Background(), cid.String(), pid.String())
	require.NoError(t, err)
	require.NotNil(t, e)
	require.NotNil(t, e.RememberedPrice)
	assert.Equal(t, 8.50, *e.RememberedPrice)
	assert.Equal(t, 8.50, e.LastChargedPrice)
}

func TestMemoryStoreLaterWriteOverwrites(t *testing.T) {
	s := NewMemoryStore()
	cid, pid := uuid.New(), uuid.New()

	s.Apply([]MemoryWrite{{CustomerID: cid, ProductID: pid, RememberedPrice: f64(8.50), LastChargedPrice: 8.50}})
	s.Apply([]MemoryWrite{{CustomerID: cid, ProductID: pid, LastChargedPrice: 9.25}})

	e, err := s.Get(context.Background(), cid.String(), pid.String())
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Nil(t, e.RememberedPrice, "a non-override sale clears the remembered price")
	assert.Equal(t, 9.25, e.LastChargedPrice)
}

func TestMemoryStoreListByCustomer(t *testing.T) {
	s := NewMemoryStore()
	cid, other := uuid.New(), uuid.New()

	s.Apply([]MemoryWrite{
		{CustomerID: cid, ProductID: uuid.New(), LastChargedPrice: 1},
		{CustomerID: cid, ProductID: uuid.New(), LastChargedPrice: 2},
		{CustomerID: other, ProductID: uuid.New(), LastChargedPrice: 3},
	})

	entries, err := s.ListByCustomer(context.Background(), cid.String())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMemoryStoreConcurrentApplies(t *testing.T) {
	s := NewMemoryStore()
	cid := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply([]MemoryWrite{{CustomerID: cid, ProductID: uuid.New(), LastChargedPrice: 1}})
		}()
	}
	wg.Wait()

	entries, err := s.ListByCustomer(context.Background(), cid.String())
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}
