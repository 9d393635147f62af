package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryKey struct {
	customerID uuid.UUID
	productID  uuid.UUID
}

// MemoryStore is an in-process price-memory store. It backs tests and
// single-binary deployments without Postgres.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[memoryKey]MemoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[memoryKey]MemoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, customerID, productID string) (*MemoryEntry, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, nil
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[memoryKey{cid, pid}]
	if !ok {
		return nil, nil
	}
	out := e
	return &out, nil
}

func (s *MemoryStore) ListByCustomer(ctx context.Context, customerID string) ([]*MemoryEntry, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []*MemoryEntry
	for k, e := range s.m {
		if k.customerID == cid {
			out := e
			entries = append(entries, &out)
		}
	}
	return entries, nil
}

// Apply upserts a batch of write-backs. A later write for the same
// (customer, product) pair overwrites the prior value.
func (s *MemoryStore) Apply(writes []MemoryWrite) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range writes {
		s.m[memoryKey{w.CustomerID, w.ProductID}] = MemoryEntry{
			CustomerID:       w.CustomerID,
			ProductID:        w.ProductID,
			RememberedPrice:  w.RememberedPrice,
			LastChargedPrice: w.LastChargedPrice,
			UpdatedAt:        now,
		}
	}
}
