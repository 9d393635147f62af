package pos

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// MemoryHoldStore keeps held transactions in process memory. Check-and-
// delete happens under one lock, so a double recall has exactly one
// winner.
type MemoryHoldStore struct {
	mu sync.Mutex
	m  map[uuid.UUID]*HeldTransaction
}

func NewMemoryHoldStore() *MemoryHoldStore {
	return &MemoryHoldStore{m: make(map[uuid.UUID]*HeldTransaction)}
}

func (s *MemoryHoldStore) Save(ctx context.Context, ht *HeldTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[ht.ID] = ht
	return nil
}

func (s *MemoryHoldStore) Recall(ctx context.Context, id string) (*HeldTransaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("held transaction %s not found", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ht, ok := s.m[uid]
	if !ok {
		return nil, apperr.NotFound("held transaction %s not found", id)
	}
	delete(s.m, uid)
	return ht, nil
}

func (s *MemoryHoldStore) List(ctx context.Context) ([]*HeldTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*HeldTransaction, 0, len(s.m))
	for _, ht := range s.m {
		out = append(out, ht)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
