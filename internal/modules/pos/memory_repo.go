package pos

import (
	"context"
	"sync"
	"time"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

// MemoryTransactionRepository keeps the transaction log in process memory,
// paired with an in-process price-memory store so commit stays atomic:
// the append and the write-backs happen under one lock.
type MemoryTransactionRepository struct {
	mu     sync.Mutex
	seq    int64
	log    []*Transaction
	memory *pricing.MemoryStore
}

func NewMemoryTransactionRepository(memory *pricing.MemoryStore) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{memory: memory}
}

func (r *MemoryTransactionRepository) CreateWithMemory(ctx context.Context, t *Transaction, writes []pricing.MemoryWrite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.Sequence = r.seq
	t.CreatedAt = time.Now()
	cp := *t
	r.log = append(r.log, &cp)
	if r.memory != nil {
		r.memory.Apply(writes)
	}
	return nil
}

func (r *MemoryTransactionRepository) GetBySequence(ctx context.Context, sequence int64) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.log {
		if t.Sequence == sequence {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("transaction %d not found", sequence)
}

func (r *MemoryTransactionRepository) ListRecent(ctx context.Context, limit int) ([]*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.log) {
		limit = len(r.log)
	}
	out := make([]*Transaction, 0, limit)
	for i := len(r.log) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.log[i]
		out = append(out, &cp)
	}
	return out, nil
}
