package pricing

import (
	"context"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// Service defines price-memory queries exposed over HTTP.
type Service interface {
	ListMemory(ctx context.Context, customerID string) ([]*MemoryEntry, error)
}

type service struct{ memory MemoryReader }

func NewService(memory MemoryReader) Service { return &service{memory: memory} }

func (s *service) ListMemory(ctx context.Context, customerID string) ([]*MemoryEntry, error) {
	if customerID == "" {
		return nil, apperr.Validation("customer id is required")
	}
	return s.memory.ListByCustomer(ctx, customerID)
}
