package pricing

import "context"

// MemoryReader is the read side of the price-memory store, consulted when
// a line is first added to a cart. A missing entry is (nil, nil), not an
// error: most (customer, product) pairs have no memory.
type MemoryReader interface {
	Get(ctx context.Context, customerID, productID string) (*MemoryEntry, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*MemoryEntry, error)
}
