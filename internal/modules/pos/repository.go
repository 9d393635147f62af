package pos

import (
	"context"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

// TransactionRepository persists committed sales. CreateWithMemory must be
// atomic: the transaction row and every price-memory write-back land
// together or not at all. On success it fills in the transaction's
// Sequence and CreatedAt.
type TransactionRepository interface {
	CreateWithMemory(ctx context.Context, t *Transaction, writes []pricing.MemoryWrite) error
	GetBySequence(ctx context.Context, sequence int64) (*Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]*Transaction, error)
}
