package pricing

import (
	"time"

	"github.com/google/uuid"
)

// MemoryEntry records the last price actually charged to a customer for a
// product. RememberedPrice is set only when the charged price was an
// override; once present it supersedes tier pricing on the next add.
// One entry exists per (customer, product) pair; commits overwrite it.
type MemoryEntry struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	ProductID        uuid.UUID `json:"product_id"`
	RememberedPrice  *float64  `json:"remembered_price,omitempty"`
	LastChargedPrice float64   `json:"last_charged_price"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MemoryWrite is one price-memory upsert produced by a committed
// transaction. The transaction processor persists these atomically with
// the transaction row.
type MemoryWrite struct {
	CustomerID       uuid.UUID
	ProductID        uuid.UUID
	RememberedPrice  *float64
	LastChargedPrice float64
}
