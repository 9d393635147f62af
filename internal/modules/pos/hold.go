package pos

import "context"

// HoldStore persists parked carts. A held record has exactly one
// transition: Held → Recalled, and recall removes the record. Recall must
// be a compare-and-remove so that two racing recalls on the same id cannot
// both succeed — the loser observes NotFound. The store may be shared by
// several terminals, so implementations must tolerate concurrent access.
type HoldStore interface {
	Save(ctx context.Context, ht *HeldTransaction) error
	// Recall atomically removes the record and returns its snapshot, or
	// NotFound if it was never held or already recalled.
	Recall(ctx context.Context, id string) (*HeldTransaction, error)
	List(ctx context.Context) ([]*HeldTransaction, error)
}
