package customer

import "context"

// Repository defines read access to customer accounts. Account management
// (signup, tier changes, credit adjustments) happens elsewhere.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Customer, error)
}
