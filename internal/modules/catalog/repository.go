package catalog

import "context"

// Repository defines read access to the product catalog. Catalog
// administration (create/update/import) happens outside the register and
// is not part of this interface.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*Product, error)
	Search(ctx context.Context, query string, limit int) ([]*Product, error)
}
