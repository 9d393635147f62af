package pricing

import (
	"context"
	"database/sql"
)

type postgresMemoryRepo struct{ db *sql.DB }

// NewPostgresMemoryRepository creates a price-memory reader backed by the
// price_memory table. Writes happen inside the transaction commit (pos
// module) so they stay atomic with the transaction row.
func NewPostgresMemoryRepository(db *sql.DB) MemoryReader {
	return &postgresMemoryRepo{db: db}
}

func (r *postgresMemoryRepo) Get(ctx context.Context, customerID, productID string) (*MemoryEntry, error) {
	e := &MemoryEntry{}
	err := r.db.QueryRowContext(ctx, `
		SELECT customer_id, product_id, remembered_price, last_charged_price, updated_at
		FROM price_memory WHERE customer_id=$1 AND product_id=$2`, customerID, productID).
		Scan(&e.CustomerID, &e.ProductID, &e.RememberedPrice, &e.LastChargedPrice, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresMemoryRepo) ListByCustomer(ctx context.Context, customerID string) ([]*MemoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT customer_id, product_id, remembered_price, last_charged_price, updated_at
		FROM price_memory WHERE customer_id=$1 ORDER BY updated_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*MemoryEntry
	for rows.Next() {
		e := &MemoryEntry{}
		if err := rows.Scan(&e.CustomerID, &e.ProductID, &e.RememberedPrice,
			&e.LastChargedPrice, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
