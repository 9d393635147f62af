package pos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
)

type postgresHoldStore struct{ db *sql.DB }

// NewPostgresHoldStore creates a hold store backed by the
// held_transactions table.
func NewPostgresHoldStore(db *sql.DB) HoldStore { return &postgresHoldStore{db: db} }

func (s *postgresHoldStore) Save(ctx context.Context, ht *HeldTransaction) error {
	lines, err := json.Marshal(ht.Lines)
	if err != nil {
		return err
	}
	var cust []byte
	if ht.Customer != nil {
		if cust, err = json.Marshal(ht.Customer); err != nil {
			return err
		}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO held_transactions
		  (id, name, line_items, customer, subtotal, tax, total, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		ht.ID, ht.Name, lines, cust, ht.Subtotal, ht.Tax, ht.Total, ht.CreatedAt)
	return err
}

// Recall is a single DELETE ... RETURNING: the row removal and the
// snapshot read are one atomic statement, so concurrent recalls on the
// same id resolve to exactly one winner.
func (s *postgresHoldStore) Recall(ctx context.Context, id string) (*HeldTransaction, error) {
	row := s.db.QueryRowContext(ctx, `
		DELETE FROM held_transactions WHERE id=$1
		RETURNING id, name, line_items, customer, subtotal, tax, total, created_at`, id)
	ht, err := scanHeld(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("held transaction %s not found", id)
	}
	return ht, err
}

func (s *postgresHoldStore) List(ctx context.Context) ([]*HeldTransaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, line_items, customer, subtotal, tax, total, created_at
		FROM held_transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var held []*HeldTransaction
	for rows.Next() {
		ht, err := scanHeld(rows.Scan)
		if err != nil {
			return nil, err
		}
		held = append(held, ht)
	}
	return held, rows.Err()
}

func scanHeld(scan func(...interface{}) error) (*HeldTransaction, error) {
	ht := &HeldTransaction{}
	var lines, cust []byte
	err := scan(&ht.ID, &ht.Name, &lines, &cust, &ht.Subtotal, &ht.Tax, &ht.Total, &ht.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &ht.Lines); err != nil {
		return nil, err
	}
	if len(cust) > 0 {
		ht.Customer = &customer.Customer{}
		if err := json.Unmarshal(cust, ht.Customer); err != nil {
			return nil, err
		}
	}
	return ht, nil
}
