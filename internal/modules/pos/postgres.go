package pos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) TransactionRepository { return &postgresRepo{db: db} }

// CreateWithMemory runs the transaction insert and all price-memory
// upserts inside one database transaction. A partial commit (sale recorded
// but memory stale, or the reverse) can never be observed.
func (r *postgresRepo) CreateWithMemory(ctx context.Context, t *Transaction, writes []pricing.MemoryWrite) error {
	lines, err := json.Marshal(t.Lines)
	if err != nil {
		return err
	}

	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	err = dbtx.QueryRowContext(ctx, `
		INSERT INTO pos_transactions
		  (id, customer_id, line_items, subtotal, tax, total,
		   payment_method, cash_received, check_number, change_due)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING sequence, created_at`,
		t.ID, t.CustomerID, lines, t.Subtotal, t.Tax, t.Total,
		t.PaymentMethod, t.CashReceived, nullIfEmpty(t.CheckNumber), t.ChangeDue).
		Scan(&t.Sequence, &t.CreatedAt)
	if err != nil {
		return err
	}

	for _, w := range writes {
		_, err = dbtx.ExecContext(ctx, `
			INSERT INTO price_memory (customer_id, product_id, remembered_price, last_charged_price, updated_at)
			VALUES ($1,$2,$3,$4,NOW())
			ON CONFLICT (customer_id, product_id) DO UPDATE SET
			  remembered_price = EXCLUDED.remembered_price,
			  last_charged_price = EXCLUDED.last_charged_price,
			  updated_at = NOW()`,
			w.CustomerID, w.ProductID, w.RememberedPrice, w.LastChargedPrice)
		if err != nil {
			return err
		}
	}

	return dbtx.Commit()
}

func (r *postgresRepo) GetBySequence(ctx context.Context, sequence int64) (*Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT sequence, id, customer_id, line_items, subtotal, tax, total,
		       payment_method, cash_received, check_number, change_due, created_at
		FROM pos_transactions WHERE sequence=$1`, sequence)
	t, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("transaction %d not found", sequence)
	}
	return t, err
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, id, customer_id, line_items, subtotal, tax, total,
		       payment_method, cash_received, check_number, change_due, created_at
		FROM pos_transactions ORDER BY sequence DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func scanTransaction(scan func(...interface{}) error) (*Transaction, error) {
	t := &Transaction{}
	var lines []byte
	var checkNumber sql.NullString
	err := scan(&t.Sequence, &t.ID, &t.CustomerID, &lines, &t.Subtotal, &t.Tax, &t.Total,
		&t.PaymentMethod, &t.CashReceived, &checkNumber, &t.ChangeDue, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &t.Lines); err != nil {
		return nil, err
	}
	if checkNumber.Valid {
		t.CheckNumber = checkNumber.String
	}
	return t, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
