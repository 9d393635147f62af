package customer

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	c := &Customer{}
	var exemptions pq.StringArray
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, tier, tax_exemptions, credit_limit, credit_balance, created_at
		FROM customers WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Tier, &exemptions, &c.CreditLimit, &c.CreditBalance, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("customer %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	c.TaxExemptions = []string(exemptions)
	if c.Tier < 1 {
		c.Tier = 1
	}
	if c.Tier > 5 {
		c.Tier = 5
	}
	return c, nil
}
