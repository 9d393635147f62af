package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id,sku,barcode,name,category,base_price,
	price_tier_2,price_tier_3,price_tier_4,price_tier_5,is_active,created_at,updated_at`

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var barcode sql.NullString
	err := scan(&p.ID, &p.SKU, &barcode, &p.Name, &p.Category, &p.BasePrice,
		&p.Tier2, &p.Tier3, &p.Tier4, &p.Tier5, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if barcode.Valid {
		p.Barcode = barcode.String
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM products WHERE id=$1 AND is_active=true`, productColumns), id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("product %s not found", id)
	}
	return p, err
}

func (r *postgresRepo) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM products WHERE barcode=$1 AND is_active=true`, productColumns), barcode)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("no product with barcode %s", barcode)
	}
	return p, err
}

func (r *postgresRepo) Search(ctx context.Context, query string, limit int) ([]*Product, error) {
	if limit <= 0 {
		limit = 25
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active=true AND (name ILIKE $1 OR sku ILIKE $1 OR barcode = $2)
		ORDER BY name LIMIT $3`, productColumns),
		"%"+query+"%", query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
