package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record as the register sees it: a base price plus
// up to four customer-tier prices. A nil tier price means "not defined at
// this level"; pricing falls back to the next lower defined level,
// ultimately the base price.
type Product struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Barcode   string    `json:"barcode,omitempty"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	BasePrice float64   `json:"base_price"`
	Tier2     *float64  `json:"price_tier_2,omitempty"`
	Tier3     *float64  `json:"price_tier_3,omitempty"`
	Tier4     *float64  `json:"price_tier_4,omitempty"`
	Tier5     *float64  `json:"price_tier_5,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TierPrice returns the price defined exactly at the given level, or nil.
// Levels outside 2..5 never carry a tier price.
func (p *Product) TierPrice(level int) *float64 {
	switch level {
	case 2:
		return p.Tier2
	case 3:
		return p.Tier3
	case 4:
		return p.Tier4
	case 5:
		return p.Tier5
	default:
		return nil
	}
}
