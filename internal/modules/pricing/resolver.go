package pricing

import (
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
)

// Source identifies where a resolved unit price came from, so the caller
// can surface a "price memory applied" notice to the cashier.
type Source string

const (
	SourceBase   Source = "base"
	SourceTier   Source = "tier"
	SourceMemory Source = "memory"
)

// Resolution is the outcome of pricing a product for a customer.
type Resolution struct {
	UnitPrice float64 `json:"unit_price"`
	Source    Source  `json:"source"`
}

// Resolve computes the unit price to apply when a product first enters the
// cart. Walk-ins pay the base price. A customer gets the nearest tier
// price defined at or below their tier, falling back to base. A price
// memory entry with a remembered price overrides the tier result entirely.
// Pure: no side effects, safe to call repeatedly.
func Resolve(p *catalog.Product, c *customer.Customer, mem *MemoryEntry) Resolution {
	if c == nil {
		return Resolution{UnitPrice: p.BasePrice, Source: SourceBase}
	}
	if mem != nil && mem.RememberedPrice != nil {
		return Resolution{UnitPrice: *mem.RememberedPrice, Source: SourceMemory}
	}
	for level := c.Tier; level >= 2; level-- {
		if tp := p.TierPrice(level); tp != nil {
			return Resolution{UnitPrice: *tp, Source: SourceTier}
		}
	}
	return Resolution{UnitPrice: p.BasePrice, Source: SourceBase}
}
