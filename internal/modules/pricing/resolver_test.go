package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
)

func f64(v float64) *float64 { return &v }

func testProduct() *catalog.Product {
	return &catalog.Product{
		ID:        uuid.New(),
		Name:      "Energy Drink 24pk",
		BasePrice: 30.00,
		Tier2:     f64(27.50),
		Tier4:     f64(24.00),
	}
}

func tierCustomer(tier int) *customer.Customer {
	return &customer.Customer{ID: uuid.New(), Name: "Acme Mart", Tier: tier}
}

func TestResolveWalkInUsesBasePrice(t *testing.T) {
	res := Resolve(testProduct(), nil, nil)
	assert.Equal(t, 30.00, res.UnitPrice)
	assert.Equal(t, SourceBase, res.Source)
}

func TestResolveNearestDefinedTierAtOrBelow(t *testing.T) {
	p := testProduct() // tiers defined at {2, 4}

	// Tier 3 has no price of its own; it inherits tier 2.
	res := Resolve(p, tierCustomer(3), nil)
	assert.Equal(t, 27.50, res.UnitPrice)
	assert.Equal(t, SourceTier, res.Source)

	// Tier 5 has no price of its own; it inherits tier 4.
	res = Resolve(p, tierCustomer(5), nil)
	assert.Equal(t, 24.00, res.UnitPrice)

	// Tier 4 hits its own price exactly.
	res = Resolve(p, tierCustomer(4), nil)
	assert.Equal(t, 24.00, res.UnitPrice)
}

func TestResolveTierOneFallsBackToBase(t *testing.T) {
	res := Resolve(testProduct(), tierCustomer(1), nil)
	assert.Equal(t, 30.00, res.UnitPrice)
	assert.Equal(t, SourceBase, res.Source)
}

func TestResolveNoTiersDefinedFallsBackToBase(t *testing.T) {
	p := &catalog.Product{ID: uuid.New(), BasePrice: 12.99}
	res := Resolve(p, tierCustomer(5), nil)
	assert.Equal(t, 12.99, res.UnitPrice)
	assert.Equal(t, SourceBase, res.Source)
}

func TestResolveMemoryOverridesTierPrice(t *testing.T) {
	p := testProduct()
	c := tierCustomer(4)
	mem := &MemoryEntry{
		CustomerID:       c.ID,
		ProductID:        p.ID,
		RememberedPrice:  f64(8.50),
		LastChargedPrice: 8.50,
	}
	res := Resolve(p, c, mem)
	require.Equal(t, 8.50, res.UnitPrice)
	assert.Equal(t, SourceMemory, res.Source)
}

func TestResolveMemoryWithoutRememberedPriceIsIgnored(t *testing.T) {
	p := testProduct()
	c := tierCustomer(4)
	mem := &MemoryEntry{CustomerID: c.ID, ProductID: p.ID, LastChargedPrice: 24.00}
	res := Resolve(p, c, mem)
	assert.Equal(t, 24.00, res.UnitPrice)
	assert.Equal(t, SourceTier, res.Source)
}
