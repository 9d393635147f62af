package pos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

const testTaxRate = 0.0875

func f64(v float64) *float64 { return &v }

func product(name string, base float64) *catalog.Product {
	return &catalog.Product{ID: uuid.New(), Name: name, BasePrice: base, IsActive: true}
}

func basePriced(p *catalog.Product) pricing.Resolution {
	return pricing.Resolution{UnitPrice: p.BasePrice, Source: pricing.SourceBase}
}

func TestCartAddLineComputesTotals(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Chips", 10.00)

	li, err := c.AddLine(p, 3, basePriced(p))
	require.NoError(t, err)

	assert.Equal(t, 30.00, li.LineTotal())
	assert.Equal(t, 30.00, c.Subtotal())
	assert.Equal(t, 2.63, c.Tax()) // 30.00 * 8.75%
	assert.Equal(t, 32.63, c.Total())
}

func TestCartTotalsIdempotentWithoutMutation(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Chips", 9.99)
	_, err := c.AddLine(p, 7, basePriced(p))
	require.NoError(t, err)

	sub, tax, total := c.Subtotal(), c.Tax(), c.Total()
	c.recompute()
	c.recompute()
	assert.Equal(t, sub, c.Subtotal())
	assert.Equal(t, tax, c.Tax())
	assert.Equal(t, total, c.Total())
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Soda", 5.00)
	li, err := c.AddLine(p, 2, basePriced(p))
	require.NoError(t, err)

	require.NoError(t, c.SetQuantity(li.ID, 0))
	assert.True(t, c.Empty())
	assert.Equal(t, 0.0, c.Total())
}

func TestCartSetUnitPriceOverride(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Soda", 5.00)
	li, err := c.AddLine(p, 2, basePriced(p))
	require.NoError(t, err)
	assert.False(t, li.PriceOverridden())

	require.NoError(t, c.SetUnitPrice(li.ID, 4.25))
	assert.True(t, li.PriceOverridden())
	assert.Equal(t, 5.00, li.OriginalPrice, "original price never changes")
	assert.Equal(t, 8.50, c.Subtotal())
}

func TestCartNegativePriceRejectedNoOp(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Soda", 5.00)
	li, err := c.AddLine(p, 1, basePriced(p))
	require.NoError(t, err)

	err = c.SetUnitPrice(li.ID, -1.00)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, 5.00, li.UnitPrice, "rejected override leaves the line untouched")
	assert.Equal(t, 5.00, c.Subtotal())
}

func TestCartInsertionOrderStable(t *testing.T) {
	c := NewCart(testTaxRate)
	a, b, d := product("A", 1), product("B", 2), product("D", 3)
	_, err := c.AddLine(a, 1, basePriced(a))
	require.NoError(t, err)
	lb, err := c.AddLine(b, 1, basePriced(b))
	require.NoError(t, err)
	_, err = c.AddLine(d, 1, basePriced(d))
	require.NoError(t, err)

	require.NoError(t, c.Remove(lb.ID))
	v := c.View()
	require.Len(t, v.Lines, 2)
	assert.Equal(t, "A", v.Lines[0].Name)
	assert.Equal(t, "D", v.Lines[1].Name)
}

func TestCartUnknownLine(t *testing.T) {
	c := NewCart(testTaxRate)
	err := c.SetQuantity(uuid.New(), 3)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCartCustomerChangesTaxOnly(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Chips", 10.00)
	_, err := c.AddLine(p, 3, basePriced(p))
	require.NoError(t, err)
	require.Equal(t, 2.63, c.Tax())

	c.SetCustomer(&customer.Customer{ID: uuid.New(), Tier: 4})
	assert.Equal(t, 0.0, c.Tax())
	assert.Equal(t, 30.00, c.Total())
	assert.Equal(t, 30.00, c.Subtotal(), "line prices are not re-resolved")
}

func TestCartClearDetachesCustomer(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Chips", 10.00)
	_, err := c.AddLine(p, 1, basePriced(p))
	require.NoError(t, err)
	c.SetCustomer(&customer.Customer{ID: uuid.New(), Tier: 2})

	c.Clear()
	assert.True(t, c.Empty())
	assert.Nil(t, c.Customer())
	assert.Equal(t, 0.0, c.Total())
}

func TestCartSnapshotIsolation(t *testing.T) {
	c := NewCart(testTaxRate)
	p := product("Chips", 10.00)
	li, err := c.AddLine(p, 2, basePriced(p))
	require.NoError(t, err)

	snap := c.snapshotLines()
	require.NoError(t, c.SetQuantity(li.ID, 9))
	require.NoError(t, c.SetUnitPrice(li.ID, 1.00))

	assert.Equal(t, 2, snap[0].Quantity, "live mutation must not reach the snapshot")
	assert.Equal(t, 10.00, snap[0].UnitPrice)
}
