package pos

import (
	"github.com/google/uuid"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

// Cart is the single active transaction on the terminal: an ordered list
// of line items plus an optional customer. Every mutation recomputes the
// derived subtotal/tax/total before returning, so a caller can never
// observe stale totals. Cart is not safe for concurrent use; the owning
// service serializes access.
type Cart struct {
	lines    []*LineItem
	customer *customer.Customer
	baseRate float64

	subtotal float64
	tax      float64
	total    float64
}

// NewCart creates an empty cart taxed at the given base rate.
func NewCart(baseRate float64) *Cart {
	return &Cart{baseRate: baseRate}
}

func (c *Cart) Empty() bool                  { return len(c.lines) == 0 }
func (c *Cart) Customer() *customer.Customer { return c.customer }
func (c *Cart) Subtotal() float64            { return c.subtotal }
func (c *Cart) Tax() float64                 { return c.tax }
func (c *Cart) Total() float64               { return c.total }

// FindByProduct returns the existing line for a product, or nil. The cart
// never holds two lines for the same product.
func (c *Cart) FindByProduct(productID uuid.UUID) *LineItem {
	for _, li := range c.lines {
		if li.ProductID == productID {
			return li
		}
	}
	return nil
}

func (c *Cart) findLine(lineID uuid.UUID) (int, *LineItem) {
	for i, li := range c.lines {
		if li.ID == lineID {
			return i, li
		}
	}
	return -1, nil
}

// AddLine appends a new line priced by the given resolution. Callers must
// merge into an existing line themselves (via FindByProduct/SetQuantity);
// price resolution happens only at line creation.
func (c *Cart) AddLine(p *catalog.Product, qty int, res pricing.Resolution) (*LineItem, error) {
	if qty < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}
	if res.UnitPrice < 0 {
		return nil, apperr.Validation("unit price cannot be negative")
	}
	li := &LineItem{
		ID:            uuid.New(),
		ProductID:     p.ID,
		Name:          p.Name,
		Quantity:      qty,
		UnitPrice:     res.UnitPrice,
		OriginalPrice: p.BasePrice,
		PriceSource:   res.Source,
	}
	c.lines = append(c.lines, li)
	c.recompute()
	return li, nil
}

// SetQuantity changes a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(lineID uuid.UUID, qty int) error {
	i, li := c.findLine(lineID)
	if li == nil {
		return apperr.NotFound("line %s not in cart", lineID)
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	} else {
		li.Quantity = qty
	}
	c.recompute()
	return nil
}

// SetUnitPrice overrides a line's price. Negative prices are rejected and
// the line is left untouched. OriginalPrice never changes.
func (c *Cart) SetUnitPrice(lineID uuid.UUID, price float64) error {
	_, li := c.findLine(lineID)
	if li == nil {
		return apperr.NotFound("line %s not in cart", lineID)
	}
	if price < 0 {
		return apperr.Validation("unit price cannot be negative")
	}
	li.UnitPrice = price
	c.recompute()
	return nil
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(lineID uuid.UUID) error {
	i, li := c.findLine(lineID)
	if li == nil {
		return apperr.NotFound("line %s not in cart", lineID)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.recompute()
	return nil
}

// SetCustomer attaches (or detaches, with nil) the transaction's customer
// and re-runs the tax computation. Existing line prices are not
// re-resolved.
func (c *Cart) SetCustomer(cust *customer.Customer) {
	c.customer = cust
	c.recompute()
}

// Clear resets the cart to empty and detaches the customer. Used after a
// committed sale, after a hold, and before a recall copies data in.
func (c *Cart) Clear() {
	c.lines = nil
	c.customer = nil
	c.recompute()
}

// recompute rebuilds all derived totals from the lines. Tax is always
// recomputed whole, never patched incrementally.
func (c *Cart) recompute() {
	var subtotal float64
	for _, li := range c.lines {
		subtotal += li.LineTotal()
	}
	c.subtotal = pricing.RoundCents(subtotal)
	c.tax = pricing.Tax(c.subtotal, c.customer, c.baseRate)
	c.total = pricing.RoundCents(c.subtotal + c.tax)
}

// snapshotLines deep-copies the cart lines; later cart mutation cannot
// reach into the copy.
func (c *Cart) snapshotLines() []*LineItem {
	out := make([]*LineItem, len(c.lines))
	for i, li := range c.lines {
		out[i] = li.clone()
	}
	return out
}

// restore replaces the cart's contents with a held snapshot. The snapshot
// lines are copied in, so the held record and the live cart never share
// line pointers.
func (c *Cart) restore(lines []*LineItem, cust *customer.Customer) {
	c.lines = make([]*LineItem, len(lines))
	for i, li := range lines {
		c.lines[i] = li.clone()
	}
	c.customer = cust
	c.recompute()
}

// View materializes the cart for the wire.
func (c *Cart) View() CartView {
	v := CartView{
		Lines:    make([]LineView, len(c.lines)),
		Customer: c.customer,
		Subtotal: c.subtotal,
		Tax:      c.tax,
		Total:    c.total,
	}
	for i, li := range c.lines {
		v.Lines[i] = LineView{
			ID:              li.ID,
			ProductID:       li.ProductID,
			Name:            li.Name,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			OriginalPrice:   li.OriginalPrice,
			PriceOverridden: li.PriceOverridden(),
			PriceSource:     li.PriceSource,
			LineTotal:       li.LineTotal(),
		}
	}
	return v
}
