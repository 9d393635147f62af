package pos

import (
	"time"

	"github.com/google/uuid"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

// PaymentMethod represents how a sale was settled at the register.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCheck         PaymentMethod = "check"
	PaymentAccountCredit PaymentMethod = "account_credit"
)

// LineItem is one cart line. OriginalPrice is the catalog base price at
// add time and never changes; UnitPrice starts at the resolved price and
// may be overridden. A line with UnitPrice != OriginalPrice carries a
// price override.
type LineItem struct {
	ID            uuid.UUID      `json:"id"`
	ProductID     uuid.UUID      `json:"product_id"`
	Name          string         `json:"name"`
	Quantity      int            `json:"quantity"`
	UnitPrice     float64        `json:"unit_price"`
	OriginalPrice float64        `json:"original_price"`
	PriceSource   pricing.Source `json:"price_source"`
}

// PriceOverridden reports whether the line's current price differs from
// the catalog base price at add time.
func (li *LineItem) PriceOverridden() bool { return li.UnitPrice != li.OriginalPrice }

// LineTotal is quantity times unit price, rounded to the cent. Derived on
// demand so it can never lag behind its inputs.
func (li *LineItem) LineTotal() float64 {
	return pricing.RoundCents(float64(li.Quantity) * li.UnitPrice)
}

func (li *LineItem) clone() *LineItem {
	cp := *li
	return &cp
}

// HeldTransaction is a parked cart: a deep snapshot of the lines, the
// attached customer, and the totals at hold time. A held record can be
// recalled at most once; recall removes it.
type HeldTransaction struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Lines     []*LineItem        `json:"lines"`
	Customer  *customer.Customer `json:"customer,omitempty"`
	Subtotal  float64            `json:"subtotal"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

// TransactionLine is a finalized, denormalized line on a committed
// transaction.
type TransactionLine struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	OriginalPrice   float64   `json:"original_price"`
	PriceOverridden bool      `json:"price_overridden"`
	LineTotal       float64   `json:"line_total"`
}

// Transaction is a committed sale. Sequence increases monotonically across
// the terminal's transaction log. Immutable once created.
type Transaction struct {
	Sequence      int64             `json:"sequence"`
	ID            uuid.UUID         `json:"id"`
	CustomerID    *uuid.UUID        `json:"customer_id,omitempty"`
	Lines         []TransactionLine `json:"lines"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	CashReceived  *float64          `json:"cash_received,omitempty"`
	CheckNumber   string            `json:"check_number,omitempty"`
	ChangeDue     float64           `json:"change_due"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ── request / response payloads ───────────────────────────────────────────────

// AddItemRequest adds a product to the cart. Scan takes precedence and
// accepts the register's "N*code" quantity shorthand; otherwise ProductID
// or Barcode identifies the product directly.
type AddItemRequest struct {
	Scan      string `json:"scan,omitempty"`
	ProductID string `json:"product_id,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// UpdateLineRequest mutates one cart line. Nil fields are left unchanged.
type UpdateLineRequest struct {
	Quantity  *int     `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// AttachCustomerRequest selects the customer for the active transaction.
type AttachCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// HoldRequest parks the active cart under a user-supplied label.
type HoldRequest struct {
	Name string `json:"name"`
}

// CheckoutRequest finalizes the active cart.
type CheckoutRequest struct {
	PaymentMethod string   `json:"payment_method"`
	CashReceived  *float64 `json:"cash_received,omitempty"`
	CheckNumber   string   `json:"check_number,omitempty"`
}

// LineView is the wire representation of a cart line with its derived
// fields materialized.
type LineView struct {
	ID              uuid.UUID      `json:"id"`
	ProductID       uuid.UUID      `json:"product_id"`
	Name            string         `json:"name"`
	Quantity        int            `json:"quantity"`
	UnitPrice       float64        `json:"unit_price"`
	OriginalPrice   float64        `json:"original_price"`
	PriceOverridden bool           `json:"price_overridden"`
	PriceSource     pricing.Source `json:"price_source"`
	LineTotal       float64        `json:"line_total"`
}

// CartView is the wire representation of the live cart.
type CartView struct {
	Lines    []LineView         `json:"lines"`
	Customer *customer.Customer `json:"customer,omitempty"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`
}

// AddItemResult reports the cart after an add plus whether a price-memory
// entry supplied the unit price, so the UI can surface the notice.
type AddItemResult struct {
	Cart               CartView  `json:"cart"`
	LineID             uuid.UUID `json:"line_id"`
	PriceMemoryApplied bool      `json:"price_memory_applied"`
}

// CheckoutResult carries the committed transaction and its printable
// receipt.
type CheckoutResult struct {
	Transaction *Transaction `json:"transaction"`
	Receipt     string       `json:"receipt"`
}
