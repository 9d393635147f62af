package pos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

// Service is the terminal session: it owns the single live cart and runs
// the add/hold/recall/checkout state machine over it.
type Service interface {
	Cart(ctx context.Context) CartView
	AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error)
	UpdateLine(ctx context.Context, lineID string, req UpdateLineRequest) (CartView, error)
	RemoveLine(ctx context.Context, lineID string) (CartView, error)
	AttachCustomer(ctx context.Context, customerID string) (CartView, error)
	ClearCart(ctx context.Context) CartView

	Hold(ctx context.Context, req HoldRequest) (*HeldTransaction, error)
	Recall(ctx context.Context, id string) (CartView, error)
	ListHeld(ctx context.Context) ([]*HeldTransaction, error)

	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	GetTransaction(ctx context.Context, sequence int64) (*Transaction, error)
	ListTransactions(ctx context.Context, limit int) ([]*Transaction, error)
}

type service struct {
	// mu serializes every cart mutation; the live cart's read-modify-write
	// of derived totals is a critical section.
	mu   sync.Mutex
	cart *Cart

	products  catalog.Repository
	customers customer.Repository
	memory    pricing.MemoryReader
	holds     HoldStore
	txs       TransactionRepository
	logger    *zap.Logger
	baseRate  float64
}

func NewService(
	products catalog.Repository,
	customers customer.Repository,
	memory pricing.MemoryReader,
	holds HoldStore,
	txs TransactionRepository,
	logger *zap.Logger,
	baseRate float64,
) Service {
	return &service{
		cart:      NewCart(baseRate),
		products:  products,
		customers: customers,
		memory:    memory,
		holds:     holds,
		txs:       txs,
		logger:    logger,
		baseRate:  baseRate,
	}
}

func (s *service) Cart(ctx context.Context) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.View()
}

func (s *service) AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	p, err := s.resolveProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Merge into an existing line for the same product: quantity bumps,
	// the price resolved at line creation stays.
	if existing := s.cart.FindByProduct(p.ID); existing != nil {
		if err := s.cart.SetQuantity(existing.ID, existing.Quantity+qty); err != nil {
			return nil, err
		}
		return &AddItemResult{Cart: s.cart.View(), LineID: existing.ID}, nil
	}

	var mem *pricing.MemoryEntry
	if cust := s.cart.Customer(); cust != nil {
		mem, err = s.memory.Get(ctx, cust.ID.String(), p.ID.String())
		if err != nil {
			return nil, err
		}
	}
	res := pricing.Resolve(p, s.cart.Customer(), mem)
	li, err := s.cart.AddLine(p, qty, res)
	if err != nil {
		return nil, err
	}
	if res.Source == pricing.SourceMemory {
		s.logger.Info("price memory applied",
			zap.String("product_id", p.ID.String()),
			zap.Float64("unit_price", res.UnitPrice))
	}
	return &AddItemResult{
		Cart:               s.cart.View(),
		LineID:             li.ID,
		PriceMemoryApplied: res.Source == pricing.SourceMemory,
	}, nil
}

func (s *service) resolveProduct(ctx context.Context, req AddItemRequest) (*catalog.Product, error) {
	switch {
	case req.ProductID != "":
		return s.products.GetByID(ctx, req.ProductID)
	case req.Barcode != "":
		return s.products.GetByBarcode(ctx, req.Barcode)
	default:
		return nil, apperr.Validation("product_id or barcode is required")
	}
}

func (s *service) UpdateLine(ctx context.Context, lineID string, req UpdateLineRequest) (CartView, error) {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return CartView{}, apperr.Validation("invalid line id")
	}
	if req.Quantity == nil && req.UnitPrice == nil {
		return CartView{}, apperr.Validation("quantity or unit_price is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.UnitPrice != nil {
		if err := s.cart.SetUnitPrice(id, *req.UnitPrice); err != nil {
			return CartView{}, err
		}
	}
	if req.Quantity != nil {
		if err := s.cart.SetQuantity(id, *req.Quantity); err != nil {
			return CartView{}, err
		}
	}
	return s.cart.View(), nil
}

func (s *service) RemoveLine(ctx context.Context, lineID string) (CartView, error) {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return CartView{}, apperr.Validation("invalid line id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Remove(id); err != nil {
		return CartView{}, err
	}
	return s.cart.View(), nil
}

func (s *service) AttachCustomer(ctx context.Context, customerID string) (CartView, error) {
	if customerID == "" {
		return CartView{}, apperr.Validation("customer_id is required")
	}
	cust, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return CartView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetCustomer(cust)
	return s.cart.View(), nil
}

func (s *service) ClearCart(ctx context.Context) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return s.cart.View()
}

// ── hold / recall ─────────────────────────────────────────────────────────────

func (s *service) Hold(ctx context.Context, req HoldRequest) (*HeldTransaction, error) {
	if req.Name == "" {
		return nil, apperr.Validation("hold name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Empty() {
		return nil, apperr.Validation("cannot hold an empty cart")
	}

	ht := &HeldTransaction{
		ID:        uuid.New(),
		Name:      req.Name,
		Lines:     s.cart.snapshotLines(),
		Customer:  s.cart.Customer(),
		Subtotal:  s.cart.Subtotal(),
		Tax:       s.cart.Tax(),
		Total:     s.cart.Total(),
		CreatedAt: time.Now(),
	}
	if err := s.holds.Save(ctx, ht); err != nil {
		return nil, err
	}
	s.cart.Clear()
	s.logger.Info("transaction held",
		zap.String("hold_id", ht.ID.String()),
		zap.String("name", ht.Name),
		zap.Float64("total", ht.Total))
	return ht, nil
}

func (s *service) Recall(ctx context.Context, id string) (CartView, error) {
	ht, err := s.holds.Recall(ctx, id)
	if err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.cart.restore(ht.Lines, ht.Customer)
	s.logger.Info("transaction recalled",
		zap.String("hold_id", ht.ID.String()),
		zap.String("name", ht.Name))
	return s.cart.View(), nil
}

func (s *service) ListHeld(ctx context.Context) ([]*HeldTransaction, error) {
	return s.holds.List(ctx)
}

// ── checkout ──────────────────────────────────────────────────────────────────

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	method := PaymentMethod(req.PaymentMethod)
	switch method {
	case PaymentCash, PaymentCheck, PaymentAccountCredit:
	default:
		return nil, apperr.Validation("invalid payment_method: %s (allowed: cash, check, account_credit)", req.PaymentMethod)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Empty() {
		return nil, apperr.Validation("cart is empty")
	}

	cust := s.cart.Customer()
	total := s.cart.Total()

	// Payment detail is exclusive to its method.
	switch method {
	case PaymentCash:
		if req.CheckNumber != "" {
			return nil, apperr.Validation("check_number is not valid for cash payment")
		}
	case PaymentCheck:
		if req.CheckNumber == "" {
			return nil, apperr.Validation("check_number is required for check payment")
		}
		if req.CashReceived != nil {
			return nil, apperr.Validation("cash_received is not valid for check payment")
		}
	case PaymentAccountCredit:
		if req.CashReceived != nil || req.CheckNumber != "" {
			return nil, apperr.Validation("payment detail is not valid for account credit")
		}
		if cust == nil {
			return nil, apperr.Validation("account credit requires a customer on the transaction")
		}
		if avail := cust.AvailableCredit(); total > avail {
			return nil, apperr.Policy("insufficient credit: short $%.2f (available $%.2f, total $%.2f)",
				pricing.RoundCents(total-avail), avail, total)
		}
	}

	t := &Transaction{
		ID:            uuid.New(),
		Subtotal:      s.cart.Subtotal(),
		Tax:           s.cart.Tax(),
		Total:         total,
		PaymentMethod: method,
		CheckNumber:   req.CheckNumber,
	}
	if cust != nil {
		cid := cust.ID
		t.CustomerID = &cid
	}
	if method == PaymentCash && req.CashReceived != nil {
		received := *req.CashReceived
		t.CashReceived = &received
		// Tendering is advisory at the register: short cash does not block
		// the sale, displayed change just bottoms out at zero.
		if change := received - total; change > 0 {
			t.ChangeDue = pricing.RoundCents(change)
		}
	}
	for _, v := range s.cart.View().Lines {
		t.Lines = append(t.Lines, TransactionLine{
			ProductID:       v.ProductID,
			Name:            v.Name,
			Quantity:        v.Quantity,
			UnitPrice:       v.UnitPrice,
			OriginalPrice:   v.OriginalPrice,
			PriceOverridden: v.PriceOverridden,
			LineTotal:       v.LineTotal,
		})
	}

	// One write-back per distinct product; the cart merges lines per
	// product, so iterating lines is exactly that. Walk-ins write nothing.
	var writes []pricing.MemoryWrite
	if cust != nil {
		for _, l := range t.Lines {
			w := pricing.MemoryWrite{
				CustomerID:       cust.ID,
				ProductID:        l.ProductID,
				LastChargedPrice: l.UnitPrice,
			}
			if l.PriceOverridden {
				price := l.UnitPrice
				w.RememberedPrice = &price
			}
			writes = append(writes, w)
		}
	}

	// Any failure here leaves the cart exactly as it was.
	if err := s.txs.CreateWithMemory(ctx, t, writes); err != nil {
		return nil, err
	}
	s.cart.Clear()
	s.logger.Info("transaction committed",
		zap.Int64("sequence", t.Sequence),
		zap.String("payment_method", string(method)),
		zap.Float64("total", t.Total),
		zap.Int("lines", len(t.Lines)))

	return &CheckoutResult{Transaction: t, Receipt: FormatReceipt(t)}, nil
}

func (s *service) GetTransaction(ctx context.Context, sequence int64) (*Transaction, error) {
	return s.txs.GetBySequence(ctx, sequence)
}

func (s *service) ListTransactions(ctx context.Context, limit int) ([]*Transaction, error) {
	return s.txs.ListRecent(ctx, limit)
}
