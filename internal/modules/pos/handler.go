package pos

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// Handler exposes the register's HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Get("/cart", h.getCart)                      // GET    /api/v1/pos/cart
		r.Delete("/cart", h.clearCart)                 // DELETE /api/v1/pos/cart
		r.Post("/cart/items", h.addItem)               // POST   /api/v1/pos/cart/items
		r.Patch("/cart/items/{line_id}", h.updateLine) // PATCH  /api/v1/pos/cart/items/{line_id}
		r.Delete("/cart/items/{line_id}", h.removeLine)
		r.Put("/cart/customer", h.attachCustomer)      // PUT    /api/v1/pos/cart/customer

		r.Post("/holds", h.hold)                       // POST   /api/v1/pos/holds
		r.Get("/holds", h.listHeld)                    // GET    /api/v1/pos/holds
		r.Post("/holds/{id}/recall", h.recall)         // POST   /api/v1/pos/holds/{id}/recall

		r.Post("/checkout", h.checkout)                // POST   /api/v1/pos/checkout
		r.Get("/transactions", h.listTransactions)     // GET    /api/v1/pos/transactions
		r.Get("/transactions/{sequence}", h.getTransaction)
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Cart(r.Context()))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ClearCart(r.Context()))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// The "N*code" shorthand is a register input convention, resolved here
	// before the cart ever sees it.
	if req.Scan != "" {
		qty, code := parseScanInput(req.Scan)
		req.Barcode = code
		if req.Quantity == 0 {
			req.Quantity = qty
		}
	}
	result, err := h.service.AddItem(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request) {
	var req UpdateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	view, err := h.service.UpdateLine(r.Context(), chi.URLParam(r, "line_id"), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveLine(r.Context(), chi.URLParam(r, "line_id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) attachCustomer(w http.ResponseWriter, r *http.Request) {
	var req AttachCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	view, err := h.service.AttachCustomer(r.Context(), req.CustomerID)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) hold(w http.ResponseWriter, r *http.Request) {
	var req HoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	ht, err := h.service.Hold(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, ht)
}

func (h *Handler) listHeld(w http.ResponseWriter, r *http.Request) {
	held, err := h.service.ListHeld(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if held == nil {
		held = []*HeldTransaction{}
	}
	respond(w, http.StatusOK, held)
}

func (h *Handler) recall(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Recall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	result, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	seq, err := strconv.ParseInt(chi.URLParam(r, "sequence"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid sequence"})
		return
	}
	t, err := h.service.GetTransaction(r.Context(), seq)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	txs, err := h.service.ListTransactions(r.Context(), limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, txs)
}

// parseScanInput splits the register's quantity shorthand: "3*10001"
// means quantity 3 of code 10001. Anything without a valid prefix is a
// plain code at quantity 1.
func parseScanInput(s string) (int, string) {
	if i := strings.Index(s, "*"); i > 0 {
		if qty, err := strconv.Atoi(s[:i]); err == nil && qty > 0 {
			return qty, s[i+1:]
		}
	}
	return 1, s
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
