package pricing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// Handler exposes price-memory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pricing", func(r chi.Router) {
		r.Get("/memory/{customer_id}", h.listMemory) // GET /api/v1/pricing/memory/{customer_id}
	})
}

func (h *Handler) listMemory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListMemory(r.Context(), chi.URLParam(r, "customer_id"))
	if err != nil {
		respond(w, apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []*MemoryEntry{}
	}
	respond(w, http.StatusOK, entries)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
