package catalog

import (
	"context"
	"strings"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// Service defines catalog lookups used at the register.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	LookupByBarcode(ctx context.Context, barcode string) (*Product, error)
	Search(ctx context.Context, query string, limit int) ([]*Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, apperr.Validation("product id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) LookupByBarcode(ctx context.Context, barcode string) (*Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperr.Validation("barcode is required")
	}
	return s.repo.GetByBarcode(ctx, barcode)
}

func (s *service) Search(ctx context.Context, query string, limit int) ([]*Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}
	return s.repo.Search(ctx, query, limit)
}
