package customer

import (
	"context"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/apperr"
)

// Service defines customer lookups used at the register.
type Service interface {
	GetCustomer(ctx context.Context, id string) (*Customer, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	if id == "" {
		return nil, apperr.Validation("customer id is required")
	}
	return s.repo.GetByID(ctx, id)
}
