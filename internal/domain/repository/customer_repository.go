package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// CustomerRepository porto de persistência para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Customer, error)
}
