package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// ProductRepository porto de persistência para produtos/peças.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
