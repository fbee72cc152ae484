package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// ServiceOrderRepository porto de persistência para ordens de serviço.
type ServiceOrderRepository interface {
	Create(ctx context.Context, os *entity.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error)
	Update(ctx context.Context, os *entity.ServiceOrder) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.ServiceOrder, error)
}
