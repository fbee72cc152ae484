package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// TransactionRepository porto de persistência para lançamentos financeiros.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Transaction, error)
	Delete(ctx context.Context, id string) error
}
