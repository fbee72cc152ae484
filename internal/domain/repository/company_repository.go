package repository

import (
	"context"
	"time"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// CompanyRepository define o porto de persistência para Company (DIP).
// A implementação vive em infrastructure.
//
// UpdateFields faz merge parcial: só as colunas presentes no mapa mudam, como
// no primitivo de update do document store original. CompareAndSetLicense é o
// caminho de escrita da renovação: grava plano/status/vencimento apenas se o
// expires_at atual ainda for o lido antes (evita extensões perdidas entre dois
// operadores renovando ao mesmo tempo).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByDocument(ctx context.Context, document string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error) // created_at DESC
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	UpdateStatus(ctx context.Context, id, status string) error
	CompareAndSetLicense(ctx context.Context, id string, prevExpiresAt time.Time, plan, status string, newExpiresAt time.Time) (bool, error)
}
