package usecase

import (
	"context"
	"time"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// CompanyUseCase operações do próprio tenant sobre seus dados cadastrais.
// As mutações de licença (plano, status, vencimento) NÃO passam por aqui;
// vivem no controlador de licenciamento e só o operador as aciona.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID devolve a empresa, ou nil se não existir.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// UpdateSettings faz merge parcial dos campos editáveis pelo tenant. Campos
// ausentes no request não são tocados; um operador bloqueando a empresa ao
// mesmo tempo não é sobrescrito por esta escrita.
func (uc *CompanyUseCase) UpdateSettings(ctx context.Context, id string, in dto.UpdateCompanySettingsRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.WarrantyTerms != nil {
		fields["warranty_terms"] = *in.WarrantyTerms
	}
	if in.MonthlyGoal != nil {
		fields["monthly_goal"] = *in.MonthlyGoal
	}
	if len(fields) == 0 {
		return toCompanyResponse(company), nil
	}
	fields["updated_at"] = time.Now()

	if err := uc.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(updated), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Document:      c.Document,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		WarrantyTerms: c.WarrantyTerms,
		MonthlyGoal:   c.MonthlyGoal,
		Plan:          c.Plan,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
