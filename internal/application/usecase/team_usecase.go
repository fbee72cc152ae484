package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// TeamUseCase gestão da equipe da oficina.
type TeamUseCase struct {
	repo repository.TeamMemberRepository
}

// NewTeamUseCase constrói o caso de uso.
func NewTeamUseCase(repo repository.TeamMemberRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create cadastra um membro. A taxa de comissão fica no intervalo 0–100.
func (uc *TeamUseCase) Create(ctx context.Context, companyID string, in dto.SaveTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.TeamMember{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           in.Name,
		Role:           in.Role,
		CommissionRate: in.CommissionRate,
		Active:         in.Active,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(m), nil
}

// Delete remove um membro do tenant.
func (uc *TeamUseCase) Delete(ctx context.Context, companyID, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil || m.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve a equipe do tenant.
func (uc *TeamUseCase) List(ctx context.Context, companyID string) ([]dto.TeamMemberResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toTeamMemberResponse(m))
	}
	return out, nil
}

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		Role:           m.Role,
		CommissionRate: m.CommissionRate,
		Active:         m.Active,
	}
}
