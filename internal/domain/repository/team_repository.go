package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// TeamMemberRepository porto de persistência para membros da equipe.
type TeamMemberRepository interface {
	Create(ctx context.Context, m *entity.TeamMember) error
	GetByID(ctx context.Context, id string) (*entity.TeamMember, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.TeamMember, error)
	Delete(ctx context.Context, id string) error
}
