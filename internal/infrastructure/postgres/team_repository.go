package postgres

import (
	"context"
	"fmt"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

var _ repository.TeamMemberRepository = (*TeamMemberRepo)(nil)

// TeamMemberRepo implementação do porto TeamMemberRepository sobre PostgreSQL.
type TeamMemberRepo struct {
	q Querier
}

// NewTeamMemberRepository constrói o adaptador de persistência para a equipe.
func NewTeamMemberRepository(q Querier) *TeamMemberRepo {
	return &TeamMemberRepo{q: q}
}

// Create persiste um novo membro da equipe.
func (r *TeamMemberRepo) Create(ctx context.Context, m *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, company_id, name, role, commission_rate, active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.CompanyID, m.Name, m.Role, m.CommissionRate, m.Active)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// GetByID obtém um membro por ID. Devolve (nil, nil) se não existir.
func (r *TeamMemberRepo) GetByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	query := `
		SELECT id, company_id, name, role, commission_rate, active
		FROM team_members WHERE id = $1`
	var m entity.TeamMember
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.CompanyID, &m.Name, &m.Role, &m.CommissionRate, &m.Active)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

// ListByCompany devolve os membros da oficina por nome.
func (r *TeamMemberRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.TeamMember, error) {
	query := `
		SELECT id, company_id, name, role, commission_rate, active
		FROM team_members WHERE company_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var list []*entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Role, &m.CommissionRate, &m.Active); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete remove um membro da equipe.
func (r *TeamMemberRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
