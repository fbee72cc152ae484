package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// Garante que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL.
// Aceita pool ou tx (Querier).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador de persistência para oficinas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, document, email, phone, address, warranty_terms, monthly_goal, plan, status, created_at, expires_at, updated_at`

// Create persiste uma nova oficina.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Address,
		c.WarrantyTerms, c.MonthlyGoal, c.Plan, c.Status,
		c.CreatedAt, c.ExpiresAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtém uma oficina por ID. Devolve (nil, nil) se não existir.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := r.scanOne(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByDocument obtém uma oficina pelo CNPJ/CPF.
func (r *CompanyRepo) GetByDocument(ctx context.Context, document string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE document = $1`
	c, err := r.scanOne(ctx, query, document)
	if err != nil {
		return nil, fmt.Errorf("get company by document: %w", err)
	}
	return c, nil
}

// List devolve todas as oficinas, mais recentes primeiro.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address,
			&c.WarrantyTerms, &c.MonthlyGoal, &c.Plan, &c.Status,
			&c.CreatedAt, &c.ExpiresAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateFields faz merge parcial: só as colunas presentes no mapa mudam.
// As colunas do licenciamento (plan, status, expires_at) nunca passam por aqui;
// mudam apenas via UpdateStatus e CompareAndSetLicense.
func (r *CompanyRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols) // ordem estável para SQL reproduzível

	set := ""
	args := []any{id}
	for i, col := range cols {
		if i > 0 {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, i+2)
		args = append(args, fields[col])
	}
	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $1`, set)
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update company fields: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus grava o status da licença (bloqueio/desbloqueio do operador).
func (r *CompanyRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE companies SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompareAndSetLicense grava plano, status e vencimento apenas se expires_at
// ainda for o valor lido antes. Devolve false (sem erro) quando outro operador
// renovou no meio; o chamador relê e tenta de novo.
func (r *CompanyRepo) CompareAndSetLicense(ctx context.Context, id string, prevExpiresAt time.Time, plan, status string, newExpiresAt time.Time) (bool, error) {
	query := `
		UPDATE companies SET plan = $3, status = $4, expires_at = $5, updated_at = now()
		WHERE id = $1 AND expires_at = $2`
	cmd, err := r.q.Exec(ctx, query, id, prevExpiresAt, plan, status, newExpiresAt)
	if err != nil {
		return false, fmt.Errorf("renew company license: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address,
		&c.WarrantyTerms, &c.MonthlyGoal, &c.Plan, &c.Status,
		&c.CreatedAt, &c.ExpiresAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
