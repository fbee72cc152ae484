package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

// ServiceOrderRepo implementação do porto ServiceOrderRepository sobre PostgreSQL.
// Os itens (peças) vão na coluna JSONB items.
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository constrói o adaptador de persistência para OS.
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

const osColumns = `id, company_id, customer_id, customer_name, vehicle, description, status, mechanic_id, mechanic_name, labor_value, items, total_value, created_at, updated_at`

// Create persiste uma nova OS.
func (r *ServiceOrderRepo) Create(ctx context.Context, os *entity.ServiceOrder) error {
	items, err := json.Marshal(os.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO service_orders (` + osColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(ctx, query,
		os.ID, os.CompanyID, os.CustomerID, os.CustomerName, os.Vehicle,
		os.Description, os.Status, nullable(os.MechanicID), os.MechanicName,
		os.LaborValue, items, os.TotalValue, os.CreatedAt, os.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// GetByID obtém uma OS por ID. Devolve (nil, nil) se não existir.
func (r *ServiceOrderRepo) GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + osColumns + ` FROM service_orders WHERE id = $1`
	var os entity.ServiceOrder
	var mechanicID *string
	var items []byte
	err := r.q.QueryRow(ctx, query, id).Scan(
		&os.ID, &os.CompanyID, &os.CustomerID, &os.CustomerName, &os.Vehicle,
		&os.Description, &os.Status, &mechanicID, &os.MechanicName,
		&os.LaborValue, &items, &os.TotalValue, &os.CreatedAt, &os.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service order: %w", err)
	}
	if mechanicID != nil {
		os.MechanicID = *mechanicID
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &os.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &os, nil
}

// Update atualiza uma OS existente.
func (r *ServiceOrderRepo) Update(ctx context.Context, os *entity.ServiceOrder) error {
	items, err := json.Marshal(os.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE service_orders
		SET customer_name = $2, vehicle = $3, description = $4, status = $5,
		    mechanic_id = $6, mechanic_name = $7, labor_value = $8, items = $9,
		    total_value = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		os.ID, os.CustomerName, os.Vehicle, os.Description, os.Status,
		nullable(os.MechanicID), os.MechanicName, os.LaborValue, items,
		os.TotalValue, os.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany devolve as OS da oficina, mais recentes primeiro.
func (r *ServiceOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ServiceOrder, error) {
	query := `SELECT ` + osColumns + ` FROM service_orders WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceOrder
	for rows.Next() {
		var os entity.ServiceOrder
		var mechanicID *string
		var items []byte
		if err := rows.Scan(
			&os.ID, &os.CompanyID, &os.CustomerID, &os.CustomerName, &os.Vehicle,
			&os.Description, &os.Status, &mechanicID, &os.MechanicName,
			&os.LaborValue, &items, &os.TotalValue, &os.CreatedAt, &os.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		if mechanicID != nil {
			os.MechanicID = *mechanicID
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &os.Items); err != nil {
				return nil, fmt.Errorf("unmarshal items: %w", err)
			}
		}
		list = append(list, &os)
	}
	return list, rows.Err()
}

// nullable converte string vazia em NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
