package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// CreateServiceOrderRequest entrada da criação de OS.
type CreateServiceOrderRequest struct {
	CustomerID   string          `json:"customer_id" validate:"required"`
	CustomerName string          `json:"customer_name"`
	Vehicle      string          `json:"vehicle"`
	Description  string          `json:"description"`
	Status       string          `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS WAITING_PARTS COMPLETED CANCELED"`
	MechanicID   string          `json:"mechanic_id"`
	MechanicName string          `json:"mechanic_name"`
	LaborValue   decimal.Decimal `json:"labor_value"`
	Items        []entity.OSItem `json:"items"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// UpdateServiceOrderRequest campos alteráveis de uma OS existente.
type UpdateServiceOrderRequest struct {
	Description  *string          `json:"description"`
	Status       *string          `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS WAITING_PARTS COMPLETED CANCELED"`
	MechanicID   *string          `json:"mechanic_id"`
	MechanicName *string          `json:"mechanic_name"`
	LaborValue   *decimal.Decimal `json:"labor_value"`
	Items        []entity.OSItem  `json:"items"`
	TotalValue   *decimal.Decimal `json:"total_value"`
}

// ServiceOrderResponse saída de uma OS.
type ServiceOrderResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Vehicle      string          `json:"vehicle"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	MechanicID   string          `json:"mechanic_id,omitempty"`
	MechanicName string          `json:"mechanic_name,omitempty"`
	LaborValue   decimal.Decimal `json:"labor_value"`
	Items        []entity.OSItem `json:"items"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
