package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveCustomerRequest entrada de criação/edição de cliente.
type SaveCustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	VehicleModel string `json:"vehicle_model"`
	VehiclePlate string `json:"vehicle_plate"`
}

// CustomerResponse saída de cliente.
type CustomerResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	VehicleModel string    `json:"vehicle_model"`
	VehiclePlate string    `json:"vehicle_plate"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveProductRequest entrada de criação/edição de produto.
type SaveProductRequest struct {
	Name      string          `json:"name" validate:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Quantity  int             `json:"quantity"`
}

// ProductResponse saída de produto.
type ProductResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Quantity  int             `json:"quantity"`
}

// SaveTeamMemberRequest entrada de criação de membro da equipe.
type SaveTeamMemberRequest struct {
	Name           string          `json:"name" validate:"required"`
	Role           string          `json:"role"`
	CommissionRate decimal.Decimal `json:"commission_rate" validate:"min=0,max=100"`
	Active         bool            `json:"active"`
}

// TeamMemberResponse saída de membro da equipe.
type TeamMemberResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Active         bool            `json:"active"`
}

// CreateTransactionRequest entrada de lançamento financeiro.
type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// TransactionResponse saída de lançamento financeiro.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// SaveAppointmentRequest entrada de criação/edição de agendamento.
type SaveAppointmentRequest struct {
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Vehicle      string    `json:"vehicle"`
	Date         time.Time `json:"date" validate:"required"`
	Description  string    `json:"description"`
	Status       string    `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED COMPLETED CANCELED"`
}

// AppointmentResponse saída de agendamento.
type AppointmentResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Vehicle      string    `json:"vehicle"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
}
