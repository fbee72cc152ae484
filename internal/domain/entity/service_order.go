package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma ordem de serviço.
const (
	OSPending      = "PENDING"
	OSInProgress   = "IN_PROGRESS"
	OSWaitingParts = "WAITING_PARTS"
	OSCompleted    = "COMPLETED"
	OSCanceled     = "CANCELED"
)

// OSItem item (peça) de uma ordem de serviço. Total = Quantity * UnitPrice.
type OSItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// ServiceOrder ordem de serviço de uma oficina.
// TotalValue = LaborValue + soma dos itens; o invariante é mantido por quem
// grava a OS, não verificado pelo servidor.
type ServiceOrder struct {
	ID           string
	CompanyID    string
	CustomerID   string
	CustomerName string
	Vehicle      string
	Description  string
	Status       string // ver constantes OS*
	MechanicID   string // opcional; atribui a receita ao membro da equipe
	MechanicName string
	LaborValue   decimal.Decimal // mão de obra
	Items        []OSItem
	TotalValue   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
