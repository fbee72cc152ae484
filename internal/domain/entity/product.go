package entity

import "github.com/shopspring/decimal"

// Product peça/produto do estoque de uma oficina.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	Quantity  int
}
