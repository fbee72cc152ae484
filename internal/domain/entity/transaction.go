package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	TxIncome  = "INCOME"
	TxExpense = "EXPENSE"
)

// Transaction lançamento manual do livro-caixa da oficina.
// Independente da receita de OS; os dois são somados no fluxo de caixa total.
type Transaction struct {
	ID          string
	CompanyID   string
	Description string
	Amount      decimal.Decimal
	Type        string // INCOME ou EXPENSE
	Category    string
	Date        time.Time
}
