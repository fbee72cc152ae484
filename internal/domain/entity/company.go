package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planos de licença comercializados.
const (
	PlanDemo       = "DEMO"
	PlanMonthly    = "MONTHLY"
	PlanSemiannual = "SEMIANNUAL"
	PlanAnnual     = "ANNUAL"
)

// Status de licença de uma oficina.
// EXPIRED nunca é gravado automaticamente: a expiração real é sempre derivada
// de ExpiresAt pelo motor de licença. O status armazenado só muda por ação do
// operador (bloqueio/desbloqueio/renovação).
const (
	CompanyActive  = "ACTIVE"
	CompanyBlocked = "BLOCKED"
	CompanyExpired = "EXPIRED"
)

// Company representa uma oficina/tenant do sistema.
type Company struct {
	ID            string
	Name          string
	Document      string // CNPJ/CPF da oficina
	Email         string
	Phone         string
	Address       string
	WarrantyTerms string
	MonthlyGoal   decimal.Decimal // meta de faturamento mensal
	Plan          string          // ver constantes Plan*
	Status        string          // ver constantes Company*
	CreatedAt     time.Time
	ExpiresAt     time.Time // instante único de vencimento da licença
	UpdatedAt     time.Time
}
