package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyResponse saída de uma empresa.
type CompanyResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Document      string          `json:"document"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	WarrantyTerms string          `json:"warranty_terms"`
	MonthlyGoal   decimal.Decimal `json:"monthly_goal"`
	Plan          string          `json:"plan"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateCompanySettingsRequest campos editáveis pelo próprio tenant.
// Plano, status e vencimento nunca passam por aqui; só o operador os altera.
type UpdateCompanySettingsRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	WarrantyTerms *string          `json:"warranty_terms"`
	MonthlyGoal   *decimal.Decimal `json:"monthly_goal"`
}

// RenewLicenseRequest entrada da renovação de licença pelo operador.
type RenewLicenseRequest struct {
	Plan      string `json:"plan" validate:"required,oneof=DEMO MONTHLY SEMIANNUAL ANNUAL"`
	DaysToAdd int    `json:"days_to_add" validate:"required,gt=0"`
}

// CompanyOverviewItem linha da listagem do console master: empresa + dias
// restantes derivados (a coluna "Expiração" da tabela de licenças).
type CompanyOverviewItem struct {
	CompanyResponse
	DaysRemaining int  `json:"days_remaining"`
	Expired       bool `json:"expired"`
}
