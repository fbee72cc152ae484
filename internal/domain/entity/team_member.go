package entity

import "github.com/shopspring/decimal"

// TeamMember membro da equipe de uma oficina.
// CommissionRate é um percentual (0–100) aplicado somente sobre a mão de obra
// das OS COMPLETED atribuídas ao membro, nunca sobre peças.
type TeamMember struct {
	ID             string
	CompanyID      string
	Name           string
	Role           string // função livre: mecânico, eletricista, etc.
	CommissionRate decimal.Decimal
	Active         bool
}
