// Package license contém o motor de licenciamento dos tenants: catálogo de
// planos, cálculo de vigência e a decisão de acesso por página. Todo o pacote
// é puro: o instante "agora" é sempre recebido por parâmetro, nunca lido de um
// relógio global, para que o resultado seja determinístico em teste.
package license

import (
	"github.com/shopspring/decimal"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// TrialDays duração padrão do período de avaliação (plano DEMO).
const TrialDays = 7

// planMRR receita mensal recorrente por plano, em reais. Planos mais longos
// têm mensalidade efetiva menor.
var planMRR = map[string]decimal.Decimal{
	entity.PlanDemo:       decimal.Zero,
	entity.PlanMonthly:    decimal.NewFromFloat(99.90),
	entity.PlanSemiannual: decimal.NewFromFloat(89.90),
	entity.PlanAnnual:     decimal.NewFromFloat(79.90),
}

// ValidPlan informa se o identificador corresponde a um plano comercializado.
func ValidPlan(plan string) bool {
	_, ok := planMRR[plan]
	return ok
}

// MRR devolve a receita mensal recorrente do plano. Plano desconhecido vale zero.
func MRR(plan string) decimal.Decimal {
	if v, ok := planMRR[plan]; ok {
		return v
	}
	return decimal.Zero
}
