package license_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
)

func TestPageAllowed_LicencaVigente_TudoLiberado(t *testing.T) {
	e := license.Evaluate(oficina(entity.CompanyActive, agora.Add(10*24*time.Hour)), agora)

	for _, page := range []string{
		license.PageDashboard, license.PageSettings, license.PageCustomers,
		license.PageOS, license.PageFinancial, license.PageReports,
		license.PageInventory, license.PageTeam, license.PageAgenda, license.PageSupport,
	} {
		assert.True(t, license.PageAllowed(e, page), "página %s deve estar liberada com licença vigente", page)
	}
}

func TestPageAllowed_Vencida_SoPaginasIsentas(t *testing.T) {
	e := license.Evaluate(oficina(entity.CompanyActive, agora.Add(-time.Hour)), agora)

	assert.True(t, license.PageAllowed(e, license.PageDashboard), "dashboard segue acessível vencida")
	assert.True(t, license.PageAllowed(e, license.PageSettings), "settings segue acessível vencida")

	for _, page := range []string{
		license.PageCustomers, license.PageOS, license.PageFinancial,
		license.PageReports, license.PageInventory, license.PageTeam,
		license.PageAgenda, license.PageSupport,
	} {
		assert.False(t, license.PageAllowed(e, page), "página %s deve estar negada com licença vencida", page)
	}
}

func TestPageAllowed_Bloqueada_NadaLiberado(t *testing.T) {
	// O bloqueio manual é mais forte que a isenção: nem dashboard passa.
	e := license.Evaluate(oficina(entity.CompanyBlocked, agora.Add(10*24*time.Hour)), agora)

	assert.False(t, license.PageAllowed(e, license.PageDashboard))
	assert.False(t, license.PageAllowed(e, license.PageSettings))
	assert.False(t, license.PageAllowed(e, license.PageReports))
}

func TestValidPlan_CatalogoComercial(t *testing.T) {
	for _, plan := range []string{entity.PlanDemo, entity.PlanMonthly, entity.PlanSemiannual, entity.PlanAnnual} {
		assert.True(t, license.ValidPlan(plan))
	}
	assert.False(t, license.ValidPlan("LIFETIME"))
	assert.False(t, license.ValidPlan(""))
}

func TestMRR_PorPlano(t *testing.T) {
	assert.True(t, license.MRR(entity.PlanDemo).IsZero(), "DEMO não gera receita")
	assert.True(t, license.MRR(entity.PlanMonthly).Equal(decimal.NewFromFloat(99.90)))
	assert.True(t, license.MRR(entity.PlanSemiannual).Equal(decimal.NewFromFloat(89.90)))
	assert.True(t, license.MRR(entity.PlanAnnual).Equal(decimal.NewFromFloat(79.90)))
	assert.True(t, license.MRR("LIFETIME").IsZero(), "plano desconhecido vale zero")
}
