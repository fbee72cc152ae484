package license_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
)

var agora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func oficina(status string, expiresAt time.Time) *entity.Company {
	return &entity.Company{
		ID:        "c1",
		Name:      "Oficina Teste",
		Plan:      entity.PlanMonthly,
		Status:    status,
		ExpiresAt: expiresAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DaysRemaining — aritmética de dias com teto (ceil sobre milissegundos)
// ──────────────────────────────────────────────────────────────────────────────

func TestDaysRemaining_VencimentoExatamenteAgora_DaZero(t *testing.T) {
	assert.Equal(t, 0, license.DaysRemaining(agora, agora),
		"licença que vence exatamente agora tem 0 dias (expirada)")
}

func TestDaysRemaining_UmMilissegundoNoFuturo_DaUm(t *testing.T) {
	assert.Equal(t, 1, license.DaysRemaining(agora.Add(time.Millisecond), agora),
		"qualquer fração de dia futura conta como 1 dia (ceil)")
}

func TestDaysRemaining_ExatamenteUmDia_DaUm(t *testing.T) {
	assert.Equal(t, 1, license.DaysRemaining(agora.Add(24*time.Hour), agora))
}

func TestDaysRemaining_UmDiaEMeio_DaDois(t *testing.T) {
	assert.Equal(t, 2, license.DaysRemaining(agora.Add(36*time.Hour), agora))
}

func TestDaysRemaining_NoPassado_DaNegativo(t *testing.T) {
	assert.Equal(t, -1, license.DaysRemaining(agora.Add(-25*time.Hour), agora))
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate — derivação do estado de acesso
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_AtivaComPrazoLongo(t *testing.T) {
	e := license.Evaluate(oficina(entity.CompanyActive, agora.Add(30*24*time.Hour)), agora)

	assert.Equal(t, 30, e.DaysRemaining)
	assert.False(t, e.Expired)
	assert.False(t, e.ExpiringSoon)
	assert.False(t, e.Blocked)
	assert.False(t, e.AccessDenied)
}

func TestEvaluate_JanelaDeAviso_TresDiasOuMenos(t *testing.T) {
	// 3 dias: dentro da janela de aviso do tenant.
	e := license.Evaluate(oficina(entity.CompanyActive, agora.Add(3*24*time.Hour)), agora)
	assert.True(t, e.ExpiringSoon, "3 dias restantes deve estar na janela de aviso")
	assert.False(t, e.Expired)

	// 4 dias: fora da janela.
	e = license.Evaluate(oficina(entity.CompanyActive, agora.Add(4*24*time.Hour)), agora)
	assert.False(t, e.ExpiringSoon, "4 dias restantes fica fora da janela de aviso")
}

func TestEvaluate_Vencida_NegaAcessoMasNaoAvisa(t *testing.T) {
	e := license.Evaluate(oficina(entity.CompanyActive, agora), agora)

	assert.True(t, e.Expired)
	assert.False(t, e.ExpiringSoon, "vencida não é 'vencendo em breve'")
	assert.True(t, e.AccessDenied)
	assert.False(t, e.Blocked)
}

func TestEvaluate_Bloqueada_NegaAcessoMesmoComPrazo(t *testing.T) {
	e := license.Evaluate(oficina(entity.CompanyBlocked, agora.Add(30*24*time.Hour)), agora)

	assert.True(t, e.Blocked)
	assert.False(t, e.Expired, "bloqueio não altera a derivação de vencimento")
	assert.True(t, e.AccessDenied, "bloqueio nega acesso mesmo com licença vigente")
}

func TestEvaluate_StatusExpiredGravado_NaoMudaADerivacao(t *testing.T) {
	// O status EXPIRED armazenado é consultivo: o que manda é o vencimento.
	e := license.Evaluate(oficina(entity.CompanyExpired, agora.Add(10*24*time.Hour)), agora)

	assert.False(t, e.Expired, "com vencimento futuro a licença não está vencida, qualquer que seja o status gravado")
	assert.False(t, e.Blocked)
	assert.False(t, e.AccessDenied)
}

// ──────────────────────────────────────────────────────────────────────────────
// AtRisk — janela de risco da carteira (console master)
// ──────────────────────────────────────────────────────────────────────────────

func TestAtRisk_AtivaVencendoEmSeteDias(t *testing.T) {
	assert.True(t, license.AtRisk(oficina(entity.CompanyActive, agora.Add(7*24*time.Hour)), agora))
	assert.False(t, license.AtRisk(oficina(entity.CompanyActive, agora.Add(8*24*time.Hour)), agora))
}

func TestAtRisk_BloqueadaNaoContaComoRisco(t *testing.T) {
	assert.False(t, license.AtRisk(oficina(entity.CompanyBlocked, agora.Add(2*24*time.Hour)), agora),
		"só licenças ACTIVE entram na contagem de risco da carteira")
}
