package license

import (
	"math"
	"time"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

const msPerDay = 24 * 60 * 60 * 1000

// Limiares de alerta de vencimento. O painel do tenant avisa com 3 dias; o
// console master conta como "em risco" quem vence em até 7. São consumidores
// distintos, por isso duas constantes.
const (
	TenantWarningDays  = 3
	PortfolioRiskDays  = 7
)

// Entitlement é o estado de acesso de um tenant derivado de (Company, agora).
// Expired reflete a expiração real mesmo quando o status armazenado segue
// ACTIVE: nenhum job de fundo reescreve o status ao vencer a licença.
type Entitlement struct {
	DaysRemaining int
	Expired       bool
	ExpiringSoon  bool
	Blocked       bool
	AccessDenied  bool
}

// DaysRemaining devolve os dias restantes de licença: ceil((expiresAt-now)/86400000).
// Uma licença que vence exatamente agora tem 0 dias restantes (expirada).
func DaysRemaining(expiresAt, now time.Time) int {
	diff := expiresAt.UnixMilli() - now.UnixMilli()
	return int(math.Ceil(float64(diff) / msPerDay))
}

// Evaluate calcula o Entitlement da empresa no instante dado. Função pura.
func Evaluate(c *entity.Company, now time.Time) Entitlement {
	days := DaysRemaining(c.ExpiresAt, now)
	e := Entitlement{
		DaysRemaining: days,
		Expired:       days <= 0,
		ExpiringSoon:  days > 0 && days <= TenantWarningDays,
		Blocked:       c.Status == entity.CompanyBlocked,
	}
	e.AccessDenied = e.Blocked || e.Expired
	return e
}

// AtRisk informa se uma empresa ativa entra na contagem "próximas expirações"
// do console master (vence em até PortfolioRiskDays; inclui já vencidas).
func AtRisk(c *entity.Company, now time.Time) bool {
	return c.Status == entity.CompanyActive && DaysRemaining(c.ExpiresAt, now) <= PortfolioRiskDays
}
