package license

// Identificadores de página usados pelo gate de acesso.
const (
	PageDashboard    = "dashboard"
	PageSettings     = "settings"
	PageCustomers    = "customers"
	PageOS           = "os"
	PageFinancial    = "financial"
	PageReports      = "reports"
	PageInventory    = "inventory"
	PageTeam         = "team"
	PageAgenda       = "agenda"
	PageSupport      = "support"
)

// Páginas alcançáveis mesmo com a licença vencida: o tenant precisa ver o
// próprio estado e ter um caminho para renovar ou falar com o suporte.
var exemptPages = map[string]struct{}{
	PageDashboard: {},
	PageSettings:  {},
}

// PageAllowed decide ALLOW/DENY para a página dada o Entitlement atual.
// Bloqueio manual do operador nega tudo; expiração nega exceto páginas isentas.
func PageAllowed(e Entitlement, page string) bool {
	if e.Blocked {
		return false
	}
	if !e.Expired {
		return true
	}
	_, exempt := exemptPages[page]
	return exempt
}
