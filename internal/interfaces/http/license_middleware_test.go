package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
	apphttp "github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/interfaces/http"
	pkgjwt "github.com/tmaplicativosweb-ops/oficina-pro-saas/pkg/jwt"
)

// fakeCompanySource devolve sempre a mesma oficina (ou o mesmo erro).
type fakeCompanySource struct {
	company *entity.Company
	err     error
}

func (f *fakeCompanySource) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return f.company, f.err
}

func oficinaComLicenca(status string, expiresAt time.Time) *entity.Company {
	return &entity.Company{
		ID:        testCompanyID,
		Name:      "Auto Center Silva",
		Plan:      entity.PlanMonthly,
		Status:    status,
		ExpiresAt: expiresAt,
	}
}

// buildGatedApp monta uma rota protegida pelo gate da página indicada.
func buildGatedApp(page string, source *fakeCompanySource) *fiber.App {
	app := fiber.New()
	app.Get("/gated",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePage(page, source),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doGatedRequest(t *testing.T, app *fiber.App, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePage
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: licença vigente → toda página liberada.
func TestRequirePage_LicencaVigente_Libera(t *testing.T) {
	source := &fakeCompanySource{company: oficinaComLicenca(entity.CompanyActive, time.Now().Add(30*24*time.Hour))}
	app := buildGatedApp(license.PageReports, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: licença vencida → 403 nas páginas normais.
func TestRequirePage_LicencaVencida_NegaPaginaNormal(t *testing.T) {
	source := &fakeCompanySource{company: oficinaComLicenca(entity.CompanyActive, time.Now().Add(-24*time.Hour))}
	app := buildGatedApp(license.PageReports, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "LICENSE_EXPIRED")
}

// Caso 2b: licença vencida → dashboard e settings continuam acessíveis para
// o tenant ver o próprio estado e renovar.
func TestRequirePage_LicencaVencida_PaginasIsentasLiberadas(t *testing.T) {
	vencida := oficinaComLicenca(entity.CompanyActive, time.Now().Add(-24*time.Hour))

	for _, page := range []string{license.PageDashboard, license.PageSettings} {
		source := &fakeCompanySource{company: vencida}
		app := buildGatedApp(page, source)

		resp := doGatedRequest(t, app, entity.RoleAdmin)
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"página %s deve seguir acessível com licença vencida", page)
		resp.Body.Close()
	}
}

// Caso 3: bloqueio do operador nega tudo, inclusive as páginas isentas.
func TestRequirePage_Bloqueada_NegaAteIsentas(t *testing.T) {
	bloqueada := oficinaComLicenca(entity.CompanyBlocked, time.Now().Add(30*24*time.Hour))
	source := &fakeCompanySource{company: bloqueada}
	app := buildGatedApp(license.PageDashboard, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCOUNT_BLOCKED",
		"bloqueio manual deve ser distinguível de expiração")
}

// Caso 4: MASTER passa pelo gate sem consulta de licença.
func TestRequirePage_MasterIgnoraOGate(t *testing.T) {
	// Source que falharia se fosse consultado: MASTER nem chega nele.
	source := &fakeCompanySource{err: errors.New("não deveria consultar")}
	app := fiber.New()
	app.Get("/gated",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePage(license.PageReports, source),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	tok, err := tokenMaster(t)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 5: falha na consulta da licença → 503, não 403. Erro de infra não pode
// parecer punição comercial para o tenant.
func TestRequirePage_ErroDeConsulta_Retorna503(t *testing.T) {
	source := &fakeCompanySource{err: errors.New("conexão recusada")}
	app := buildGatedApp(license.PageReports, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "LICENSE_CHECK_FAILED")
}

// Caso 6: oficina inexistente → 403 COMPANY_NOT_FOUND.
func TestRequirePage_OficinaInexistente_Retorna403(t *testing.T) {
	source := &fakeCompanySource{company: nil}
	app := buildGatedApp(license.PageReports, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "COMPANY_NOT_FOUND")
}

// Caso 7: status EXPIRED gravado não vale nada se o vencimento está no futuro:
// o estado efetivo é sempre derivado de ExpiresAt.
func TestRequirePage_StatusGravadoExpirado_VencimentoFuturo_Libera(t *testing.T) {
	source := &fakeCompanySource{company: oficinaComLicenca(entity.CompanyExpired, time.Now().Add(30*24*time.Hour))}
	app := buildGatedApp(license.PageFinancial, source)

	resp := doGatedRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"a expiração efetiva deriva de ExpiresAt, não do status gravado")
}

// tokenMaster gera um token MASTER sem company_id, como o console emite.
func tokenMaster(t *testing.T) (string, error) {
	t.Helper()
	return pkgjwt.Generate(testJWTSecret, testMasterID, "", entity.RoleMaster, testIssuer, testExpMin)
}
