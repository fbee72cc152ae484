package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
)

// companySource contrato mínimo do middleware de licença; evita import
// circular com a camada de infraestrutura. O *postgres.CompanyRepo o satisfaz.
type companySource interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}

// RequirePage devolve um middleware que aplica o gate de licença à página
// dada. Deve ser usado DEPOIS de AuthMiddleware. O estado é derivado a cada
// requisição: renovar ou bloquear surte efeito no request seguinte, sem
// relogin.
//
// Comportamento:
//   - MASTER passa sempre (o console não é um tenant).
//   - BLOCKED → 403 em toda página, inclusive as isentas.
//   - Expirada → 403, exceto nas páginas isentas (dashboard, settings).
//   - 503 quando a consulta à DB falha; não derruba o tenant por erro de infra.
func RequirePage(page string, source companySource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleMaster {
			return c.Next()
		}
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id não encontrado no token",
			})
		}

		company, err := source.GetByID(c.Context(), companyID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "LICENSE_CHECK_FAILED",
				Message: "não foi possível verificar a licença, tente mais tarde",
			})
		}
		if company == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "COMPANY_NOT_FOUND",
				Message: "oficina não encontrada",
			})
		}

		e := license.Evaluate(company, time.Now())
		if !license.PageAllowed(e, page) {
			code := "LICENSE_EXPIRED"
			msg := "licença vencida; renove para voltar a usar este módulo"
			if e.Blocked {
				code = "ACCOUNT_BLOCKED"
				msg = "conta bloqueada pelo operador da plataforma"
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		return c.Next()
	}
}
