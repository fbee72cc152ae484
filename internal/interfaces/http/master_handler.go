package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/licensing"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/reporting"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
)

// MasterHandler console do operador da plataforma: carteira de oficinas,
// ciclo de licença e impersonação de suporte. Todas as rotas exigem MASTER.
type MasterHandler struct {
	licensingUC *licensing.UseCase
	reportingUC *reporting.UseCase
}

// NewMasterHandler constrói o handler do console master.
func NewMasterHandler(licensingUC *licensing.UseCase, reportingUC *reporting.UseCase) *MasterHandler {
	return &MasterHandler{licensingUC: licensingUC, reportingUC: reportingUC}
}

// ListCompanies godoc
// @Summary      Listar oficinas com estado de licença derivado
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CompanyOverviewItem
// @Router       /api/master/companies [get]
func (h *MasterHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.licensingUC.ListCompanies(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Indicadores da carteira (MRR, bloqueios, vencimentos próximos)
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MasterOverviewDTO
// @Router       /api/master/overview [get]
func (h *MasterHandler) Overview(c *fiber.Ctx) error {
	out, err := h.reportingUC.MasterOverview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Block godoc
// @Summary      Bloquear uma oficina
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da oficina"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master/companies/{id}/block [post]
func (h *MasterHandler) Block(c *fiber.Ctx) error {
	if err := h.licensingUC.Block(c.Context(), c.Params("id")); err != nil {
		return h.statusError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unblock godoc
// @Summary      Desbloquear uma oficina
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da oficina"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master/companies/{id}/unblock [post]
func (h *MasterHandler) Unblock(c *fiber.Ctx) error {
	if err := h.licensingUC.Unblock(c.Context(), c.Params("id")); err != nil {
		return h.statusError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Renew godoc
// @Summary      Renovar a licença de uma oficina
// @Tags         master
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID da oficina"
// @Param        body  body  dto.RenewLicenseRequest true  "plano e dias a somar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/master/companies/{id}/renew [post]
func (h *MasterHandler) Renew(c *fiber.Ctx) error {
	var in dto.RenewLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.licensingUC.Renew(c.Context(), c.Params("id"), in.Plan, in.DaysToAdd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plano inválido ou days_to_add não positivo"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "renovação concorrente; tente de novo"})
		}
		return h.statusError(c, err)
	}
	return c.JSON(out)
}

// Impersonate godoc
// @Summary      Entrar como o ADMIN de uma oficina (suporte)
// @Tags         master
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da oficina"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master/companies/{id}/impersonate [post]
func (h *MasterHandler) Impersonate(c *fiber.Ctx) error {
	out, err := h.licensingUC.Impersonate(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ADMIN_NOT_FOUND", Message: "a oficina não tem usuário ADMIN"})
		}
		return h.statusError(c, err)
	}
	return c.JSON(out)
}

func (h *MasterHandler) statusError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oficina não encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
