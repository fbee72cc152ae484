package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/reporting"
)

// ReportHandler relatórios agregados do tenant.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange lê o período dos query params start/end (RFC3339). Ausentes
// significam sem limite naquele lado.
func parseRange(c *fiber.Ctx) (reporting.Range, error) {
	var rng reporting.Range
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return rng, err
		}
		rng.Start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return rng, err
		}
		rng.End = t
	}
	return rng, nil
}

// FinancialSummary godoc
// @Summary      Resumo financeiro do período
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start  query  string  false  "início (RFC3339, inclusivo)"
// @Param        end    query  string  false  "fim (RFC3339, exclusivo)"
// @Success      200    {object}  dto.FinancialSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) FinancialSummary(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end devem ser RFC3339"})
	}
	out, err := h.uc.FinancialSummary(c.Context(), GetCompanyID(c), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Commissions godoc
// @Summary      Comissões da equipe no período (base: mão de obra)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start  query  string  false  "início (RFC3339, inclusivo)"
// @Param        end    query  string  false  "fim (RFC3339, exclusivo)"
// @Success      200    {array}  dto.CommissionEntryDTO
// @Router       /api/reports/commissions [get]
func (h *ReportHandler) Commissions(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end devem ser RFC3339"})
	}
	out, err := h.uc.CommissionReport(c.Context(), GetCompanyID(c), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ranking godoc
// @Summary      Ranking de produção da equipe no período (base: valor total)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start  query  string  false  "início (RFC3339, inclusivo)"
// @Param        end    query  string  false  "fim (RFC3339, exclusivo)"
// @Success      200    {array}  dto.RankingEntryDTO
// @Router       /api/reports/ranking [get]
func (h *ReportHandler) Ranking(c *fiber.Ctx) error {
	rng, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end devem ser RFC3339"})
	}
	out, err := h.uc.TeamRanking(c.Context(), GetCompanyID(c), rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Painel de indicadores da oficina
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.WorkshopStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.WorkshopStats(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
