package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/application/reports"
)

// ReconciliationHandler maneja el cierre de comisiones (JSON y PDF).
type ReconciliationHandler struct {
	uc    *reports.ReconciliationUseCase
	pdfUC *reports.ReconciliationPDFUseCase
}

// NewReconciliationHandler construye el handler de conciliación.
func NewReconciliationHandler(uc *reports.ReconciliationUseCase, pdfUC *reports.ReconciliationPDFUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{uc: uc, pdfUC: pdfUC}
}

// Get godoc
// @Summary      Conciliación de comisiones
// @Description  Total pagado contra total recalculado en el período, con desglose por vendedor y bandera de revisión.
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ReconciliationDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/reconciliation [get]
func (h *ReconciliationHandler) Get(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Execute(c.Context(), GetCompanyID(c), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Conciliación de comisiones en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/reconciliation/pdf [get]
func (h *ReconciliationHandler) PDF(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pdf, err := h.pdfUC.Execute(c.Context(), GetCompanyID(c), req)
	if err != nil {
		return reportError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="cierre-comisiones.pdf"`)
	return c.Send(pdf)
}
