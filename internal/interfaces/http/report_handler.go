package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/application/reports"
	"github.com/ventapro/comisiona-api/internal/domain"
)

// ReportHandler maneja los reportes por producto, vendedor y cliente.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func parseReportQuery(c *fiber.Ctx) (dto.ReportRequest, error) {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return req, err
	}
	return req, nil
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidDateRange) || errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Products godoc
// @Summary      Reporte por producto
// @Description  Vendido, obsequiado, ingreso, comisión y clasificación por producto en el período.
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (default: inicio del mes en curso)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default: fin del mes en curso)"
// @Param        top_n       query  int     false  "máx filas (default 20, max 200)"
// @Success      200  {object}  dto.ProductReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ProductReport(c.Context(), GetCompanyID(c), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Sellers godoc
// @Summary      Reporte por vendedor
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        top_n       query  int     false  "máx filas"
// @Success      200  {object}  dto.SellerReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sellers [get]
func (h *ReportHandler) Sellers(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.SellerReport(c.Context(), GetCompanyID(c), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Reporte por cliente
// @Description  Actividad del período contra el período anterior de igual duración, con clasificación growing/stable/declining/inactive.
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        top_n       query  int     false  "máx filas"
// @Success      200  {object}  dto.ClientReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/clients [get]
func (h *ReportHandler) Clients(c *fiber.Ctx) error {
	req, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ClientReport(c.Context(), GetCompanyID(c), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}
