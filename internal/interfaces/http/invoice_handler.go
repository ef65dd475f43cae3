package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ventapro/comisiona-api/internal/application/billing"
	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// InvoiceHandler maneja creación, importación y consulta de facturas.
type InvoiceHandler struct {
	createUC    *billing.CreateInvoiceUseCase
	importUC    *billing.ImportInvoicesUseCase
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, importUC *billing.ImportInvoicesUseCase, invoiceRepo repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, importUC: importUC, invoiceRepo: invoiceRepo}
}

// Create godoc
// @Summary      Crear factura
// @Description  Registra una factura con sus líneas. Los totales de cabecera se calculan en el servidor.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "factura con líneas"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Execute(c.Context(), GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una factura con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importar facturas históricas
// @Description  Carga masiva: cada factura del lote se procesa de forma independiente; las malformadas se omiten y reportan.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportInvoicesRequest  true  "lote de facturas"
// @Success      200   {object}  dto.ImportInvoicesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/import [post]
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportInvoicesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Invoices) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote no tiene facturas"})
	}
	out, err := h.importUC.Execute(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.invoiceRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if invoice == nil || invoice.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(dto.InvoiceResponse{
		ID:              invoice.ID,
		ClientID:        invoice.ClientID,
		SellerID:        invoice.SellerID,
		Number:          invoice.Number,
		Date:            invoice.Date.Format("2006-01-02"),
		NetTotal:        invoice.NetTotal.Round(2),
		GrossTotal:      invoice.GrossTotal.Round(2),
		CommissionTotal: invoice.CommissionTotal.Round(2),
		LineCount:       len(invoice.Lines),
	})
}
