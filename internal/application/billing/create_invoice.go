package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// CreateInvoiceUseCase registra una factura con sus líneas. Los totales de
// cabecera (neto, bruto, comisión) no se reciben del cliente: se calculan
// normalizando las líneas con las mismas reglas del motor de reportes, de modo
// que cabecera y reportes nunca discrepen.
type CreateInvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	tx          TxRunner
	log         *logger.Logger
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(invoiceRepo repository.InvoiceRepository, tx TxRunner, log *logger.Logger) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoiceRepo: invoiceRepo, tx: tx, log: log}
}

// Execute valida, calcula totales y persiste cabecera + líneas en una
// transacción. Devuelve errores que envuelven domain.ErrInvalidInput ante
// datos malformados.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := buildInvoice(companyID, in)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		for n := range invoice.Lines {
			if err := uc.invoiceRepo.CreateLine(ctx, &invoice.Lines[n]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("number", invoice.Number).
		Int("lines", len(invoice.Lines)).
		Msg("factura creada")

	return toInvoiceResponse(invoice), nil
}

// buildInvoice arma la entidad desde el DTO: parsea la fecha, asigna IDs y
// calcula los totales de cabecera desde las líneas normalizadas.
func buildInvoice(companyID string, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, in.Date)
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		SellerID:  in.SellerID,
		Number:    in.Number,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	invoice.Lines = make([]entity.InvoiceLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
			ID:           uuid.New().String(),
			InvoiceID:    invoice.ID,
			ProductName:  l.ProductName,
			QuantitySold: toNull(l.QuantitySold),
			QuantityFree: toNull(l.QuantityFree),
			UnitPrice:    toNull(l.UnitPrice),
			GrossAmount:  toNull(l.GrossAmount),
			NetAmount:    toNull(l.NetAmount),
			Amount:       toNull(l.Amount),
			Commission:   l.Commission,
			Percentage:   l.Percentage,
		})
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	// Totales de cabecera con las mismas reglas de resolución del motor.
	ctx := engine.LineContext{
		InvoiceID:   invoice.ID,
		InvoiceDate: invoice.Date,
		ClientID:    invoice.ClientID,
		SellerID:    invoice.SellerID,
	}
	for _, line := range invoice.Lines {
		fact, ok, err := engine.NormalizeLine(line, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // línea sin monto resoluble: no suma a totales
		}
		invoice.NetTotal = invoice.NetTotal.Add(fact.NetAmount)
		invoice.GrossTotal = invoice.GrossTotal.Add(fact.GrossAmount)
		invoice.CommissionTotal = invoice.CommissionTotal.Add(fact.CommissionPaid)
	}

	return invoice, nil
}

func toNull(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		ClientID:        inv.ClientID,
		SellerID:        inv.SellerID,
		Number:          inv.Number,
		Date:            inv.Date.Format("2006-01-02"),
		NetTotal:        inv.NetTotal.Round(2),
		GrossTotal:      inv.GrossTotal.Round(2),
		CommissionTotal: inv.CommissionTotal.Round(2),
		LineCount:       len(inv.Lines),
	}
}
