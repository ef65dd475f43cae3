package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/domain"
)

// Invoice representa la cabecera de una factura de venta.
// ClientID y SellerID pueden estar vacíos en facturas históricas importadas;
// los reportes agrupan esas facturas bajo una clave centinela.
type Invoice struct {
	ID              string
	CompanyID       string
	ClientID        string // vacío = sin cliente asignado
	SellerID        string // vacío = sin vendedor asignado
	Number          string
	Date            time.Time
	NetTotal        decimal.Decimal
	GrossTotal      decimal.Decimal
	CommissionTotal decimal.Decimal
	Lines           []InvoiceLine
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate verifica el contrato mínimo de la factura antes de persistirla o
// de alimentar el motor de reportes: fecha obligatoria, montos no negativos
// y porcentajes dentro de [0,100]. Los errores envuelven domain.ErrInvalidInput
// para que los handlers los traduzcan a 400.
func (i *Invoice) Validate() error {
	if i.CompanyID == "" {
		return fmt.Errorf("%w: company_id obligatorio", domain.ErrInvalidInput)
	}
	if i.Date.IsZero() {
		return fmt.Errorf("%w: fecha de factura obligatoria", domain.ErrInvalidInput)
	}
	if len(i.Lines) == 0 {
		return fmt.Errorf("%w: la factura no tiene líneas", domain.ErrInvalidInput)
	}
	for n := range i.Lines {
		if err := i.Lines[n].Validate(); err != nil {
			return fmt.Errorf("línea %d: %w", n+1, err)
		}
	}
	return nil
}
