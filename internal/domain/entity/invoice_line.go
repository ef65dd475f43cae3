package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/domain"
)

// InvoiceLine representa una línea de producto tal como fue registrada, sin
// normalizar. El esquema es heterogéneo: las facturas recientes traen campos
// explícitos (cantidades, precio unitario, bruto/neto) y las antiguas solo
// traen Amount + Commission + Percentage. Los campos opcionales usan
// decimal.NullDecimal; Valid=false significa "no registrado".
//
// El motor de reportes lee estas líneas como solo-lectura y las convierte en
// hechos canónicos (engine.LineFact).
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	ProductName string

	// Campos explícitos (facturas recientes).
	QuantitySold decimal.NullDecimal // unidades vendidas (cobradas)
	QuantityFree decimal.NullDecimal // unidades de obsequio (sin cobro)
	UnitPrice    decimal.NullDecimal // precio unitario aplicado
	GrossAmount  decimal.NullDecimal // valor antes de descontar obsequios
	NetAmount    decimal.NullDecimal // valor facturado

	// Campos legacy (facturas antiguas).
	Amount decimal.NullDecimal // único monto registrado (equivale al neto)

	// Comisión registrada al momento de la venta.
	Commission decimal.Decimal // valor pagado al vendedor
	Percentage decimal.Decimal // porcentaje aplicado [0,100]
}

// Validate rechaza montos negativos y porcentajes fuera de [0,100].
// La ausencia de campos NO es un error aquí: una línea sin monto resoluble se
// descarta silenciosamente en la normalización, no en la validación.
func (l *InvoiceLine) Validate() error {
	for _, f := range []struct {
		name string
		val  decimal.NullDecimal
	}{
		{"quantity_sold", l.QuantitySold},
		{"quantity_free", l.QuantityFree},
		{"unit_price", l.UnitPrice},
		{"gross_amount", l.GrossAmount},
		{"net_amount", l.NetAmount},
		{"amount", l.Amount},
	} {
		if f.val.Valid && f.val.Decimal.IsNegative() {
			return fmt.Errorf("%w: %s negativo (%s)", domain.ErrInvalidInput, f.name, f.val.Decimal)
		}
	}
	if l.Commission.IsNegative() {
		return fmt.Errorf("%w: commission negativa (%s)", domain.ErrInvalidInput, l.Commission)
	}
	if l.Percentage.IsNegative() || l.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentage fuera de [0,100] (%s)", domain.ErrInvalidInput, l.Percentage)
	}
	return nil
}
