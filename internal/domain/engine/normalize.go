package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/ventapro/comisiona-api/internal/domain/entity"
)

// NormalizeLine convierte una línea cruda en un LineFact canónico.
//
// Resolución de montos:
//   - neto  = net_amount si existe; si no, amount; si tampoco existe, la
//     línea no es usable y se descarta (ok=false, sin error: es un defecto de
//     datos recuperable, no una falla).
//   - bruto = gross_amount si es > 0; si no, amount; si no, el propio neto.
//     Las filas legacy no registraron bruto: se asume lo facturado y no se
//     infiere obsequio. Un bruto menor que el neto se eleva al neto por la
//     misma razón.
//
// Inferencia de unidades (solo cuando los campos explícitos faltan o son 0):
//   - vendidas    = neto / precio_unitario, si hay precio unitario.
//   - obsequiadas = (bruto − neto) / precio_unitario, si hay precio unitario.
//
// Las unidades inferidas pueden ser fraccionales y no se redondean aquí; el
// redondeo es responsabilidad de la capa de presentación.
//
// Devuelve error solo ante violación de contrato (montos negativos o
// porcentaje fuera de rango); esa es la única clase que falla ruidosamente.
func NormalizeLine(line entity.InvoiceLine, ctx LineContext) (LineFact, bool, error) {
	if err := line.Validate(); err != nil {
		return LineFact{}, false, err
	}

	net, ok := resolveNet(line)
	if !ok {
		return LineFact{}, false, nil
	}
	gross := resolveGross(line, net)
	giftValue := gross.Sub(net) // ≥ 0 por construcción

	unitPrice := decimal.Zero
	if line.UnitPrice.Valid {
		unitPrice = line.UnitPrice.Decimal
	}

	sold := decimal.Zero
	switch {
	case line.QuantitySold.Valid && line.QuantitySold.Decimal.IsPositive():
		sold = line.QuantitySold.Decimal
	case unitPrice.IsPositive():
		sold = net.Div(unitPrice)
	}

	gifted := decimal.Zero
	switch {
	case line.QuantityFree.Valid && line.QuantityFree.Decimal.IsPositive():
		gifted = line.QuantityFree.Decimal
	case unitPrice.IsPositive():
		gifted = giftValue.Div(unitPrice)
	}

	return LineFact{
		ProductName:           canonicalName(line.ProductName),
		SoldUnits:             sold,
		GiftedUnits:           gifted,
		GrossAmount:           gross,
		NetAmount:             net,
		CommissionPaid:        line.Commission,
		CommissionRatePercent: line.Percentage,
		InvoiceID:             ctx.InvoiceID,
		InvoiceDate:           ctx.InvoiceDate,
		ClientID:              ctx.ClientID,
		SellerID:              ctx.SellerID,
	}, true, nil
}

// FactsFromInvoices normaliza en lote todas las líneas de una colección de
// facturas. Las líneas sin monto resoluble se excluyen en silencio; la
// primera violación de contrato aborta el lote con un error descriptivo.
// Acepta la misma forma de datos venga de una factura individual o del
// importador masivo.
func FactsFromInvoices(invoices []entity.Invoice) ([]LineFact, error) {
	facts := make([]LineFact, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		ctx := LineContext{
			InvoiceID:   inv.ID,
			InvoiceDate: inv.Date,
			ClientID:    inv.ClientID,
			SellerID:    inv.SellerID,
		}
		for _, line := range inv.Lines {
			fact, ok, err := NormalizeLine(line, ctx)
			if err != nil {
				return nil, fmt.Errorf("factura %s: %w", inv.Number, err)
			}
			if !ok {
				continue
			}
			facts = append(facts, fact)
		}
	}
	return facts, nil
}

func resolveNet(line entity.InvoiceLine) (decimal.Decimal, bool) {
	if line.NetAmount.Valid {
		return line.NetAmount.Decimal, true
	}
	if line.Amount.Valid {
		return line.Amount.Decimal, true
	}
	return decimal.Zero, false
}

func resolveGross(line entity.InvoiceLine, net decimal.Decimal) decimal.Decimal {
	gross := net
	switch {
	case line.GrossAmount.Valid && line.GrossAmount.Decimal.IsPositive():
		gross = line.GrossAmount.Decimal
	case line.Amount.Valid:
		gross = line.Amount.Decimal
	}
	if gross.LessThan(net) {
		// Datos inconsistentes o legacy sin señal de bruto: no inferir obsequio.
		gross = net
	}
	return gross
}

// canonicalName lleva el nombre de producto a Unicode NFC y sin espacios
// sobrantes, para que fuentes heterogéneas (importes, digitación manual)
// agrupen bajo la misma clave.
func canonicalName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
