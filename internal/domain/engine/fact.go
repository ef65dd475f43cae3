package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineFact es una línea de factura ya normalizada: el modelo canónico
// vendido/obsequiado/ingreso sobre el que operan el agregador, el conciliador
// y el clasificador. Es inmutable después de construida.
//
// Invariante: NetAmount ≤ GrossAmount; GrossAmount − NetAmount es el valor
// monetario de los obsequios de la línea.
type LineFact struct {
	ProductName string

	SoldUnits   decimal.Decimal // unidades cobradas; puede ser fraccional si fue inferida
	GiftedUnits decimal.Decimal // unidades de obsequio; puede ser fraccional si fue inferida

	GrossAmount decimal.Decimal // valor antes de descontar obsequios
	NetAmount   decimal.Decimal // valor efectivamente facturado

	CommissionPaid        decimal.Decimal // comisión registrada al vendedor
	CommissionRatePercent decimal.Decimal // porcentaje aplicado [0,100]

	InvoiceID   string
	InvoiceDate time.Time
	ClientID    string // vacío = sin cliente asignado
	SellerID    string // vacío = sin vendedor asignado
}

// GiftValue devuelve el valor monetario obsequiado de la línea.
func (f LineFact) GiftValue() decimal.Decimal {
	return f.GrossAmount.Sub(f.NetAmount)
}

// CommissionCorrect recalcula la comisión que debió pagarse:
// ingreso neto × porcentaje / 100. Siempre por línea, nunca desde el
// porcentaje promedio de un grupo (los porcentajes varían por producto).
func (f LineFact) CommissionCorrect() decimal.Decimal {
	return f.NetAmount.Mul(f.CommissionRatePercent).Div(hundred)
}

// LineContext es el contexto de cabecera que acompaña a cada línea cruda al
// normalizarla: de qué factura viene, de qué fecha, y a qué cliente y
// vendedor pertenece.
type LineContext struct {
	InvoiceID   string
	InvoiceDate time.Time
	ClientID    string
	SellerID    string
}

var hundred = decimal.NewFromInt(100)
