package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// KeyUnassigned agrupa los hechos cuya factura no tiene cliente o vendedor
// asignado. Se reporta como grupo aparte; nunca se mezcla con una clave real.
const KeyUnassigned = "unassigned"

// Aggregate es el resumen de un grupo de hechos bajo una misma clave
// (producto, cliente o vendedor) dentro de una ventana de tiempo. Es un valor
// derivado: se recalcula en cada consulta y nunca se persiste.
type Aggregate struct {
	Key string

	SoldUnits   decimal.Decimal
	GiftedUnits decimal.Decimal

	NetRevenue decimal.Decimal
	GiftValue  decimal.Decimal

	CommissionPaid    decimal.Decimal
	CommissionCorrect decimal.Decimal
	CommissionDiff    decimal.Decimal // pagada − correcta; positivo = sobrepago

	InvoiceCount int // facturas distintas, no líneas
}

// GiftRatio devuelve obsequiadas / (vendidas + obsequiadas).
// Con denominador cero el ratio se define como 0 (nunca NaN ni error).
func (a Aggregate) GiftRatio() decimal.Decimal {
	total := a.SoldUnits.Add(a.GiftedUnits)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return a.GiftedUnits.Div(total)
}

// MarginImpact devuelve el valor obsequiado como fracción del ingreso que se
// habría tenido sin obsequios: gift / (neto + gift). Denominador cero ⇒ 0.
func (a Aggregate) MarginImpact() decimal.Decimal {
	total := a.NetRevenue.Add(a.GiftValue)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return a.GiftValue.Div(total)
}

// KeyFunc extrae la clave de agrupación de un hecho.
type KeyFunc func(LineFact) string

// ByProduct agrupa por nombre de producto.
func ByProduct(f LineFact) string { return f.ProductName }

// ByClient agrupa por cliente; facturas sin cliente van a KeyUnassigned.
func ByClient(f LineFact) string {
	if f.ClientID == "" {
		return KeyUnassigned
	}
	return f.ClientID
}

// BySeller agrupa por vendedor; facturas sin vendedor van a KeyUnassigned.
func BySeller(f LineFact) string {
	if f.SellerID == "" {
		return KeyUnassigned
	}
	return f.SellerID
}

// AggregateFacts pliega los hechos cuya fecha cae dentro del rango (ambos
// extremos inclusive) en un resumen por clave.
//
// CommissionCorrect se acumula línea a línea (neto × porcentaje / 100) y
// nunca desde el porcentaje promedio del grupo. InvoiceCount cuenta facturas
// distintas que aportan al grupo.
func AggregateFacts(facts []LineFact, keyFn KeyFunc, r DateRange) (map[string]Aggregate, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	aggs := make(map[string]Aggregate)
	invoiceIDs := make(map[string]map[string]struct{})

	for _, f := range facts {
		if !r.Contains(f.InvoiceDate) {
			continue
		}
		key := keyFn(f)
		a := aggs[key]
		a.Key = key
		a.SoldUnits = a.SoldUnits.Add(f.SoldUnits)
		a.GiftedUnits = a.GiftedUnits.Add(f.GiftedUnits)
		a.NetRevenue = a.NetRevenue.Add(f.NetAmount)
		if gift := f.GiftValue(); gift.IsPositive() {
			a.GiftValue = a.GiftValue.Add(gift)
		}
		a.CommissionPaid = a.CommissionPaid.Add(f.CommissionPaid)
		a.CommissionCorrect = a.CommissionCorrect.Add(f.CommissionCorrect())

		seen := invoiceIDs[key]
		if seen == nil {
			seen = make(map[string]struct{})
			invoiceIDs[key] = seen
		}
		seen[f.InvoiceID] = struct{}{}

		aggs[key] = a
	}

	for key, a := range aggs {
		a.CommissionDiff = a.CommissionPaid.Sub(a.CommissionCorrect)
		a.InvoiceCount = len(invoiceIDs[key])
		aggs[key] = a
	}
	return aggs, nil
}

// Metric selecciona la cifra por la que se ordena un ranking.
type Metric int

const (
	MetricNetRevenue Metric = iota
	MetricGiftValue
	MetricCommissionDiff
)

func (m Metric) of(a Aggregate) decimal.Decimal {
	switch m {
	case MetricGiftValue:
		return a.GiftValue
	case MetricCommissionDiff:
		return a.CommissionDiff
	default:
		return a.NetRevenue
	}
}

// TopN devuelve los agregados ordenados por la métrica descendente; los
// empates se resuelven por orden lexicográfico de la clave para que el
// ranking sea determinista. n ≤ 0 devuelve todos.
func TopN(aggs map[string]Aggregate, metric Metric, n int) []Aggregate {
	ranked := make([]Aggregate, 0, len(aggs))
	for _, a := range aggs {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		vi, vj := metric.of(ranked[i]), metric.of(ranked[j])
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return ranked[i].Key < ranked[j].Key
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
