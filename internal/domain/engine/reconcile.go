package engine

import "github.com/shopspring/decimal"

// Reconciliation es el resultado de contrastar la comisión pagada contra la
// comisión recalculada desde el ingreso neto y el porcentaje de cada línea.
type Reconciliation struct {
	TotalPaid    decimal.Decimal
	TotalCorrect decimal.Decimal
	Diff         decimal.Decimal // pagada − correcta; positivo = sobrepago
}

// Reconcile suma pagado y correcto sobre cualquier conjunto de hechos, sin
// importar a qué entidad pertenecen (se usa para el cierre de cartera
// completo además de los agregados por vendedor).
func Reconcile(facts []LineFact) Reconciliation {
	var rec Reconciliation
	for _, f := range facts {
		rec.TotalPaid = rec.TotalPaid.Add(f.CommissionPaid)
		rec.TotalCorrect = rec.TotalCorrect.Add(f.CommissionCorrect())
	}
	rec.Diff = rec.TotalPaid.Sub(rec.TotalCorrect)
	return rec
}

// RequiresReview indica si la magnitud de la diferencia supera el umbral de
// reporte configurado (Thresholds.ReviewThreshold).
func (r Reconciliation) RequiresReview(threshold decimal.Decimal) bool {
	return r.Diff.Abs().GreaterThan(threshold)
}
