package engine

import "github.com/shopspring/decimal"

// GrowthFigure compara una cifra del período actual contra la del período
// anterior. GrowthPercent siempre es un valor finito y definido.
type GrowthFigure struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	GrowthPercent decimal.Decimal
}

// CompareGrowth calcula el crecimiento porcentual entre dos períodos
// disyuntos. El comparador no hace aritmética de fechas: el consumidor decide
// las ventanas (mes contra mes, trimestre contra trimestre, rangos libres).
//
// Caso degenerado, contrato duro: con previo 0 el crecimiento es 100 si hay
// cifra actual y 0 si no la hay. Nunca se devuelve NaN ni infinito.
func CompareGrowth(current, previous decimal.Decimal) GrowthFigure {
	g := GrowthFigure{Current: current, Previous: previous}
	switch {
	case previous.IsPositive():
		g.GrowthPercent = current.Sub(previous).Div(previous).Mul(hundred)
	case current.IsPositive():
		g.GrowthPercent = hundred
	default:
		g.GrowthPercent = decimal.Zero
	}
	return g
}
