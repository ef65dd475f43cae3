package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GenerateInsights deriva hallazgos legibles a partir de los agregados por
// producto y por vendedor y de la conciliación del período. Cada hallazgo es
// un hecho computable de forma independiente; se emiten siempre en el mismo
// orden y la lista queda vacía (no es un error) cuando ninguno aplica.
//
// Las claves de los agregados (ids de vendedor, nombres de producto) se
// insertan tal cual: resolver nombres de display es trabajo del consumidor.
func GenerateInsights(byProduct, bySeller map[string]Aggregate, recon Reconciliation, th Thresholds) []string {
	insights := make([]string, 0, 5)

	totalGift := decimal.Zero
	for _, a := range byProduct {
		totalGift = totalGift.Add(a.GiftValue)
	}

	// 1) Concentración del obsequio en el vendedor que más regala.
	if topSellers := TopN(bySeller, MetricGiftValue, 1); len(topSellers) > 0 {
		top := topSellers[0]
		if top.GiftValue.IsPositive() && totalGift.IsPositive() {
			share := top.GiftValue.Div(totalGift).Mul(hundred)
			insights = append(insights, fmt.Sprintf(
				"El vendedor %s concentra el %s%% del valor obsequiado del período.",
				top.Key, share.Round(1)))
		}
	}

	// 2) Producto que se regala más de lo que se vende.
	if topProducts := TopN(byProduct, MetricGiftValue, 1); len(topProducts) > 0 {
		top := topProducts[0]
		if top.GiftedUnits.GreaterThan(top.SoldUnits) {
			insights = append(insights, fmt.Sprintf(
				"Alerta: el producto %s registra más unidades obsequiadas (%s) que vendidas (%s).",
				top.Key, top.GiftedUnits.Round(2), top.SoldUnits.Round(2)))
		}
	}

	// 3) Valor total regalado en el período.
	if totalGift.IsPositive() {
		insights = append(insights, fmt.Sprintf(
			"En el período se obsequiaron %s en producto.", totalGift.Round(2)))
	}

	// 4) Proyección: reducir el obsequio a la mitad.
	if totalGift.IsPositive() {
		projected := totalGift.Div(decimal.NewFromInt(2))
		insights = append(insights, fmt.Sprintf(
			"Reducir los obsequios a la mitad sumaría %s de ingreso estimado.",
			projected.Round(2)))
	}

	// 5) Diferencia de comisión por encima del umbral de reporte.
	if recon.RequiresReview(th.ReviewThreshold) {
		insights = append(insights, fmt.Sprintf(
			"La diferencia entre comisión pagada y calculada (%s) supera el umbral de %s: requiere revisión.",
			recon.Diff.Round(2), th.ReviewThreshold))
	}

	return insights
}
