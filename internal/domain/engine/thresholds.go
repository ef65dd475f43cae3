// Package engine implementa el motor de conciliación de comisiones y márgenes:
// normaliza líneas de factura heterogéneas en hechos canónicos, las agrega por
// producto/cliente/vendedor en ventanas de tiempo arbitrarias, recalcula la
// comisión correcta a partir del ingreso neto, clasifica cada agregado y
// deriva hallazgos legibles.
//
// Todo el paquete es puro: sin I/O, sin estado compartido, sin caché. Cada
// invocación recomputa por completo desde la colección de entrada, por lo que
// es trivialmente paralelizable por el consumidor.
package engine

import "github.com/shopspring/decimal"

// Thresholds agrupa todas las constantes de negocio del motor en un solo
// lugar. Ninguna regla de clasificación ni de conciliación debe duplicar
// estos valores en sus call sites.
type Thresholds struct {
	// Clasificación producto/vendedor por ratio de obsequio
	// (obsequiadas / (vendidas + obsequiadas)).
	GiftRatioDanger decimal.Decimal
	GiftRatioWatch  decimal.Decimal

	// Clasificación producto/vendedor por impacto en margen
	// (valor obsequiado / (ingreso neto + valor obsequiado)).
	MarginImpactDanger decimal.Decimal
	MarginImpactWatch  decimal.Decimal

	// Clasificación de clientes por crecimiento intermensual (%).
	GrowthUpPercent   decimal.Decimal
	GrowthDownPercent decimal.Decimal

	// Diferencia de comisión (en unidades de moneda) a partir de la cual la
	// conciliación se marca como "requiere revisión".
	ReviewThreshold decimal.Decimal
}

// DefaultThresholds devuelve los umbrales de negocio estándar.
// ReviewThreshold puede sobreescribirse vía configuración (ENGINE_REVIEW_THRESHOLD).
func DefaultThresholds() Thresholds {
	return Thresholds{
		GiftRatioDanger:    decimal.NewFromFloat(0.30),
		GiftRatioWatch:     decimal.NewFromFloat(0.15),
		MarginImpactDanger: decimal.NewFromFloat(0.25),
		MarginImpactWatch:  decimal.NewFromFloat(0.10),
		GrowthUpPercent:    decimal.NewFromInt(10),
		GrowthDownPercent:  decimal.NewFromInt(-10),
		ReviewThreshold:    decimal.NewFromInt(100),
	}
}
