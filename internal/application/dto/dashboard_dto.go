package dto

import "github.com/shopspring/decimal"

// GrowthDTO cifra actual contra la del período anterior.
type GrowthDTO struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

// DashboardSummaryDTO resumen del mes en curso para el dashboard gerencial.
type DashboardSummaryDTO struct {
	Revenue     GrowthDTO          `json:"revenue"`      // ingreso neto: mes actual vs anterior
	GiftValue   GrowthDTO          `json:"gift_value"`   // valor obsequiado: mes actual vs anterior
	Commission  GrowthDTO          `json:"commission"`   // comisión pagada: mes actual vs anterior
	TopProducts []ProductReportRow `json:"top_products"` // top por ingreso neto
	TopSellers  []SellerReportRow  `json:"top_sellers"`  // top por ingreso neto
	Insights    []string           `json:"insights"`
	DateLabel   string             `json:"date_label"` // ej: "Febrero 2026"
}
