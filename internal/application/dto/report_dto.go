package dto

import "github.com/shopspring/decimal"

// ── Parámetros de consulta ────────────────────────────────────────────────────

// ReportRequest parámetros comunes de los reportes.
// start_date/end_date en YYYY-MM-DD; por defecto el mes en curso.
type ReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	TopN      int    `query:"top_n"` // máx filas a devolver (default 20, max 200)
}

// ── Reporte por producto ──────────────────────────────────────────────────────

// ProductReportRow métricas de un producto en el período.
type ProductReportRow struct {
	ProductName       string          `json:"product_name"`
	SoldUnits         decimal.Decimal `json:"sold_units"`
	GiftedUnits       decimal.Decimal `json:"gifted_units"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	GiftValue         decimal.Decimal `json:"gift_value"`
	CommissionPaid    decimal.Decimal `json:"commission_paid"`
	CommissionCorrect decimal.Decimal `json:"commission_correct"`
	CommissionDiff    decimal.Decimal `json:"commission_diff"` // positivo = sobrepago
	InvoiceCount      int             `json:"invoice_count"`
	GiftRatioPct      decimal.Decimal `json:"gift_ratio_pct"`
	MarginImpactPct   decimal.Decimal `json:"margin_impact_pct"`
	Status            string          `json:"status"` // healthy | watch | danger
}

// ProductReportDTO respuesta de GET /api/reports/products.
type ProductReportDTO struct {
	Period PeriodDTO          `json:"period"`
	Rows   []ProductReportRow `json:"rows"`
}

// ── Reporte por vendedor ──────────────────────────────────────────────────────

// SellerReportRow métricas de un vendedor en el período.
// SellerID puede ser "unassigned" para facturas sin vendedor.
type SellerReportRow struct {
	SellerID          string          `json:"seller_id"`
	SellerName        string          `json:"seller_name,omitempty"`
	SoldUnits         decimal.Decimal `json:"sold_units"`
	GiftedUnits       decimal.Decimal `json:"gifted_units"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	GiftValue         decimal.Decimal `json:"gift_value"`
	CommissionPaid    decimal.Decimal `json:"commission_paid"`
	CommissionCorrect decimal.Decimal `json:"commission_correct"`
	CommissionDiff    decimal.Decimal `json:"commission_diff"`
	InvoiceCount      int             `json:"invoice_count"`
	GiftRatioPct      decimal.Decimal `json:"gift_ratio_pct"`
	Status            string          `json:"status"`
}

// SellerReportDTO respuesta de GET /api/reports/sellers.
type SellerReportDTO struct {
	Period PeriodDTO         `json:"period"`
	Rows   []SellerReportRow `json:"rows"`
}

// ── Reporte por cliente ───────────────────────────────────────────────────────

// ClientReportRow actividad de un cliente: período actual contra el anterior.
type ClientReportRow struct {
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name,omitempty"`
	CurrentRevenue  decimal.Decimal `json:"current_revenue"`
	PreviousRevenue decimal.Decimal `json:"previous_revenue"`
	GrowthPercent   decimal.Decimal `json:"growth_percent"`
	InvoiceCount    int             `json:"invoice_count"`
	Status          string          `json:"status"` // growing | stable | declining | inactive
}

// ClientReportDTO respuesta de GET /api/reports/clients.
type ClientReportDTO struct {
	Period         PeriodDTO         `json:"period"`
	PreviousPeriod PeriodDTO         `json:"previous_period"`
	Rows           []ClientReportRow `json:"rows"`
}

// ── Conciliación ──────────────────────────────────────────────────────────────

// SellerReconciliationRow diferencia de comisión de un vendedor.
type SellerReconciliationRow struct {
	SellerID       string          `json:"seller_id"`
	SellerName     string          `json:"seller_name,omitempty"`
	CommissionPaid decimal.Decimal `json:"commission_paid"`
	CommissionOK   decimal.Decimal `json:"commission_correct"`
	CommissionDiff decimal.Decimal `json:"commission_diff"`
}

// ReconciliationDTO respuesta de GET /api/reports/reconciliation.
type ReconciliationDTO struct {
	Period         PeriodDTO                 `json:"period"`
	TotalPaid      decimal.Decimal           `json:"total_paid"`
	TotalCorrect   decimal.Decimal           `json:"total_correct"`
	Diff           decimal.Decimal           `json:"diff"`
	RequiresReview bool                      `json:"requires_review"`
	BySeller       []SellerReconciliationRow `json:"by_seller"`
}
