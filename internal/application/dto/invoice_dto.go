package dto

import "github.com/shopspring/decimal"

// InvoiceLineRequest una línea de factura tal como llega del cliente o del
// importador masivo. Los punteros distinguen "no registrado" de cero: las
// filas legacy solo traen amount + commission + percentage.
type InvoiceLineRequest struct {
	ProductName  string           `json:"product_name"`
	QuantitySold *decimal.Decimal `json:"quantity_sold,omitempty"`
	QuantityFree *decimal.Decimal `json:"quantity_free,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	GrossAmount  *decimal.Decimal `json:"gross_amount,omitempty"`
	NetAmount    *decimal.Decimal `json:"net_amount,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Commission   decimal.Decimal  `json:"commission"`
	Percentage   decimal.Decimal  `json:"percentage"`
}

// CreateInvoiceRequest cuerpo de POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID string               `json:"client_id,omitempty"`
	SellerID string               `json:"seller_id,omitempty"`
	Number   string               `json:"number"`
	Date     string               `json:"date"` // YYYY-MM-DD
	Lines    []InvoiceLineRequest `json:"lines"`
}

// InvoiceResponse factura persistida con totales calculados.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id,omitempty"`
	SellerID        string          `json:"seller_id,omitempty"`
	Number          string          `json:"number"`
	Date            string          `json:"date"`
	NetTotal        decimal.Decimal `json:"net_total"`
	GrossTotal      decimal.Decimal `json:"gross_total"`
	CommissionTotal decimal.Decimal `json:"commission_total"`
	LineCount       int             `json:"line_count"`
}

// ImportInvoicesRequest cuerpo de POST /api/invoices/import (lote).
type ImportInvoicesRequest struct {
	Invoices []CreateInvoiceRequest `json:"invoices"`
}

// ImportInvoicesResponse resultado del importador masivo: cuántas facturas
// entraron y cuáles se omitieron con su motivo.
type ImportInvoicesResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
