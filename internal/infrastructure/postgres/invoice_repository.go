package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// Asegura que InvoiceRepo implementa repository.InvoiceRepository.
var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// Los montos opcionales de las líneas son columnas NUMERIC NULL que escanean
// directo a decimal.NullDecimal vía el codec pgx-shopspring-decimal.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persiste la cabecera. client_id y seller_id vacíos se guardan como
// NULL para no romper las FK.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, client_id, seller_id, number, date,
			net_total, gross_total, commission_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		invoice.ID, invoice.CompanyID,
		nullIfEmpty(invoice.ClientID), nullIfEmpty(invoice.SellerID),
		invoice.Number, invoice.Date,
		invoice.NetTotal, invoice.GrossTotal, invoice.CommissionTotal,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea cruda tal como llegó, sin normalizar.
func (r *InvoiceRepo) CreateLine(ctx context.Context, line *entity.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (id, invoice_id, product_name,
			quantity_sold, quantity_free, unit_price, gross_amount, net_amount, amount,
			commission, percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		line.ID, line.InvoiceID, line.ProductName,
		line.QuantitySold, line.QuantityFree, line.UnitPrice,
		line.GrossAmount, line.NetAmount, line.Amount,
		line.Commission, line.Percentage,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene una factura con sus líneas; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	q := querierFrom(ctx, r.pool)
	query := `
		SELECT id, company_id, COALESCE(client_id, ''), COALESCE(seller_id, ''), number, date,
			net_total, gross_total, commission_total, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.SellerID, &inv.Number, &inv.Date,
		&inv.NetTotal, &inv.GrossTotal, &inv.CommissionTotal,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	lines, err := r.linesForInvoices(ctx, []string{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Lines = lines[inv.ID]
	return &inv, nil
}

// ListByPeriod devuelve las facturas de la empresa en [from, to] con todas sus
// líneas. Dos queries: cabeceras y líneas por lote, unidas en memoria.
func (r *InvoiceRepo) ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]entity.Invoice, error) {
	q := querierFrom(ctx, r.pool)
	query := `
		SELECT id, company_id, COALESCE(client_id, ''), COALESCE(seller_id, ''), number, date,
			net_total, gross_total, commission_total, created_at, updated_at
		FROM invoices
		WHERE company_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, number`
	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []entity.Invoice
	var ids []string
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.SellerID, &inv.Number, &inv.Date,
			&inv.NetTotal, &inv.GrossTotal, &inv.CommissionTotal,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	lines, err := r.linesForInvoices(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Lines = lines[invoices[i].ID]
	}
	return invoices, nil
}

func (r *InvoiceRepo) linesForInvoices(ctx context.Context, invoiceIDs []string) (map[string][]entity.InvoiceLine, error) {
	q := querierFrom(ctx, r.pool)
	query := `
		SELECT id, invoice_id, product_name,
			quantity_sold, quantity_free, unit_price, gross_amount, net_amount, amount,
			commission, percentage
		FROM invoice_lines WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, id`
	rows, err := q.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	byInvoice := make(map[string][]entity.InvoiceLine, len(invoiceIDs))
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(
			&l.ID, &l.InvoiceID, &l.ProductName,
			&l.QuantitySold, &l.QuantityFree, &l.UnitPrice,
			&l.GrossAmount, &l.NetAmount, &l.Amount,
			&l.Commission, &l.Percentage,
		); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		byInvoice[l.InvoiceID] = append(byInvoice[l.InvoiceID], l)
	}
	return byInvoice, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
