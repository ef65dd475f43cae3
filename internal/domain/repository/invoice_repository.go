package repository

import (
	"context"
	"time"

	"github.com/ventapro/comisiona-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
//
// Create y CreateLine reciben contexto porque participan en transacciones (la
// implementación resuelve el tx desde el contexto). ListByPeriod es la
// consulta que alimenta el motor de reportes: devuelve las facturas de la
// empresa con todas sus líneas crudas, sin asumir nada sobre cómo se obtuvo la
// colección.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateLine(ctx context.Context, line *entity.InvoiceLine) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]entity.Invoice, error)
}
