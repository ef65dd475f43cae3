package billing

import (
	"context"
	"fmt"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// ImportInvoicesUseCase carga masiva de facturas históricas. Cada factura del
// lote se procesa de forma independiente: una factura malformada se omite y se
// reporta, sin abortar el resto. Es la vía de entrada de los datos legacy que
// luego normaliza el motor de reportes.
type ImportInvoicesUseCase struct {
	invoiceRepo repository.InvoiceRepository
	tx          TxRunner
	log         *logger.Logger
}

// NewImportInvoicesUseCase construye el caso de uso.
func NewImportInvoicesUseCase(invoiceRepo repository.InvoiceRepository, tx TxRunner, log *logger.Logger) *ImportInvoicesUseCase {
	return &ImportInvoicesUseCase{invoiceRepo: invoiceRepo, tx: tx, log: log}
}

// Execute importa el lote. Cada factura va en su propia transacción para que
// un fallo de persistencia no deje cabeceras sin líneas ni tumbe el lote.
func (uc *ImportInvoicesUseCase) Execute(ctx context.Context, companyID string, in dto.ImportInvoicesRequest) (*dto.ImportInvoicesResponse, error) {
	out := &dto.ImportInvoicesResponse{}

	for n, req := range in.Invoices {
		invoice, err := buildInvoice(companyID, req)
		if err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, fmt.Sprintf("factura %d (%s): %v", n+1, req.Number, err))
			continue
		}

		err = uc.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
				return err
			}
			for i := range invoice.Lines {
				if err := uc.invoiceRepo.CreateLine(ctx, &invoice.Lines[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			out.Skipped++
			out.Errors = append(out.Errors, fmt.Sprintf("factura %d (%s): %v", n+1, req.Number, err))
			continue
		}
		out.Created++
	}

	uc.log.Info().
		Int("created", out.Created).
		Int("skipped", out.Skipped).
		Msg("importación de facturas finalizada")

	return out, nil
}
