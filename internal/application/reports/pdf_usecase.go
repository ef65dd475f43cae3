package reports

import (
	"context"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// ReconciliationPDFUseCase genera el cierre de comisiones del período como
// documento PDF para entregar a gerencia.
type ReconciliationPDFUseCase struct {
	reconUC     *ReconciliationUseCase
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
	thresholds  engine.Thresholds
	generator   ReportPDFGenerator
	log         *logger.Logger
}

// NewReconciliationPDFUseCase construye el caso de uso.
func NewReconciliationPDFUseCase(
	reconUC *ReconciliationUseCase,
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	thresholds engine.Thresholds,
	generator ReportPDFGenerator,
	log *logger.Logger,
) *ReconciliationPDFUseCase {
	return &ReconciliationPDFUseCase{
		reconUC:     reconUC,
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
		thresholds:  thresholds,
		generator:   generator,
		log:         log,
	}
}

// Execute calcula la conciliación y los hallazgos del período y los vuelca al
// generador PDF.
func (uc *ReconciliationPDFUseCase) Execute(ctx context.Context, companyID string, req dto.ReportRequest) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	recon, err := uc.reconUC.Execute(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	insights, err := uc.insightsForPeriod(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generator.ReconciliationPDF(company.Name, recon, insights)
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", companyID).
		Int("bytes", len(pdf)).
		Msg("PDF de conciliación generado")
	return pdf, nil
}

func (uc *ReconciliationPDFUseCase) insightsForPeriod(ctx context.Context, companyID string, req dto.ReportRequest) ([]string, error) {
	r, err := parsePeriod(req.StartDate, req.EndDate, uc.reconUC.now())
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByPeriod(ctx, companyID, r.From, r.To)
	if err != nil {
		return nil, err
	}
	facts, err := engine.FactsFromInvoices(invoices)
	if err != nil {
		return nil, err
	}
	byProduct, err := engine.AggregateFacts(facts, engine.ByProduct, r)
	if err != nil {
		return nil, err
	}
	bySeller, err := engine.AggregateFacts(facts, engine.BySeller, r)
	if err != nil {
		return nil, err
	}
	return engine.GenerateInsights(byProduct, bySeller, engine.Reconcile(facts), uc.thresholds), nil
}
