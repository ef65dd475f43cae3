package reports

import (
	"context"
	"time"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// ReconciliationUseCase cierre de comisiones del período: total pagado contra
// total recalculado, con desglose por vendedor y bandera de revisión.
type ReconciliationUseCase struct {
	invoiceRepo repository.InvoiceRepository
	sellerRepo  repository.SellerRepository
	thresholds  engine.Thresholds
	log         *logger.Logger
	now         func() time.Time
}

// NewReconciliationUseCase construye el caso de uso.
func NewReconciliationUseCase(
	invoiceRepo repository.InvoiceRepository,
	sellerRepo repository.SellerRepository,
	thresholds engine.Thresholds,
	log *logger.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		invoiceRepo: invoiceRepo,
		sellerRepo:  sellerRepo,
		thresholds:  thresholds,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso. Solo para tests.
func (uc *ReconciliationUseCase) WithClock(now func() time.Time) *ReconciliationUseCase {
	uc.now = now
	return uc
}

// Execute calcula la conciliación del período.
func (uc *ReconciliationUseCase) Execute(ctx context.Context, companyID string, req dto.ReportRequest) (*dto.ReconciliationDTO, error) {
	r, err := parsePeriod(req.StartDate, req.EndDate, uc.now())
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

	recon := engine.Reconcile(facts)
	bySeller, err := engine.AggregateFacts(facts, engine.BySeller, r)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	if sellers, err := uc.sellerRepo.ListByCompany(companyID, 0, 0); err == nil {
		for _, s := range sellers {
			names[s.ID] = s.Name
		}
	}

	// Desglose ordenado por magnitud de la diferencia: lo más desviado primero.
	ranked := engine.TopN(bySeller, engine.MetricCommissionDiff, 0)
	rows := make([]dto.SellerReconciliationRow, 0, len(ranked))
	for _, a := range ranked {
		rows = append(rows, dto.SellerReconciliationRow{
			SellerID:       a.Key,
			SellerName:     names[a.Key],
			CommissionPaid: a.CommissionPaid.Round(2),
			CommissionOK:   a.CommissionCorrect.Round(2),
			CommissionDiff: a.CommissionDiff.Round(2),
		})
	}

	requiresReview := recon.RequiresReview(uc.thresholds.ReviewThreshold)
	if requiresReview {
		uc.log.Warn().
			Str("company_id", companyID).
			Str("diff", recon.Diff.Round(2).String()).
			Msg("diferencia de comisión supera el umbral de revisión")
	}

	return &dto.ReconciliationDTO{
		Period:         toPeriodDTO(r),
		TotalPaid:      recon.TotalPaid.Round(2),
		TotalCorrect:   recon.TotalCorrect.Round(2),
		Diff:           recon.Diff.Round(2),
		RequiresReview: requiresReview,
		BySeller:       rows,
	}, nil
}
