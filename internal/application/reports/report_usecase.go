package reports

import (
	"context"
	"time"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// ReportUseCase reportes por producto, vendedor y cliente. Cada consulta lee
// las facturas del período, las normaliza y agrega con el motor; nada se
// precalcula ni se cachea.
type ReportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	sellerRepo  repository.SellerRepository
	clientRepo  repository.ClientRepository
	thresholds  engine.Thresholds
	log         *logger.Logger
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. now permite fijar el reloj en tests.
func NewReportUseCase(
	invoiceRepo repository.InvoiceRepository,
	sellerRepo repository.SellerRepository,
	clientRepo repository.ClientRepository,
	thresholds engine.Thresholds,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		invoiceRepo: invoiceRepo,
		sellerRepo:  sellerRepo,
		clientRepo:  clientRepo,
		thresholds:  thresholds,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso. Solo para tests.
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// factsForRange trae las facturas del rango y las normaliza en hechos.
func (uc *ReportUseCase) factsForRange(ctx context.Context, companyID string, r engine.DateRange) ([]engine.LineFact, error) {
	invoices, err := uc.invoiceRepo.ListByPeriod(ctx, companyID, r.From, r.To)
	if err != nil {
		return nil, err
	}
	return engine.FactsFromInvoices(invoices)
}

// ProductReport métricas por producto, ordenadas por ingreso neto descendente.
func (uc *ReportUseCase) ProductReport(ctx context.Context, companyID string, req dto.ReportRequest) (*dto.ProductReportDTO, error) {
	r, err := parsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, err
	}
	facts, err := uc.factsForRange(ctx, companyID, r)
	if err != nil {
		return nil, err
	}
	aggs, err := engine.AggregateFacts(facts, engine.ByProduct, r)
	if err != nil {
		return nil, err
	}

	ranked := engine.TopN(aggs, engine.MetricNetRevenue, clampTopN(req.TopN))
	rows := make([]dto.ProductReportRow, 0, len(ranked))
	for _, a := range ranked {
		rows = append(rows, dto.ProductReportRow{
			ProductName:       a.Key,
			SoldUnits:         a.SoldUnits.Round(2),
			GiftedUnits:       a.GiftedUnits.Round(2),
			NetRevenue:        a.NetRevenue.Round(2),
			GiftValue:         a.GiftValue.Round(2),
			CommissionPaid:    a.CommissionPaid.Round(2),
			CommissionCorrect: a.CommissionCorrect.Round(2),
			CommissionDiff:    a.CommissionDiff.Round(2),
			InvoiceCount:      a.InvoiceCount,
			GiftRatioPct:      a.GiftRatio().Mul(hundred).Round(1),
			MarginImpactPct:   a.MarginImpact().Mul(hundred).Round(1),
			Status:            string(engine.ClassifyProduct(a, uc.thresholds)),
		})
	}
	return &dto.ProductReportDTO{Period: toPeriodDTO(r), Rows: rows}, nil
}

// SellerReport métricas por vendedor con nombre resuelto. Las facturas sin
// vendedor se agrupan bajo "unassigned" sin nombre.
func (uc *ReportUseCase) SellerReport(ctx context.Context, companyID string, req dto.ReportRequest) (*dto.SellerReportDTO, error) {
	r, err := parsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, err
	}
	facts, err := uc.factsForRange(ctx, companyID, r)
	if err != nil {
		return nil, err
	}
	aggs, err := engine.AggregateFacts(facts, engine.BySeller, r)
	if err != nil {
		return nil, err
	}

	names := uc.sellerNames(companyID)
	ranked := engine.TopN(aggs, engine.MetricNetRevenue, clampTopN(req.TopN))
	rows := make([]dto.SellerReportRow, 0, len(ranked))
	for _, a := range ranked {
		rows = append(rows, sellerRow(a, names[a.Key], uc.thresholds))
	}
	return &dto.SellerReportDTO{Period: toPeriodDTO(r), Rows: rows}, nil
}

// ClientReport actividad de clientes: período solicitado contra el anterior de
// igual duración. Clientes con actividad previa pero sin actividad actual
// aparecen igual (como declining), por eso se recorren ambos agregados.
func (uc *ReportUseCase) ClientReport(ctx context.Context, companyID string, req dto.ReportRequest) (*dto.ClientReportDTO, error) {
	r, err := parsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, err
	}
	prev := r.Previous()

	// Una sola lectura cubriendo ambas ventanas.
	facts, err := uc.factsForRange(ctx, companyID, engine.DateRange{From: prev.From, To: r.To})
	if err != nil {
		return nil, err
	}
	current, err := engine.AggregateFacts(facts, engine.ByClient, r)
	if err != nil {
		return nil, err
	}
	previous, err := engine.AggregateFacts(facts, engine.ByClient, prev)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(current)+len(previous))
	for k := range current {
		keys[k] = struct{}{}
	}
	for k := range previous {
		keys[k] = struct{}{}
	}

	names := uc.clientNames(companyID)
	rows := make([]dto.ClientReportRow, 0, len(keys))
	for key := range keys {
		cur, prv := current[key], previous[key]
		growth := engine.CompareGrowth(cur.NetRevenue, prv.NetRevenue)
		rows = append(rows, dto.ClientReportRow{
			ClientID:        key,
			ClientName:      names[key],
			CurrentRevenue:  growth.Current.Round(2),
			PreviousRevenue: growth.Previous.Round(2),
			GrowthPercent:   growth.GrowthPercent.Round(1),
			InvoiceCount:    cur.InvoiceCount,
			Status:          string(engine.ClassifyClient(growth, uc.thresholds)),
		})
	}
	sortClientRows(rows)
	if n := clampTopN(req.TopN); n < len(rows) {
		rows = rows[:n]
	}

	return &dto.ClientReportDTO{
		Period:         toPeriodDTO(r),
		PreviousPeriod: toPeriodDTO(prev),
		Rows:           rows,
	}, nil
}

// sellerNames mapea id → nombre; ante error se reporta sin nombres en vez de
// fallar el reporte completo.
func (uc *ReportUseCase) sellerNames(companyID string) map[string]string {
	names := make(map[string]string)
	sellers, err := uc.sellerRepo.ListByCompany(companyID, 0, 0)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron resolver nombres de vendedores")
		return names
	}
	for _, s := range sellers {
		names[s.ID] = s.Name
	}
	return names
}

func (uc *ReportUseCase) clientNames(companyID string) map[string]string {
	names := make(map[string]string)
	clients, err := uc.clientRepo.ListByCompany(companyID, 0, 0)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron resolver nombres de clientes")
		return names
	}
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}
