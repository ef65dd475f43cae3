package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

const dashboardTopN = 5

// DashboardUseCase resumen gerencial del mes en curso: cifras contra el mes
// anterior, rankings cortos y hallazgos del motor.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	sellerRepo  repository.SellerRepository
	thresholds  engine.Thresholds
	log         *logger.Logger
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	sellerRepo repository.SellerRepository,
	thresholds engine.Thresholds,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo: invoiceRepo,
		sellerRepo:  sellerRepo,
		thresholds:  thresholds,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso. Solo para tests.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Summary arma el dashboard: mes calendario actual contra el anterior.
func (uc *DashboardUseCase) Summary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	current := engine.MonthOf(now)
	previous := engine.PreviousMonthOf(now)

	invoices, err := uc.invoiceRepo.ListByPeriod(ctx, companyID, previous.From, current.To)
	if err != nil {
		return nil, err
	}
	facts, err := engine.FactsFromInvoices(invoices)
	if err != nil {
		return nil, err
	}

	curProducts, err := engine.AggregateFacts(facts, engine.ByProduct, current)
	if err != nil {
		return nil, err
	}
	curSellers, err := engine.AggregateFacts(facts, engine.BySeller, current)
	if err != nil {
		return nil, err
	}

	curTotals := periodTotals(facts, current)
	prvTotals := periodTotals(facts, previous)

	var curFacts []engine.LineFact
	for _, f := range facts {
		if current.Contains(f.InvoiceDate) {
			curFacts = append(curFacts, f)
		}
	}
	recon := engine.Reconcile(curFacts)
	insights := engine.GenerateInsights(curProducts, curSellers, recon, uc.thresholds)

	names := make(map[string]string)
	if sellers, err := uc.sellerRepo.ListByCompany(companyID, 0, 0); err == nil {
		for _, s := range sellers {
			names[s.ID] = s.Name
		}
	}

	topProducts := make([]dto.ProductReportRow, 0, dashboardTopN)
	for _, a := range engine.TopN(curProducts, engine.MetricNetRevenue, dashboardTopN) {
		topProducts = append(topProducts, dto.ProductReportRow{
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

	topSellers := make([]dto.SellerReportRow, 0, dashboardTopN)
	for _, a := range engine.TopN(curSellers, engine.MetricNetRevenue, dashboardTopN) {
		topSellers = append(topSellers, sellerRow(a, names[a.Key], uc.thresholds))
	}

	return &dto.DashboardSummaryDTO{
		Revenue:     toGrowthDTO(engine.CompareGrowth(curTotals.revenue, prvTotals.revenue)),
		GiftValue:   toGrowthDTO(engine.CompareGrowth(curTotals.gift, prvTotals.gift)),
		Commission:  toGrowthDTO(engine.CompareGrowth(curTotals.commission, prvTotals.commission)),
		TopProducts: topProducts,
		TopSellers:  topSellers,
		Insights:    insights,
		DateLabel:   monthLabel(now),
	}, nil
}

type totals struct {
	revenue    decimal.Decimal
	gift       decimal.Decimal
	commission decimal.Decimal
}

func periodTotals(facts []engine.LineFact, r engine.DateRange) totals {
	var t totals
	for _, f := range facts {
		if !r.Contains(f.InvoiceDate) {
			continue
		}
		t.revenue = t.revenue.Add(f.NetAmount)
		if gift := f.GiftValue(); gift.IsPositive() {
			t.gift = t.gift.Add(gift)
		}
		t.commission = t.commission.Add(f.CommissionPaid)
	}
	return t
}

func toGrowthDTO(g engine.GrowthFigure) dto.GrowthDTO {
	return dto.GrowthDTO{
		Current:       g.Current.Round(2),
		Previous:      g.Previous.Round(2),
		GrowthPercent: g.GrowthPercent.Round(1),
	}
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}
