package billing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapro/comisiona-api/internal/application/billing"
	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/pkg/logger"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices []*entity.Invoice
	lines    []*entity.InvoiceLine
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *memInvoiceRepo) CreateLine(_ context.Context, l *entity.InvoiceLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, l)
	return nil
}

func (r *memInvoiceRepo) GetByID(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}

func (r *memInvoiceRepo) ListByPeriod(context.Context, string, time.Time, time.Time) ([]entity.Invoice, error) {
	return nil, nil
}

// noopTxRunner ejecuta el callback sin transacción real.
type noopTxRunner struct{}

func (noopTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testLog = logger.New(logger.Config{Env: "development", Level: "error"})

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func pd(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateInvoiceCalculaTotalesDesdeLasLineas(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewCreateInvoiceUseCase(repo, noopTxRunner{}, testLog)

	out, err := uc.Execute(context.Background(), "co-1", dto.CreateInvoiceRequest{
		SellerID: "ven-1",
		Number:   "F-100",
		Date:     "2026-02-10",
		Lines: []dto.InvoiceLineRequest{
			{
				ProductName:  "Crema X",
				QuantitySold: pd("10"),
				QuantityFree: pd("2"),
				UnitPrice:    pd("50"),
				GrossAmount:  pd("600"),
				NetAmount:    pd("500"),
				Commission:   dec("75"),
				Percentage:   dec("15"),
			},
			// línea legacy: solo amount + comisión
			{
				ProductName: "Jabón Y",
				Amount:      pd("200"),
				Commission:  dec("20"),
				Percentage:  dec("10"),
			},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.NetTotal.Equal(dec("700")), "neto: %s", out.NetTotal)
	assert.True(t, out.GrossTotal.Equal(dec("800")), "bruto: %s", out.GrossTotal)
	assert.True(t, out.CommissionTotal.Equal(dec("95")))
	assert.Equal(t, 2, out.LineCount)
	assert.Equal(t, "2026-02-10", out.Date)

	require.Len(t, repo.invoices, 1)
	require.Len(t, repo.lines, 2)
	assert.Equal(t, repo.invoices[0].ID, repo.lines[0].InvoiceID)
}

func TestCreateInvoiceFechaInvalidaFalla(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(&memInvoiceRepo{}, noopTxRunner{}, testLog)

	_, err := uc.Execute(context.Background(), "co-1", dto.CreateInvoiceRequest{
		Number: "F-101",
		Date:   "10/02/2026",
		Lines:  []dto.InvoiceLineRequest{{ProductName: "X", Amount: pd("100")}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoiceSinLineasFalla(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(&memInvoiceRepo{}, noopTxRunner{}, testLog)

	_, err := uc.Execute(context.Background(), "co-1", dto.CreateInvoiceRequest{
		Number: "F-102",
		Date:   "2026-02-10",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoiceMontoNegativoFalla(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(&memInvoiceRepo{}, noopTxRunner{}, testLog)

	_, err := uc.Execute(context.Background(), "co-1", dto.CreateInvoiceRequest{
		Number: "F-103",
		Date:   "2026-02-10",
		Lines: []dto.InvoiceLineRequest{
			{ProductName: "X", NetAmount: pd("-50"), Commission: dec("0"), Percentage: dec("0")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportInvoicesOmiteMalformadasSinAbortarElLote(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewImportInvoicesUseCase(repo, noopTxRunner{}, testLog)

	valida := dto.CreateInvoiceRequest{
		Number: "H-001",
		Date:   "2025-11-05",
		Lines: []dto.InvoiceLineRequest{
			{ProductName: "Crema X", Amount: pd("300"), Commission: dec("30"), Percentage: dec("10")},
		},
	}
	malformada := dto.CreateInvoiceRequest{
		Number: "H-002",
		Date:   "fecha-rota",
		Lines:  valida.Lines,
	}

	out, err := uc.Execute(context.Background(), "co-1", dto.ImportInvoicesRequest{
		Invoices: []dto.CreateInvoiceRequest{valida, malformada, valida},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 1, out.Skipped)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "H-002")
	assert.Len(t, repo.invoices, 2)
}
