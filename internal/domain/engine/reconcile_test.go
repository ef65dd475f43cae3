package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

// Convención de signo: Diff > 0 si y solo si lo pagado excede lo recalculado.
func TestReconcile_ConvencionDeSigno(t *testing.T) {
	sobrepagado := []engine.LineFact{
		{NetAmount: d("1000"), CommissionRatePercent: d("10"), CommissionPaid: d("150")},
	}
	rec := engine.Reconcile(sobrepagado)
	assert.True(t, rec.Diff.Equal(d("50")), "pagó 150 sobre 100 correctos: diff +50")

	subpagado := []engine.LineFact{
		{NetAmount: d("1000"), CommissionRatePercent: d("10"), CommissionPaid: d("80")},
	}
	rec = engine.Reconcile(subpagado)
	assert.True(t, rec.Diff.Equal(d("-20")), "pagó 80 sobre 100 correctos: diff -20")
}

func TestReconcile_SumaVariosHechos(t *testing.T) {
	facts := []engine.LineFact{
		{NetAmount: d("1000"), CommissionRatePercent: d("15"), CommissionPaid: d("150")},
		{NetAmount: d("500"), CommissionRatePercent: d("10"), CommissionPaid: d("60")},
	}
	rec := engine.Reconcile(facts)
	assert.True(t, rec.TotalCorrect.Equal(d("200")))
	assert.True(t, rec.TotalPaid.Equal(d("210")))
	assert.True(t, rec.Diff.Equal(d("10")))
}

func TestReconcile_VacioEsCero(t *testing.T) {
	rec := engine.Reconcile(nil)
	assert.True(t, rec.TotalPaid.IsZero())
	assert.True(t, rec.TotalCorrect.IsZero())
	assert.True(t, rec.Diff.IsZero())
}

// El umbral de revisión compara la magnitud: sobrepagos y subpagos grandes
// se marcan por igual; el valor exactamente en el umbral no dispara.
func TestReconciliation_RequiresReview(t *testing.T) {
	umbral := d("100")

	assert.False(t, engine.Reconciliation{Diff: d("100")}.RequiresReview(umbral),
		"exactamente en el umbral no requiere revisión")
	assert.True(t, engine.Reconciliation{Diff: d("100.01")}.RequiresReview(umbral))
	assert.True(t, engine.Reconciliation{Diff: d("-150")}.RequiresReview(umbral),
		"los subpagos grandes también se revisan")
	assert.False(t, engine.Reconciliation{Diff: d("-40")}.RequiresReview(umbral))
}
