package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

func rangoEnero() engine.DateRange {
	return engine.DateRange{From: fecha("2026-01-01"), To: fecha("2026-01-31")}
}

func rangoEneroFebrero() engine.DateRange {
	return engine.DateRange{From: fecha("2026-01-01"), To: fecha("2026-02-28")}
}

// factura sin obsequio: neto 1000, comisión 150 al 15%.
func factSimple() engine.LineFact {
	return engine.LineFact{
		ProductName:           "Crema",
		SoldUnits:             d("10"),
		GrossAmount:           d("1000"),
		NetAmount:             d("1000"),
		CommissionPaid:        d("150"),
		CommissionRatePercent: d("15"),
		InvoiceID:             "inv-001",
		InvoiceDate:           fecha("2026-01-15"),
		ClientID:              "cli-01",
		SellerID:              "ven-01",
	}
}

// Escenario: una línea sin obsequio cuadra perfecto — giftValue 0,
// comisión correcta 150, diferencia 0.
func TestAggregateFacts_FacturaSinObsequioCuadra(t *testing.T) {
	aggs, err := engine.AggregateFacts([]engine.LineFact{factSimple()}, engine.ByProduct, rangoEnero())
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	a := aggs["Crema"]
	assert.True(t, a.GiftValue.IsZero())
	assert.True(t, a.CommissionCorrect.Equal(d("150")))
	assert.True(t, a.CommissionDiff.IsZero())
	assert.Equal(t, 1, a.InvoiceCount)
}

// La comisión correcta se acumula línea a línea: dos líneas con porcentajes
// distintos jamás deben calcularse con un porcentaje promedio.
func TestAggregateFacts_ComisionCorrectaPorLinea(t *testing.T) {
	facts := []engine.LineFact{
		{ProductName: "A", NetAmount: d("1000"), CommissionRatePercent: d("10"),
			CommissionPaid: d("100"), InvoiceID: "inv-001", InvoiceDate: fecha("2026-01-05")},
		{ProductName: "A", NetAmount: d("1000"), CommissionRatePercent: d("20"),
			CommissionPaid: d("200"), InvoiceID: "inv-002", InvoiceDate: fecha("2026-01-06")},
	}

	aggs, err := engine.AggregateFacts(facts, engine.ByProduct, rangoEnero())
	require.NoError(t, err)

	a := aggs["A"]
	// 1000×10% + 1000×20% = 300. Con el promedio (15%) daría 300 también aquí,
	// así que verificamos con montos desiguales abajo.
	assert.True(t, a.CommissionCorrect.Equal(d("300")))

	facts[1].NetAmount = d("500")
	facts[1].CommissionPaid = d("100")
	aggs, err = engine.AggregateFacts(facts, engine.ByProduct, rangoEnero())
	require.NoError(t, err)
	a = aggs["A"]
	// 1000×10% + 500×20% = 200; el promedio de porcentajes (15% de 1500 = 225) sería incorrecto.
	assert.True(t, a.CommissionCorrect.Equal(d("200")),
		"la comisión correcta debe sumarse por línea, no desde el porcentaje promedio")
}

// InvoiceCount cuenta facturas distintas, no líneas.
func TestAggregateFacts_CuentaFacturasDistintas(t *testing.T) {
	facts := []engine.LineFact{
		{ProductName: "A", NetAmount: d("100"), InvoiceID: "inv-001", InvoiceDate: fecha("2026-01-05")},
		{ProductName: "A", NetAmount: d("200"), InvoiceID: "inv-001", InvoiceDate: fecha("2026-01-05")},
		{ProductName: "A", NetAmount: d("300"), InvoiceID: "inv-002", InvoiceDate: fecha("2026-01-06")},
	}

	aggs, err := engine.AggregateFacts(facts, engine.ByProduct, rangoEnero())
	require.NoError(t, err)
	assert.Equal(t, 2, aggs["A"].InvoiceCount)
}

// Hechos sin cliente/vendedor van a la clave centinela, nunca a una real.
func TestAggregateFacts_SinAsignarVaAClaveCentinela(t *testing.T) {
	facts := []engine.LineFact{
		{ProductName: "A", NetAmount: d("100"), ClientID: "cli-01",
			InvoiceID: "inv-001", InvoiceDate: fecha("2026-01-05")},
		{ProductName: "A", NetAmount: d("200"),
			InvoiceID: "inv-002", InvoiceDate: fecha("2026-01-06")},
	}

	aggs, err := engine.AggregateFacts(facts, engine.ByClient, rangoEnero())
	require.NoError(t, err)
	require.Len(t, aggs, 2)
	assert.True(t, aggs["cli-01"].NetRevenue.Equal(d("100")))
	assert.True(t, aggs[engine.KeyUnassigned].NetRevenue.Equal(d("200")))
}

// El filtro de fechas es inclusivo en ambos extremos.
func TestAggregateFacts_RangoInclusivo(t *testing.T) {
	facts := []engine.LineFact{
		{ProductName: "A", NetAmount: d("1"), InvoiceID: "i1", InvoiceDate: fecha("2026-01-01")},
		{ProductName: "A", NetAmount: d("2"), InvoiceID: "i2", InvoiceDate: fecha("2026-01-31")},
		{ProductName: "A", NetAmount: d("4"), InvoiceID: "i3", InvoiceDate: fecha("2026-02-01")},
	}

	aggs, err := engine.AggregateFacts(facts, engine.ByProduct, rangoEnero())
	require.NoError(t, err)
	assert.True(t, aggs["A"].NetRevenue.Equal(d("3")),
		"deben entrar el 1 y el 31 de enero; el 1 de febrero no")
}

// Rango invertido: única violación de contrato del agregador.
func TestAggregateFacts_RangoInvertidoFalla(t *testing.T) {
	r := engine.DateRange{From: fecha("2026-02-01"), To: fecha("2026-01-01")}
	_, err := engine.AggregateFacts(nil, engine.ByProduct, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

// Asociatividad: agregar enero y febrero por separado y sumar campo a campo
// equivale a agregar el rango completo (InvoiceCount deduplica por unión).
func TestAggregateFacts_AsociatividadPorParticiones(t *testing.T) {
	facts := []engine.LineFact{
		{ProductName: "A", NetAmount: d("700"), GrossAmount: d("1000"), SoldUnits: d("7"), GiftedUnits: d("3"),
			CommissionPaid: d("105"), CommissionRatePercent: d("15"), InvoiceID: "i1", InvoiceDate: fecha("2026-01-10")},
		{ProductName: "A", NetAmount: d("500"), GrossAmount: d("500"), SoldUnits: d("5"),
			CommissionPaid: d("80"), CommissionRatePercent: d("15"), InvoiceID: "i2", InvoiceDate: fecha("2026-02-10")},
	}

	enero := engine.DateRange{From: fecha("2026-01-01"), To: fecha("2026-01-31")}
	febrero := engine.DateRange{From: fecha("2026-02-01"), To: fecha("2026-02-28")}

	aggEne, err := engine.AggregateFacts(facts, engine.ByProduct, enero)
	require.NoError(t, err)
	aggFeb, err := engine.AggregateFacts(facts, engine.ByProduct, febrero)
	require.NoError(t, err)
	aggTotal, err := engine.AggregateFacts(facts, engine.ByProduct, rangoEneroFebrero())
	require.NoError(t, err)

	total := aggTotal["A"]
	parcialNet := aggEne["A"].NetRevenue.Add(aggFeb["A"].NetRevenue)
	parcialGift := aggEne["A"].GiftValue.Add(aggFeb["A"].GiftValue)
	parcialDiff := aggEne["A"].CommissionDiff.Add(aggFeb["A"].CommissionDiff)

	assert.True(t, total.NetRevenue.Equal(parcialNet))
	assert.True(t, total.GiftValue.Equal(parcialGift))
	assert.True(t, total.CommissionDiff.Equal(parcialDiff))
	assert.Equal(t, 2, total.InvoiceCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ratios con denominador cero
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_RatiosConDenominadorCeroSonCero(t *testing.T) {
	var a engine.Aggregate
	assert.True(t, a.GiftRatio().IsZero(), "sin unidades el ratio es 0, no NaN")
	assert.True(t, a.MarginImpact().IsZero(), "sin ingreso el impacto es 0, no NaN")
}

// ──────────────────────────────────────────────────────────────────────────────
// TopN
// ──────────────────────────────────────────────────────────────────────────────

func TestTopN_OrdenaDescendenteYDesempataPorClave(t *testing.T) {
	aggs := map[string]engine.Aggregate{
		"b": {Key: "b", NetRevenue: d("100")},
		"a": {Key: "a", NetRevenue: d("100")},
		"c": {Key: "c", NetRevenue: d("300")},
	}

	ranked := engine.TopN(aggs, engine.MetricNetRevenue, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].Key)
	assert.Equal(t, "a", ranked[1].Key, "empate resuelto por orden lexicográfico")
	assert.Equal(t, "b", ranked[2].Key)
}

func TestTopN_LimitaElResultado(t *testing.T) {
	aggs := map[string]engine.Aggregate{
		"a": {Key: "a", GiftValue: d("10")},
		"b": {Key: "b", GiftValue: d("30")},
		"c": {Key: "c", GiftValue: d("20")},
	}

	ranked := engine.TopN(aggs, engine.MetricGiftValue, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Key)
	assert.Equal(t, "c", ranked[1].Key)
}

func TestTopN_PorDiferenciaDeComision(t *testing.T) {
	aggs := map[string]engine.Aggregate{
		"ok":       {Key: "ok", CommissionDiff: decimal.Zero},
		"sobrepago": {Key: "sobrepago", CommissionDiff: d("120")},
	}

	ranked := engine.TopN(aggs, engine.MetricCommissionDiff, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, "sobrepago", ranked[0].Key)
}
