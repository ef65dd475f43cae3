package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

var th = engine.DefaultThresholds()

// ──────────────────────────────────────────────────────────────────────────────
// Producto / vendedor
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyProduct_SinObsequioEsSaludable(t *testing.T) {
	a := engine.Aggregate{SoldUnits: d("10"), NetRevenue: d("1000")}
	assert.Equal(t, engine.StatusHealthy, engine.ClassifyProduct(a, th))
}

// Escenario de frontera: 7 vendidas, 3 obsequiadas ⇒ ratio exactamente 0.30,
// que NO supera el umbral de danger por ratio; pero el impacto en margen
// (300/1000 = 0.30 > 0.25) sí lo escala a danger.
func TestClassifyProduct_FronteraRatioEscalaPorMargen(t *testing.T) {
	a := engine.Aggregate{
		SoldUnits:   d("7"),
		GiftedUnits: d("3"),
		NetRevenue:  d("700"),
		GiftValue:   d("300"),
	}
	assert.True(t, a.GiftRatio().Equal(decimal.NewFromFloat(0.3)))
	assert.Equal(t, engine.StatusDanger, engine.ClassifyProduct(a, th),
		"el impacto en margen 0.30 > 0.25 domina sobre el ratio en frontera")
}

// Ratio exactamente 0.30 con margen bajo queda en watch (0.30 > 0.15 pero no > 0.30).
func TestClassifyProduct_RatioEnFronteraEsWatch(t *testing.T) {
	a := engine.Aggregate{
		SoldUnits:   d("7"),
		GiftedUnits: d("3"),
		NetRevenue:  d("10000"),
		GiftValue:   d("300"),
	}
	assert.Equal(t, engine.StatusWatch, engine.ClassifyProduct(a, th))
}

func TestClassifyProduct_RatioAltoEsDanger(t *testing.T) {
	a := engine.Aggregate{SoldUnits: d("5"), GiftedUnits: d("5"), NetRevenue: d("100000")}
	assert.Equal(t, engine.StatusDanger, engine.ClassifyProduct(a, th))
}

// Monotonicidad: subir el ratio de obsequio manteniendo fijo el impacto en
// margen nunca baja el estado de danger a watch/healthy.
func TestClassifyProduct_MonotoniaDelRatio(t *testing.T) {
	orden := map[engine.Status]int{
		engine.StatusHealthy: 0,
		engine.StatusWatch:   1,
		engine.StatusDanger:  2,
	}

	previo := -1
	// Margen fijo en cero (sin valor obsequiado); el ratio sube de 0% a 50%.
	for _, gifted := range []string{"0", "1", "2", "3", "4", "5", "7", "10"} {
		a := engine.Aggregate{
			SoldUnits:   d("10"),
			GiftedUnits: d(gifted),
			NetRevenue:  d("1000"),
		}
		actual := orden[engine.ClassifyProduct(a, th)]
		assert.GreaterOrEqual(t, actual, previo,
			"con %s obsequiadas el estado retrocedió", gifted)
		previo = actual
	}
}

func TestClassifySeller_MismaReglaQueProducto(t *testing.T) {
	a := engine.Aggregate{
		SoldUnits:   d("7"),
		GiftedUnits: d("3"),
		NetRevenue:  d("700"),
		GiftValue:   d("300"),
	}
	assert.Equal(t, engine.ClassifyProduct(a, th), engine.ClassifySeller(a, th))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyClient(t *testing.T) {
	tests := []struct {
		nombre   string
		current  string
		previous string
		want     engine.ClientStatus
	}{
		{"ambos períodos en cero es inactivo", "0", "0", engine.ClientInactive},
		// Decisión definicional: actual 0 con previo positivo NO es inactivo,
		// cae en declining porque la condición "ambos cero" no se cumple.
		{"actual cero con previo positivo declina", "0", "500", engine.ClientDeclining},
		{"crecimiento sobre el umbral", "600", "500", engine.ClientGrowing},
		{"caída bajo el umbral", "400", "500", engine.ClientDeclining},
		{"variación leve es estable", "520", "500", engine.ClientStable},
		{"crecimiento exactamente 10%% es estable", "550", "500", engine.ClientStable},
		{"cliente nuevo crece desde cero", "100", "0", engine.ClientGrowing},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			g := engine.CompareGrowth(d(tc.current), d(tc.previous))
			assert.Equal(t, tc.want, engine.ClassifyClient(g, th))
		})
	}
}
