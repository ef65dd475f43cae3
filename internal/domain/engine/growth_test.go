package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

func TestCompareGrowth_CrecimientoNormal(t *testing.T) {
	g := engine.CompareGrowth(d("300"), d("200"))
	assert.True(t, g.GrowthPercent.Equal(d("50")), "de 200 a 300 es +50%%, se obtuvo %s", g.GrowthPercent)
}

func TestCompareGrowth_Caida(t *testing.T) {
	g := engine.CompareGrowth(d("100"), d("200"))
	assert.True(t, g.GrowthPercent.Equal(d("-50")))
}

// Contrato duro del comparador: previo 0 nunca produce NaN ni infinito.
func TestCompareGrowth_PrevioCero(t *testing.T) {
	tests := []struct {
		nombre   string
		current  string
		previous string
		want     string
	}{
		{"previo 0 con venta actual", "500", "0", "100"},
		{"previo 0 sin venta actual", "0", "0", "0"},
		{"caída total a cero", "0", "500", "-100"},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			g := engine.CompareGrowth(d(tc.current), d(tc.previous))
			assert.True(t, g.GrowthPercent.Equal(d(tc.want)),
				"esperado %s, se obtuvo %s", tc.want, g.GrowthPercent)
		})
	}
}

// Propiedad: para cualquier par no negativo el resultado es finito y definido
// (con decimal no hay NaN posible; verificamos que no haya pánico por
// división entre cero en una rejilla de valores).
func TestCompareGrowth_SinDegeneracionNumerica(t *testing.T) {
	valores := []string{"0", "0.01", "1", "999999.99"}
	for _, c := range valores {
		for _, p := range valores {
			g := engine.CompareGrowth(d(c), d(p))
			assert.True(t, g.Current.Equal(d(c)))
			assert.True(t, g.Previous.Equal(d(p)))
		}
	}
}
