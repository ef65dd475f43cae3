package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

// Con datos que disparan todos los hallazgos, la lista sale completa y en el
// orden fijo definido por el generador.
func TestGenerateInsights_TodosLosHallazgosEnOrden(t *testing.T) {
	byProduct := map[string]engine.Aggregate{
		"Crema": {Key: "Crema", SoldUnits: d("2"), GiftedUnits: d("5"),
			NetRevenue: d("200"), GiftValue: d("500")},
		"Shampoo": {Key: "Shampoo", SoldUnits: d("50"), GiftedUnits: d("1"),
			NetRevenue: d("5000"), GiftValue: d("100")},
	}
	bySeller := map[string]engine.Aggregate{
		"ven-01": {Key: "ven-01", GiftValue: d("450")},
		"ven-02": {Key: "ven-02", GiftValue: d("150")},
	}
	recon := engine.Reconciliation{TotalPaid: d("900"), TotalCorrect: d("700"), Diff: d("200")}

	insights := engine.GenerateInsights(byProduct, bySeller, recon, th)
	require.Len(t, insights, 5)

	assert.Contains(t, insights[0], "ven-01", "el primer hallazgo es el vendedor que más regala")
	assert.Contains(t, insights[0], "75%", "450 de 600 es el 75%%")
	assert.Contains(t, insights[1], "Crema", "el producto más regalado tiene más obsequios que ventas")
	assert.Contains(t, insights[2], "600", "valor total obsequiado del período")
	assert.Contains(t, insights[3], "300", "proyección al reducir obsequios a la mitad")
	assert.Contains(t, insights[4], "requiere revisión")
}

// Sin obsequios ni diferencias no hay hallazgos: lista vacía, no error.
func TestGenerateInsights_SinDisparadoresListaVacia(t *testing.T) {
	byProduct := map[string]engine.Aggregate{
		"Crema": {Key: "Crema", SoldUnits: d("10"), NetRevenue: d("1000")},
	}
	bySeller := map[string]engine.Aggregate{
		"ven-01": {Key: "ven-01", NetRevenue: d("1000")},
	}
	recon := engine.Reconciliation{TotalPaid: d("150"), TotalCorrect: d("150")}

	insights := engine.GenerateInsights(byProduct, bySeller, recon, th)
	assert.Empty(t, insights)
}

// El producto más regalado puede seguir vendiendo más de lo que regala: en
// ese caso el hallazgo de bandera roja no se emite.
func TestGenerateInsights_SinBanderaRojaCuandoVendeMasDeLoQueRegala(t *testing.T) {
	byProduct := map[string]engine.Aggregate{
		"Shampoo": {Key: "Shampoo", SoldUnits: d("50"), GiftedUnits: d("5"),
			NetRevenue: d("5000"), GiftValue: d("500")},
	}
	bySeller := map[string]engine.Aggregate{
		"ven-01": {Key: "ven-01", GiftValue: d("500")},
	}
	recon := engine.Reconciliation{}

	insights := engine.GenerateInsights(byProduct, bySeller, recon, th)
	for _, in := range insights {
		assert.NotContains(t, in, "Alerta")
	}
}
