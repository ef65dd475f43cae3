package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

func TestDateRange_PreviousEsDisjuntoYDeIgualDuracion(t *testing.T) {
	r := engine.DateRange{From: fecha("2026-02-01"), To: fecha("2026-02-15")}
	prev := r.Previous()

	assert.True(t, prev.To.Before(r.From), "la ventana anterior termina antes de empezar la actual")
	assert.Equal(t, r.To.Sub(r.From), prev.To.Sub(prev.From))
	require.NoError(t, prev.Validate())
}

func TestMonthOf_CubreElMesCompleto(t *testing.T) {
	r := engine.MonthOf(fecha("2026-02-10"))

	assert.True(t, r.Contains(fecha("2026-02-01")))
	assert.True(t, r.Contains(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(fecha("2026-03-01")))
	assert.False(t, r.Contains(fecha("2026-01-31")))
}

func TestPreviousMonthOf_RespetaMesesDesiguales(t *testing.T) {
	r := engine.PreviousMonthOf(fecha("2026-03-15"))

	assert.True(t, r.Contains(fecha("2026-02-01")))
	assert.True(t, r.Contains(fecha("2026-02-28")))
	assert.False(t, r.Contains(fecha("2026-03-01")))
}
