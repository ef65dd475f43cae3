package engine

import (
	"fmt"
	"time"

	"github.com/ventapro/comisiona-api/internal/domain"
)

// DateRange es una ventana de tiempo cerrada en ambos extremos.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate rechaza rangos invertidos (From posterior a To). Es la única
// violación de contrato del agregador: se falla ruidosamente en vez de
// producir agregados sin sentido.
func (r DateRange) Validate() error {
	if r.From.After(r.To) {
		return fmt.Errorf("%w: from (%s) posterior a to (%s)",
			domain.ErrInvalidDateRange,
			r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	}
	return nil
}

// Contains indica si t cae dentro del rango, inclusive en ambos extremos.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Previous devuelve la ventana inmediatamente anterior de igual duración,
// disjunta de la actual. Se usa para comparativos periodo contra periodo.
func (r DateRange) Previous() DateRange {
	length := r.To.Sub(r.From)
	to := r.From.Add(-time.Nanosecond)
	return DateRange{From: to.Add(-length), To: to}
}

// MonthOf devuelve el rango calendario completo del mes que contiene t
// (día 1 a las 00:00 hasta el último instante del mes).
func MonthOf(t time.Time) DateRange {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateRange{From: from, To: from.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// PreviousMonthOf devuelve el rango calendario del mes anterior al que
// contiene t. A diferencia de Previous, respeta longitudes de mes desiguales.
func PreviousMonthOf(t time.Time) DateRange {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return MonthOf(first.AddDate(0, 0, -1))
}
