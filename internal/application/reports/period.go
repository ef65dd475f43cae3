package reports

import (
	"fmt"
	"time"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

const (
	defaultTopN = 20
	maxTopN     = 200
)

// parsePeriod resuelve el rango de fechas de la consulta. Sin parámetros se
// usa el mes calendario en curso. end_date se extiende al último instante del
// día para que el rango sea inclusivo. Rango invertido → ErrInvalidDateRange.
func parsePeriod(startDate, endDate string, now time.Time) (engine.DateRange, error) {
	if startDate == "" && endDate == "" {
		return engine.MonthOf(now), nil
	}

	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return engine.DateRange{}, fmt.Errorf("%w: start_date inválida %q", domain.ErrInvalidInput, startDate)
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return engine.DateRange{}, fmt.Errorf("%w: end_date inválida %q", domain.ErrInvalidInput, endDate)
	}

	r := engine.DateRange{From: from, To: to.AddDate(0, 0, 1).Add(-time.Nanosecond)}
	if err := r.Validate(); err != nil {
		return engine.DateRange{}, err
	}
	return r, nil
}

// clampTopN aplica el default y el tope del parámetro top_n.
func clampTopN(n int) int {
	if n <= 0 {
		return defaultTopN
	}
	if n > maxTopN {
		return maxTopN
	}
	return n
}

func toPeriodDTO(r engine.DateRange) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: r.From.Format("2006-01-02"),
		EndDate:   r.To.Format("2006-01-02"),
	}
}
