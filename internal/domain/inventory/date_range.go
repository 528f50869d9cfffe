package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almoxarifado/internal/domain"
)

const dayLayout = "2006-01-02"

// DateRange intervalo [Start, End) en UTC que cubre los días completos seleccionados.
type DateRange struct {
	Start time.Time
	End   time.Time // exclusivo: inicio del día siguiente a la fecha final
}

// ParseDateRange interpreta dos fechas YYYY-MM-DD. Ambas son obligatorias.
func ParseDateRange(start, end string) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, domain.ErrInvalidRange
	}
	s, err := time.ParseInLocation(dayLayout, start, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("fecha inicial %q: %w", start, domain.ErrInvalidRange)
	}
	e, err := time.ParseInLocation(dayLayout, end, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("fecha final %q: %w", end, domain.ErrInvalidRange)
	}
	return DateRange{Start: s, End: e.AddDate(0, 0, 1)}, nil
}

// Contains indica si t cae dentro del intervalo.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Label devuelve "inicio a fim" con el layout indicado.
func (r DateRange) Label(layout string) string {
	return r.Start.Format(layout) + " a " + r.End.AddDate(0, 0, -1).Format(layout)
}
