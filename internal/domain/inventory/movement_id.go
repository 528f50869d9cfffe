package inventory

import (
	"strconv"
	"strings"
	"time"
)

// MovementIDPrefix prefijo de los IDs de movimiento.
const MovementIDPrefix = "M"

// MovementIDs genera IDs "M" + milisegundos Unix, estrictamente crecientes aunque
// dos movimientos caigan en el mismo milisegundo.
type MovementIDs struct {
	last int64
}

// Observe registra un ID existente para que los siguientes sean mayores.
func (g *MovementIDs) Observe(id string) {
	if !strings.HasPrefix(id, MovementIDPrefix) {
		return
	}
	n, err := strconv.ParseInt(id[len(MovementIDPrefix):], 10, 64)
	if err == nil && n > g.last {
		g.last = n
	}
}

// Next devuelve un ID nuevo para el instante now.
func (g *MovementIDs) Next(now time.Time) string {
	token := now.UnixMilli()
	if token <= g.last {
		token = g.last + 1
	}
	g.last = token
	return MovementIDPrefix + strconv.FormatInt(token, 10)
}
