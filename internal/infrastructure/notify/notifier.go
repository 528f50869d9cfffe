// Package notify implementa el Notifier: registra cada aviso en el log y lo guarda en
// un buffer circular que la interfaz consulta (equivalente a los "toasts").
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/application/ports"
)

var _ ports.Notifier = (*Feed)(nil)

// Notification aviso emitido al usuario.
type Notification struct {
	Seq     int64                   `json:"seq"`
	Level   ports.NotificationLevel `json:"level"`
	Message string                  `json:"message"`
	At      time.Time               `json:"at"`
}

// Feed buffer de los últimos avisos.
type Feed struct {
	mu    sync.Mutex
	log   zerolog.Logger
	items []Notification
	size  int
	seq   int64
	now   func() time.Time
}

// NewFeed construye el feed con capacidad size (mínimo 1).
func NewFeed(size int, log zerolog.Logger) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{log: log, size: size, now: time.Now}
}

// Notify implementa ports.Notifier.
func (f *Feed) Notify(level ports.NotificationLevel, message string) {
	f.mu.Lock()
	f.seq++
	n := Notification{Seq: f.seq, Level: level, Message: message, At: f.now()}
	f.items = append(f.items, n)
	if len(f.items) > f.size {
		f.items = f.items[len(f.items)-f.size:]
	}
	f.mu.Unlock()

	ev := f.log.Info()
	if level == ports.NotifyError {
		ev = f.log.Warn()
	}
	ev.Str("level", string(level)).Msg(message)
}

// Since devuelve los avisos con Seq mayor que after, del más antiguo al más nuevo.
func (f *Feed) Since(after int64) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, 0, len(f.items))
	for _, n := range f.items {
		if n.Seq > after {
			out = append(out, n)
		}
	}
	return out
}
