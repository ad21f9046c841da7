// Package changefeed difunde avisos de escritura de los adaptadores de persistencia.
package changefeed

import (
	"context"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

var _ repository.ChangeFeed = (*Notifier)(nil)

// Notifier mantiene un Subject por tabla.
type Notifier struct {
	mu       sync.Mutex
	subjects map[string]*observable.Subject[repository.Change]
	versions map[string]uint64
	closed   bool
}

// New construye un notificador vacío.
func New() *Notifier {
	return &Notifier{
		subjects: make(map[string]*observable.Subject[repository.Change]),
		versions: make(map[string]uint64),
	}
}

func (n *Notifier) subject(table string) *observable.Subject[repository.Change] {
	s, ok := n.subjects[table]
	if !ok {
		s = observable.New[repository.Change]()
		if n.closed {
			s.Close()
		}
		n.subjects[table] = s
	}
	return s
}

// Notify publica un aviso para la tabla.
func (n *Notifier) Notify(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.versions[table]++
	n.subject(table).Publish(repository.Change{Table: table, Version: n.versions[table]})
}

// Changes se suscribe a los avisos de una tabla. Solo recibe escrituras posteriores a la suscripción
// si aún no hubo ninguna; si ya las hubo, recibe de inmediato el último aviso.
func (n *Notifier) Changes(ctx context.Context, table string) *observable.Subscription[repository.Change] {
	n.mu.Lock()
	s := n.subject(table)
	n.mu.Unlock()
	return s.Subscribe(ctx)
}

// Version devuelve la cantidad de escrituras notificadas para la tabla.
func (n *Notifier) Version(table string) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.versions[table]
}

// Close cierra todas las suscripciones.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for _, s := range n.subjects {
		s.Close()
	}
}
