// Package observable implementa un broadcast en memoria del último valor, con múltiples suscriptores.
//
// Un Subject guarda el valor más reciente y lo entrega a cada suscriptor al suscribirse y
// luego en cada cambio. Los suscriptores lentos reciben solo el último valor pendiente.
package observable

import (
	"context"
	"sync"
)

// Event es una emisión del stream: un valor o un error de observación.
type Event[T any] struct {
	Value T
	Err   error
}

// Subject difunde el último valor publicado a todos sus suscriptores.
type Subject[T any] struct {
	mu     sync.Mutex
	value  T
	has    bool
	nextID uint64
	subs   map[uint64]chan Event[T]
	closed bool
}

// New crea un Subject sin valor inicial: los suscriptores no reciben nada hasta el primer Publish.
func New[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[uint64]chan Event[T])}
}

// NewWithValue crea un Subject con valor inicial.
func NewWithValue[T any](v T) *Subject[T] {
	s := New[T]()
	s.value = v
	s.has = true
	return s
}

// Value devuelve el último valor publicado y si existe.
func (s *Subject[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.has
}

// Publish reemplaza el valor actual y lo entrega a todos los suscriptores.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.value = v
	s.has = true
	s.broadcast(Event[T]{Value: v})
}

// Update aplica fn sobre el valor actual de forma atómica y publica el resultado.
func (s *Subject[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := fn(s.value)
	if s.closed {
		return v
	}
	s.value = v
	s.has = true
	s.broadcast(Event[T]{Value: v})
	return v
}

// PublishError entrega un error a los suscriptores sin reemplazar el último valor.
func (s *Subject[T]) PublishError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.broadcast(Event[T]{Err: err})
}

// broadcast requiere s.mu tomado. Cada canal tiene buffer 1: si está lleno se descarta
// el evento pendiente y se deja el nuevo, así Publish nunca bloquea.
func (s *Subject[T]) broadcast(ev Event[T]) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- ev
	}
}

// Subscribe registra un suscriptor. El canal recibe el valor actual (si existe) y luego cada cambio.
// La suscripción termina con Cancel o al cancelarse ctx; en ambos casos el canal se cierra.
func (s *Subject[T]) Subscribe(ctx context.Context) *Subscription[T] {
	ch := make(chan Event[T], 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return &Subscription[T]{C: ch, cancel: func() {}}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if s.has {
		ch <- Event[T]{Value: s.value}
	}
	s.mu.Unlock()

	var once sync.Once
	release := func() { once.Do(func() { s.remove(id) }) }
	stop := context.AfterFunc(ctx, release)
	return &Subscription[T]{
		C: ch,
		cancel: func() {
			stop()
			release()
		},
	}
}

// SubscribeFrom entrega first a este suscriptor antes que cualquier otro valor y luego se comporta
// como Subscribe. first nunca se pierde por conflación.
func (s *Subject[T]) SubscribeFrom(ctx context.Context, first T) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	inner := s.Subscribe(ctx)
	out := make(chan Event[T])
	go func() {
		defer close(out)
		select {
		case out <- Event[T]{Value: first}:
		case <-ctx.Done():
			return
		}
		for ev := range inner.C {
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return &Subscription[T]{
		C: out,
		cancel: func() {
			cancel()
			inner.Cancel()
		},
	}
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

// Subscribers devuelve la cantidad de suscripciones activas.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close cierra todas las suscripciones; publicaciones posteriores se ignoran.
func (s *Subject[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Subscription es el extremo receptor de un Subject.
type Subscription[T any] struct {
	C      <-chan Event[T]
	cancel func()
}

// Cancel da de baja la suscripción y cierra C. Es idempotente.
func (s *Subscription[T]) Cancel() {
	s.cancel()
}
