package observable

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv[T any](t *testing.T, sub *Subscription[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		require.True(t, ok, "el canal no debe estar cerrado")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando evento")
	}
	return Event[T]{}
}

func assertNoEvent[T any](t *testing.T, sub *Subscription[T]) {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		if ok {
			t.Fatalf("evento inesperado: %+v", ev)
		}
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSubject_SinValorInicialNoEmite(t *testing.T) {
	s := New[int]()
	sub := s.Subscribe(context.Background())
	defer sub.Cancel()

	assertNoEvent(t, sub)

	s.Publish(7)
	assert.Equal(t, 7, recv(t, sub).Value)
}

func TestSubject_EmiteValorActualAlSuscribirse(t *testing.T) {
	s := NewWithValue("a")
	s.Publish("b")

	sub := s.Subscribe(context.Background())
	defer sub.Cancel()

	assert.Equal(t, "b", recv(t, sub).Value)
}

func TestSubject_SuscriptorLentoRecibeUltimoValor(t *testing.T) {
	s := NewWithValue(0)
	sub := s.Subscribe(context.Background())
	defer sub.Cancel()

	for i := 1; i <= 10; i++ {
		s.Publish(i)
	}
	assert.Equal(t, 10, recv(t, sub).Value)
	assertNoEvent(t, sub)
}

func TestSubject_PublishErrorNoReemplazaValor(t *testing.T) {
	s := NewWithValue(1)
	sub := s.Subscribe(context.Background())
	defer sub.Cancel()
	recv(t, sub)

	boom := errors.New("boom")
	s.PublishError(boom)
	ev := recv(t, sub)
	assert.ErrorIs(t, ev.Err, boom)

	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	s.Publish(2)
	assert.Equal(t, 2, recv(t, sub).Value)
}

func TestSubject_CancelCierraCanalYLibera(t *testing.T) {
	s := NewWithValue(1)
	sub := s.Subscribe(context.Background())
	recv(t, sub)
	require.Equal(t, 1, s.Subscribers())

	sub.Cancel()
	sub.Cancel()

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.Equal(t, 0, s.Subscribers())

	s.Publish(2) // no debe entrar en pánico por canal cerrado
}

func TestSubject_ContextoCanceladoTerminaSuscripcion(t *testing.T) {
	s := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	sub := s.Subscribe(ctx)

	cancel()
	select {
	case _, ok := <-sub.C:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("la suscripción no terminó al cancelar el contexto")
	}
	assert.Eventually(t, func() bool { return s.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSubject_Update(t *testing.T) {
	s := NewWithValue(10)
	got := s.Update(func(v int) int { return v + 5 })
	assert.Equal(t, 15, got)

	v, _ := s.Value()
	assert.Equal(t, 15, v)
}

func TestSubject_CloseCierraSuscriptores(t *testing.T) {
	s := NewWithValue(1)
	sub := s.Subscribe(context.Background())
	recv(t, sub)

	s.Close()
	_, ok := <-sub.C
	assert.False(t, ok)

	late := s.Subscribe(context.Background())
	_, ok = <-late.C
	assert.False(t, ok)
}

func TestSubject_PublicacionesConcurrentes(t *testing.T) {
	s := NewWithValue(0)
	subs := make([]*Subscription[int], 5)
	for i := range subs {
		subs[i] = s.Subscribe(context.Background())
	}

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Update(func(cur int) int { return cur + 1 })
		}(i)
	}
	wg.Wait()

	v, _ := s.Value()
	assert.Equal(t, 50, v)
	for _, sub := range subs {
		assert.Equal(t, 50, recv(t, sub).Value)
		sub.Cancel()
	}
}

func TestSubject_SubscribeFromEntregaPrimeroElInicial(t *testing.T) {
	s := New[string]()
	sub := s.SubscribeFrom(context.Background(), "cargando")
	defer sub.Cancel()

	s.Publish("a")
	s.Publish("b")

	assert.Equal(t, "cargando", recv(t, sub).Value)
	assert.Equal(t, "b", recv(t, sub).Value)
}

func TestSubject_SubscribeFromCancelCierra(t *testing.T) {
	s := NewWithValue(1)
	sub := s.SubscribeFrom(context.Background(), 0)
	sub.Cancel()

	for range sub.C {
	}
	assert.Eventually(t, func() bool { return s.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}
