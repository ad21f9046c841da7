// Package dispatch ejecuta tareas de E/S fuera del contexto de quien las solicita.
package dispatch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task es una unidad de trabajo en segundo plano. Recibe el contexto del pool, que se cancela en Close.
type Task func(ctx context.Context)

// Executor es el puerto que usan los casos de uso para despachar E/S.
type Executor interface {
	Submit(task Task)
}

// Pool ejecuta tareas en goroutines con concurrencia acotada. Submit nunca bloquea al llamador.
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	g      errgroup.Group

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// NewPool construye un pool con a lo sumo limit tareas simultáneas.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{ctx: ctx, cancel: cancel}
	p.g.SetLimit(limit)
	return p
}

// Submit encola la tarea. Si el pool está saturado la espera ocurre en otra goroutine.
// Tras Close las tareas se descartan.
func (p *Pool) Submit(task Task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	run := func() error {
		task(p.ctx)
		return nil
	}
	if p.g.TryGo(run) {
		return
	}
	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		p.g.Go(run)
	}()
}

// Close cancela el contexto de las tareas y espera a que terminen.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	p.pending.Wait()
	_ = p.g.Wait()
}

// Inline ejecuta cada tarea de forma síncrona en la goroutine del llamador (tests y herramientas CLI).
type Inline struct {
	Ctx context.Context
}

// Submit ejecuta la tarea inmediatamente.
func (i Inline) Submit(task Task) {
	ctx := i.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	task(ctx)
}
