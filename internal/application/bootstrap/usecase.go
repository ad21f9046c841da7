// Package bootstrap decide la pantalla inicial a partir de la sesión guardada.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/navigation"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Phase etapa del arranque.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State en PhaseReady Start es la pantalla de destino; en PhaseFailed Err explica el fallo.
type State struct {
	Phase Phase
	Start navigation.Screen
	Err   error
}

// SessionReader lee el estado de la sesión guardada.
type SessionReader interface {
	Current(ctx context.Context) (entity.SessionState, error)
}

// StartDestination elige la pantalla inicial. ok=false mientras la sesión no se haya leído.
func StartDestination(s entity.SessionState) (screen navigation.Screen, ok bool) {
	switch s.Kind() {
	case entity.SessionLoggedIn:
		return navigation.ScreenMainFlow, true
	case entity.SessionLoggedOut:
		return navigation.ScreenWelcome, true
	case entity.SessionUnknown:
		return 0, false
	}
	return 0, false
}

// UseCase lee la sesión una sola vez por intento y publica la decisión.
type UseCase struct {
	session SessionReader
	exec    dispatch.Executor
	log     *logger.Logger
	state   *observable.Subject[State]
}

func NewUseCase(session SessionReader, exec dispatch.Executor, log *logger.Logger) *UseCase {
	return &UseCase{
		session: session,
		exec:    exec,
		log:     log.Component("bootstrap"),
		state:   observable.NewWithValue(State{Phase: PhaseLoading}),
	}
}

func (uc *UseCase) State() State {
	s, _ := uc.state.Value()
	return s
}

func (uc *UseCase) Watch(ctx context.Context) *observable.Subscription[State] {
	return uc.state.Subscribe(ctx)
}

// Start lanza la lectura de la sesión en segundo plano.
func (uc *UseCase) Start() {
	uc.state.Publish(State{Phase: PhaseLoading})
	uc.exec.Submit(func(ctx context.Context) {
		uc.state.Publish(uc.decide(ctx))
	})
}

// Retry vuelve a intentar tras un fallo. Sin efecto si ya hay una decisión.
func (uc *UseCase) Retry() {
	if uc.State().Phase == PhaseReady {
		return
	}
	uc.Start()
}

func (uc *UseCase) decide(ctx context.Context) State {
	st, err := uc.session.Current(ctx)
	if err != nil {
		err = fmt.Errorf("read session: %w", err)
		uc.log.Error().Err(err).Msg("no se pudo leer la sesión")
		return State{Phase: PhaseFailed, Err: err}
	}
	screen, ok := StartDestination(st)
	if !ok {
		err := fmt.Errorf("read session: estado %s sin resolver", st.Kind())
		uc.log.Error().Err(err).Msg("no se pudo leer la sesión")
		return State{Phase: PhaseFailed, Err: err}
	}
	uc.log.Info().Str("start", screen.Route()).Str("session", st.Kind().String()).Msg("pantalla inicial decidida")
	return State{Phase: PhaseReady, Start: screen}
}

// Close libera a los suscriptores.
func (uc *UseCase) Close() {
	uc.state.Close()
}
