package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Nombre y clave del almacén de sesión.
const (
	SessionStoreName = "session"
	KeyLoggedInEmail = "logged_in_user_email"
)

// SessionStore persiste el email del usuario con sesión iniciada.
// El valor se lee del KV la primera vez que alguien lo observa o lo consulta.
type SessionStore struct {
	kv    KV
	log   *logger.Logger
	mu    sync.Mutex // serializa lectura inicial y escrituras
	state *observable.Subject[entity.SessionState]
}

// NewSessionStore construye el almacén sobre kv.
func NewSessionStore(kv KV, log *logger.Logger) *SessionStore {
	return &SessionStore{
		kv:    kv,
		log:   log.Component("session_store"),
		state: observable.New[entity.SessionState](),
	}
}

// Watch emite primero SessionUnknown y luego el estado leído y cada cambio posterior.
func (s *SessionStore) Watch(ctx context.Context) *observable.Subscription[entity.SessionState] {
	sub := s.state.SubscribeFrom(ctx, entity.UnknownSession())
	if _, ok := s.state.Value(); !ok {
		go func() {
			if _, err := s.load(context.WithoutCancel(ctx)); err != nil {
				s.log.Error().Err(err).Msg("no se pudo leer la sesión")
				s.state.PublishError(err)
			}
		}()
	}
	return sub
}

// Current devuelve el estado leído (nunca SessionUnknown salvo error).
func (s *SessionStore) Current(ctx context.Context) (entity.SessionState, error) {
	if v, ok := s.state.Value(); ok {
		return v, nil
	}
	return s.load(ctx)
}

func (s *SessionStore) load(ctx context.Context) (entity.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Una escritura pudo ganar la carrera; su valor es más nuevo que el del KV.
	if v, ok := s.state.Value(); ok {
		return v, nil
	}
	email, ok, err := s.kv.Get(ctx, KeyLoggedInEmail)
	if err != nil {
		return entity.UnknownSession(), fmt.Errorf("%w: leer sesión: %w", domain.ErrStore, err)
	}
	st := entity.LoggedOutSession()
	if ok {
		st = entity.LoggedInSession(email)
	}
	s.state.Publish(st)
	return st, nil
}

// SaveUserSession guarda el email y notifica a los observadores.
func (s *SessionStore) SaveUserSession(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyLoggedInEmail, email); err != nil {
		return fmt.Errorf("%w: guardar sesión: %w", domain.ErrStore, err)
	}
	s.state.Publish(entity.LoggedInSession(email))
	s.log.Info().Str("email", email).Msg("sesión guardada")
	return nil
}

// ClearUserSession elimina la clave; los observadores pasan a SessionLoggedOut.
func (s *SessionStore) ClearUserSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, KeyLoggedInEmail); err != nil {
		return fmt.Errorf("%w: cerrar sesión: %w", domain.ErrStore, err)
	}
	s.state.Publish(entity.LoggedOutSession())
	s.log.Info().Msg("sesión cerrada")
	return nil
}

// Close termina las suscripciones abiertas.
func (s *SessionStore) Close() {
	s.state.Close()
}
