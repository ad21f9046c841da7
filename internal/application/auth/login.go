// Package auth contiene los formularios de ingreso, registro, edición de perfil y el cierre de sesión.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/application/dto"
	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// LoginState estado del formulario de ingreso. Un error de campo vacío significa válido.
type LoginState struct {
	Email         string
	Password      string
	EmailError    string
	PasswordError string
	Form          FormStatus
}

// LoginUseCase valida credenciales contra los usuarios guardados. No escribe la sesión:
// eso le corresponde a quien recibe onSuccess.
type LoginUseCase struct {
	users    UserStore
	verifier PasswordVerifier
	exec     dispatch.Executor
	log      *logger.Logger
	state    *observable.Subject[LoginState]
	form     form[LoginState]
}

func NewLoginUseCase(users UserStore, verifier PasswordVerifier, exec dispatch.Executor, log *logger.Logger) *LoginUseCase {
	state := observable.NewWithValue(LoginState{})
	return &LoginUseCase{
		users:    users,
		verifier: verifier,
		exec:     exec,
		log:      log.Component("login"),
		state:    state,
		form:     form[LoginState]{state: state, status: func(s *LoginState) *FormStatus { return &s.Form }},
	}
}

func (uc *LoginUseCase) State() LoginState {
	s, _ := uc.state.Value()
	return s
}

func (uc *LoginUseCase) Watch(ctx context.Context) *observable.Subscription[LoginState] {
	return uc.state.Subscribe(ctx)
}

// SetEmail acepta vacío o un correo con formato válido.
func (uc *LoginUseCase) SetEmail(email string) {
	email = normalize(email)
	uc.form.edit(func(s *LoginState) {
		s.Email = email
		s.EmailError = loginEmailRule.check(email)
	})
}

// SetPassword exige al menos 6 caracteres.
func (uc *LoginUseCase) SetPassword(password string) {
	uc.form.edit(func(s *LoginState) {
		s.Password = password
		s.PasswordError = loginPasswordRule.check(password)
	})
}

func (s LoginState) valid() bool {
	req := dto.LoginRequest{Email: s.Email, Password: s.Password}
	return allEmpty(s.EmailError, s.PasswordError) && dto.Validator().Struct(req) == nil
}

// Login busca al usuario y compara la contraseña en segundo plano. Los callbacks corren en el pool
// de tareas. Errores posibles: domain.ErrInvalidLogin, domain.ErrUserNotFound, domain.ErrWrongPassword,
// domain.ErrSubmitInProgress o una falla de almacenamiento.
func (uc *LoginUseCase) Login(onSuccess func(), onError func(error)) {
	if !uc.State().valid() {
		uc.form.reject(domain.ErrInvalidLogin)
		notify(domain.ErrInvalidLogin, onSuccess, onError)
		return
	}
	snapshot, ok := uc.form.begin()
	if !ok {
		notify(domain.ErrSubmitInProgress, onSuccess, onError)
		return
	}

	op := newOpID()
	uc.exec.Submit(func(ctx context.Context) {
		err := uc.authenticate(ctx, snapshot.Email, snapshot.Password)
		log := uc.log.With().Str("op", op).Str("email", snapshot.Email).Logger()
		if err != nil {
			log.Warn().Err(err).Msg("ingreso rechazado")
		} else {
			log.Info().Msg("ingreso correcto")
		}
		uc.form.finish(err, nil)
		notify(err, onSuccess, onError)
	})
}

func (uc *LoginUseCase) authenticate(ctx context.Context, email, password string) error {
	user, err := uc.users.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.verifier.Compare(user.Password, password); err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			return domain.ErrWrongPassword
		}
		return fmt.Errorf("login: %w", err)
	}
	return nil
}
