package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

func newLogin(users UserStore, exec dispatch.Executor) *LoginUseCase {
	return NewLoginUseCase(users, prefixVerifier{}, exec, logger.Nop())
}

func storedUsers() *fakeUsers {
	return newFakeUsers(entity.User{Email: "a@b.com", Password: "hash:secret1", FullName: "Ana Pérez"})
}

func TestLogin_ValidacionPorCampo(t *testing.T) {
	uc := newLogin(storedUsers(), dispatch.Inline{})
	assert.Equal(t, PhaseIdle, uc.State().Form.Phase)

	uc.SetEmail("no-es-correo")
	assert.Equal(t, "Formato de correo inválido", uc.State().EmailError)
	assert.Equal(t, PhaseEditing, uc.State().Form.Phase)

	uc.SetEmail("")
	assert.Empty(t, uc.State().EmailError)

	uc.SetPassword("123")
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", uc.State().PasswordError)
	uc.SetPassword("secret1")
	assert.Empty(t, uc.State().PasswordError)
}

func TestLogin_Resultados(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"correcto", "a@b.com", "secret1", nil},
		{"contraseña incorrecta", "a@b.com", "secret2", domain.ErrWrongPassword},
		{"usuario desconocido", "x@b.com", "secret1", domain.ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newLogin(storedUsers(), dispatch.Inline{})
			uc.SetEmail(tc.email)
			uc.SetPassword(tc.password)

			var r result
			uc.Login(r.callbacks())
			require.Equal(t, 1, r.n)
			if tc.wantErr == nil {
				assert.True(t, r.ok)
				assert.Equal(t, PhaseSucceeded, uc.State().Form.Phase)
				return
			}
			assert.ErrorIs(t, r.err, tc.wantErr)
			assert.Equal(t, PhaseFailed, uc.State().Form.Phase)
			assert.ErrorIs(t, uc.State().Form.Err, tc.wantErr)
		})
	}
}

func TestLogin_NoEncontradoDistintoDeContraseñaIncorrecta(t *testing.T) {
	uc := newLogin(storedUsers(), dispatch.Inline{})
	var wrong, missing result

	uc.SetEmail("a@b.com")
	uc.SetPassword("secret9")
	uc.Login(wrong.callbacks())

	uc.SetEmail("z@b.com")
	uc.Login(missing.callbacks())

	assert.NotEqual(t, domain.Message(wrong.err), domain.Message(missing.err))
	assert.Equal(t, "Contraseña incorrecta.", domain.Message(wrong.err))
	assert.Equal(t, "Usuario no encontrado.", domain.Message(missing.err))
}

func TestLogin_FormularioInvalidoNoConsultaAlmacenamiento(t *testing.T) {
	users := storedUsers()
	uc := newLogin(users, dispatch.Inline{})
	uc.SetEmail("a@b.com")

	var r result
	uc.Login(r.callbacks())
	assert.ErrorIs(t, r.err, domain.ErrInvalidLogin)
	assert.Equal(t, 0, users.callCount())
	assert.Equal(t, PhaseFailed, uc.State().Form.Phase)

	uc.SetPassword("secret1")
	assert.Equal(t, PhaseEditing, uc.State().Form.Phase)
}

func TestLogin_FallaDeAlmacenamiento(t *testing.T) {
	users := storedUsers()
	users.failErr = fmt.Errorf("%w: database is locked", domain.ErrStore)
	uc := newLogin(users, dispatch.Inline{})
	uc.SetEmail("a@b.com")
	uc.SetPassword("secret1")

	var r result
	uc.Login(r.callbacks())
	assert.ErrorIs(t, r.err, domain.ErrStore)
	assert.Equal(t, "Error al guardar los cambios", domain.Message(r.err))
}

func TestLogin_EnvioEnCurso(t *testing.T) {
	exec := &deferredExec{}
	uc := newLogin(storedUsers(), exec)
	uc.SetEmail("a@b.com")
	uc.SetPassword("secret1")

	var first, second result
	uc.Login(first.callbacks())
	assert.Equal(t, PhaseSubmitting, uc.State().Form.Phase)

	uc.Login(second.callbacks())
	assert.ErrorIs(t, second.err, domain.ErrSubmitInProgress)

	exec.runAll()
	assert.True(t, first.ok)
	assert.Equal(t, PhaseSucceeded, uc.State().Form.Phase)
}
