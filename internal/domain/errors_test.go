package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"conflicto envuelto", fmt.Errorf("insert user: %w", ErrEmailAlreadyExists), "El correo ya está registrado."},
		{"usuario no encontrado", ErrUserNotFound, "Usuario no encontrado."},
		{"contraseña incorrecta", ErrWrongPassword, "Contraseña incorrecta."},
		{"formulario inválido", ErrInvalidForm, "El formulario contiene errores o datos incompletos."},
		{"falla de almacenamiento", fmt.Errorf("%w: disk full", ErrStore), "Error al guardar los cambios"},
		{"desconocido", errors.New("boom"), MsgUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Message(tc.err))
		})
	}
}

func TestConflictoDistinguibleDeFallaGenerica(t *testing.T) {
	conflict := fmt.Errorf("register: %w", ErrEmailAlreadyExists)
	generic := fmt.Errorf("register: %w", ErrStore)

	assert.True(t, errors.Is(conflict, ErrEmailAlreadyExists))
	assert.False(t, errors.Is(generic, ErrEmailAlreadyExists))
	assert.NotEqual(t, Message(conflict), Message(generic))
}
