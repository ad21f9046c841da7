package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("Usuario no encontrado.")
	ErrWrongPassword      = errors.New("Contraseña incorrecta.")
	ErrEmailAlreadyExists = errors.New("El correo ya está registrado.")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidForm        = errors.New("El formulario contiene errores o datos incompletos.")
	ErrInvalidLogin       = errors.New("Por favor, corrige los errores en el formulario.")
	ErrNoLoadedUser       = errors.New("No se pudo encontrar al usuario original para guardar los cambios.")
	ErrNoSession          = errors.New("no hay una sesión activa")
	ErrSubmitInProgress   = errors.New("ya hay un envío en curso")
	ErrStore              = errors.New("error de almacenamiento")
)

// MsgUnknown es el aviso genérico para fallas no clasificadas.
const MsgUnknown = "Ocurrió un error desconocido"

// userFacing son los errores cuyo texto ya es el aviso que ve el usuario.
var userFacing = []error{
	ErrUserNotFound,
	ErrWrongPassword,
	ErrEmailAlreadyExists,
	ErrInvalidForm,
	ErrInvalidLogin,
	ErrNoLoadedUser,
}

// Message traduce un error al aviso de una sola vez que muestra la UI.
// Las fallas de almacenamiento y cualquier error no clasificado dan el mensaje genérico.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	switch {
	case errors.Is(err, ErrSubmitInProgress):
		return "Espera a que termine la operación en curso."
	case errors.Is(err, ErrNoSession):
		return "No hay una sesión activa."
	case errors.Is(err, ErrStore):
		return "Error al guardar los cambios"
	}
	return MsgUnknown
}
