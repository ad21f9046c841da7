package auth

import (
	"context"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

// UserStore es lo que los formularios necesitan de la fachada de almacenamiento.
type UserStore interface {
	RegisterUser(ctx context.Context, user *entity.User) error
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error
}

// SessionReader entrega el estado leído del almacén de sesión.
type SessionReader interface {
	Current(ctx context.Context) (entity.SessionState, error)
}

// SessionClearer borra la sesión persistida.
type SessionClearer interface {
	ClearUserSession(ctx context.Context) error
}

// CartClearer vacía el carrito en memoria.
type CartClearer interface {
	ClearCart()
}

// PasswordVerifier guarda y compara contraseñas (texto plano o bcrypt).
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Compare(stored, password string) error
}
