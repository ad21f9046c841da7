package repository

import (
	"context"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create inserta el usuario y asigna user.ID. Un correo repetido devuelve domain.ErrEmailAlreadyExists
	// y la fila existente queda intacta.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update sobrescribe todas las columnas salvo id y email.
	Update(ctx context.Context, user *entity.User) error
}
