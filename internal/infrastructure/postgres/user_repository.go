package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q        Querier
	notifier Notifier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier, notifier Notifier) *UserRepo {
	return &UserRepo{q: q, notifier: notifier}
}

// Create persiste un nuevo usuario y asigna su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password, full_name, phone_number, gender, birth_date, street, number, city, region, commune, profile_image_uri)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Email, user.Password, user.FullName, user.PhoneNumber, user.Gender, user.BirthDate,
		user.Street, user.Number, user.City, user.Region, user.Commune, user.ProfileImageURI,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	r.notifier.Notify(repository.TableUsers)
	return nil
}

// FindByEmail obtiene un usuario por email exacto.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password, full_name, phone_number, gender, birth_date, street, number, city, region, commune, profile_image_uri
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.PhoneNumber, &u.Gender, &u.BirthDate,
		&u.Street, &u.Number, &u.City, &u.Region, &u.Commune, &u.ProfileImageURI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Update sobrescribe el usuario por ID; el email no se modifica.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET password = $2, full_name = $3, phone_number = $4, gender = $5, birth_date = $6,
			street = $7, number = $8, city = $9, region = $10, commune = $11, profile_image_uri = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		user.ID, user.Password, user.FullName, user.PhoneNumber, user.Gender, user.BirthDate,
		user.Street, user.Number, user.City, user.Region, user.Commune, user.ProfileImageURI,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	r.notifier.Notify(repository.TableUsers)
	return nil
}
