package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db       *sql.DB
	notifier Notifier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *sql.DB, notifier Notifier) *UserRepo {
	return &UserRepo{db: db, notifier: notifier}
}

// Create persiste un nuevo usuario y asigna su ID. Nunca reemplaza una fila existente.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password, fullName, phoneNumber, gender, birthDate, street, number, city, region, commune, profileImageUri)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		user.Email, user.Password, user.FullName, user.PhoneNumber, user.Gender, user.BirthDate,
		user.Street, user.Number, user.City, user.Region, user.Commune, nullString(user.ProfileImageURI),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	r.notifier.Notify(repository.TableUsers)
	return nil
}

// FindByEmail obtiene un usuario por email exacto.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password, fullName, phoneNumber, gender, birthDate, street, number, city, region, commune, profileImageUri
		FROM users WHERE email = ? LIMIT 1`
	var (
		u     entity.User
		image sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.PhoneNumber, &u.Gender, &u.BirthDate,
		&u.Street, &u.Number, &u.City, &u.Region, &u.Commune, &image,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if image.Valid {
		u.ProfileImageURI = &image.String
	}
	return &u, nil
}

// Update sobrescribe el usuario por ID; el email no se modifica.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET password = ?, fullName = ?, phoneNumber = ?, gender = ?, birthDate = ?,
			street = ?, number = ?, city = ?, region = ?, commune = ?, profileImageUri = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		user.Password, user.FullName, user.PhoneNumber, user.Gender, user.BirthDate,
		user.Street, user.Number, user.City, user.Region, user.Commune, nullString(user.ProfileImageURI),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	r.notifier.Notify(repository.TableUsers)
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
