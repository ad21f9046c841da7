// Package security implementa cómo se guardan y comparan las contraseñas de usuario.
package security

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/pkg/config"
)

// PasswordVerifier transforma la contraseña antes de guardarla y la compara en el login.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	// Compare devuelve domain.ErrWrongPassword si no coincide.
	Compare(stored, password string) error
}

// NewPasswordVerifier elige el verificador según AUTH_PASSWORD_MODE.
func NewPasswordVerifier(cfg config.AuthConfig) (PasswordVerifier, error) {
	switch cfg.PasswordMode {
	case config.PasswordModePlaintext, "":
		return Plaintext{}, nil
	case config.PasswordModeBcrypt:
		return NewBcrypt(cfg.BcryptCost), nil
	}
	return nil, fmt.Errorf("modo de contraseña desconocido: %q", cfg.PasswordMode)
}

// Plaintext guarda la contraseña tal cual y compara en tiempo constante.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

func (Plaintext) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return domain.ErrWrongPassword
	}
	return nil
}

// Bcrypt guarda el hash bcrypt de la contraseña.
type Bcrypt struct {
	cost int
}

// NewBcrypt usa bcrypt.DefaultCost si cost está fuera de rango.
func NewBcrypt(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

func (b Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (b Bcrypt) Compare(stored, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrWrongPassword
	}
	// Un hash guardado ilegible (p. ej. una fila creada en modo texto plano) tampoco autentica.
	return fmt.Errorf("%w: %w", domain.ErrWrongPassword, err)
}
