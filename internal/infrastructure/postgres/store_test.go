package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}

func TestRedactURL(t *testing.T) {
	got := redactURL("postgres://app:secreto@db:5432/gb?sslmode=disable")
	assert.NotContains(t, got, "secreto")
	assert.Contains(t, got, "db:5432/gb")
	assert.Equal(t, "host=db", redactURL("host=db"))
}

// Requiere una base desechable en TEST_DATABASE_URL; las tablas se vacían al empezar.
func TestStore_Integracion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	_, _ = pool.Exec(ctx, `DROP TABLE IF EXISTS products; DROP TABLE IF EXISTS users`)
	pool.Close()

	s, err := Open(ctx, config.DBConfig{DatabaseURL: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Products().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	favs, err := s.Products().ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 7)

	require.NoError(t, s.Products().UpdateFavorite(ctx, 1, true))
	favs, err = s.Products().ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 8)

	u := &entity.User{Email: "a@b.com", Password: "secret1", FullName: "Ana Pérez", PhoneNumber: "912345678",
		Gender: "Femenino", BirthDate: "1990-01-01", Street: "Calle", Number: "1", City: "Santiago",
		Region: "RM", Commune: "Ñuñoa"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.NotZero(t, u.ID)

	dup := *u
	dup.FullName = "Otro"
	assert.ErrorIs(t, s.Users().Create(ctx, &dup), domain.ErrEmailAlreadyExists)

	got, err := s.Users().FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Pérez", got.FullName)

	none, err := s.Users().FindByEmail(ctx, "nadie@b.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}
