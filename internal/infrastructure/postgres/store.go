package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/golden-burgers/internal/domain/catalog"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/changefeed"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

//go:embed schema.sql
var schemaSQL string

var _ repository.Store = (*Store)(nil)

// Store reúne el pool, los repositorios y el feed de cambios sobre PostgreSQL.
type Store struct {
	pool     *pgxpool.Pool
	feed     *changefeed.Notifier
	products *ProductRepo
	users    *UserRepo
}

// Open conecta, aplica el esquema y siembra el catálogo si la tabla products está vacía.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("dsn", redactURL(cfg.ConnectionString())).Msg("conectado a PostgreSQL")

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}

	feed := changefeed.New()
	s := &Store{
		pool:     pool,
		feed:     feed,
		products: NewProductRepository(pool, pool.Begin, feed),
		users:    NewUserRepository(pool, feed),
	}

	n, err := s.products.Count(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	if n == 0 {
		if err := s.products.InsertAll(ctx, catalog.Seed()); err != nil {
			s.Close()
			return nil, fmt.Errorf("sembrar catálogo: %w", err)
		}
		log.Info().Int("products", len(catalog.Seed())).Msg("catálogo sembrado")
	}
	return s, nil
}

func (s *Store) Products() repository.ProductRepository { return s.products }

func (s *Store) Users() repository.UserRepository { return s.users }

// Changes delega en el notificador compartido por ambos repositorios.
func (s *Store) Changes(ctx context.Context, table string) *observable.Subscription[repository.Change] {
	return s.feed.Changes(ctx, table)
}

// Close cierra las suscripciones de cambios y el pool.
func (s *Store) Close() error {
	s.feed.Close()
	s.pool.Close()
	return nil
}
