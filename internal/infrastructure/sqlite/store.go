package sqlite

import (
	"context"
	"database/sql"

	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/changefeed"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

var _ repository.Store = (*Store)(nil)

// Store reúne la conexión, los repositorios y el feed de cambios de un archivo SQLite o base libsql.
type Store struct {
	db       *sql.DB
	feed     *changefeed.Notifier
	products *ProductRepo
	users    *UserRepo
}

// Open abre la base, aplica el esquema y siembra el catálogo si es la primera vez.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	feed := changefeed.New()
	return &Store{
		db:       db,
		feed:     feed,
		products: NewProductRepository(db, feed),
		users:    NewUserRepository(db, feed),
	}, nil
}

func (s *Store) Products() repository.ProductRepository { return s.products }

func (s *Store) Users() repository.UserRepository { return s.users }

// Changes delega en el notificador compartido por ambos repositorios.
func (s *Store) Changes(ctx context.Context, table string) *observable.Subscription[repository.Change] {
	return s.feed.Changes(ctx, table)
}

// Close cierra las suscripciones de cambios y la conexión.
func (s *Store) Close() error {
	s.feed.Close()
	return s.db.Close()
}
