package repository

import (
	"context"

	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Tablas observables.
const (
	TableProducts = "products"
	TableUsers    = "users"
)

// Change avisa que una tabla fue escrita. Version crece de forma monótona por tabla.
type Change struct {
	Table   string
	Version uint64
}

// ChangeFeed entrega avisos de escritura por tabla. Un suscriptor lento recibe el último aviso pendiente.
type ChangeFeed interface {
	Changes(ctx context.Context, table string) *observable.Subscription[Change]
}

// Store agrupa los repositorios de un mismo backend y su feed de cambios.
type Store interface {
	Products() ProductRepository
	Users() UserRepository
	ChangeFeed
	Close() error
}
