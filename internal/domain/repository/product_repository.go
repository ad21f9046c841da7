package repository

import (
	"context"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los listados se devuelven ordenados por id ascendente.
type ProductRepository interface {
	// InsertAll inserta o reemplaza los productos por id.
	InsertAll(ctx context.Context, products []entity.Product) error
	ListAll(ctx context.Context) ([]entity.Product, error)
	ListFavorites(ctx context.Context) ([]entity.Product, error)
	// UpdateFavorite cambia solo la columna es_favorito. Un id inexistente devuelve domain.ErrNotFound.
	UpdateFavorite(ctx context.Context, productID int64, isFavorite bool) error
	Count(ctx context.Context) (int, error)
}
