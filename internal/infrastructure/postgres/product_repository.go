package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q        Querier
	begin    func(ctx context.Context) (pgx.Tx, error)
	notifier Notifier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// begin abre la transacción de InsertAll; con nil las filas se insertan sin transacción.
func NewProductRepository(q Querier, begin func(ctx context.Context) (pgx.Tx, error), notifier Notifier) *ProductRepo {
	return &ProductRepo{q: q, begin: begin, notifier: notifier}
}

const productColumns = `id, nombre, descripcion, precio, imagen_referencia, categoria, es_favorito`

const upsertProduct = `
	INSERT INTO products (` + productColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		nombre = EXCLUDED.nombre, descripcion = EXCLUDED.descripcion, precio = EXCLUDED.precio,
		imagen_referencia = EXCLUDED.imagen_referencia, categoria = EXCLUDED.categoria,
		es_favorito = EXCLUDED.es_favorito`

// InsertAll inserta o reemplaza los productos por id.
func (r *ProductRepo) InsertAll(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	if r.begin == nil {
		if err := insertProducts(ctx, r.q, products); err != nil {
			return err
		}
		r.notifier.Notify(repository.TableProducts)
		return nil
	}

	tx, err := r.begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertProducts(ctx, tx, products); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	r.notifier.Notify(repository.TableProducts)
	return nil
}

func insertProducts(ctx context.Context, q Querier, products []entity.Product) error {
	for _, p := range products {
		if p.Precio.IsNegative() {
			return fmt.Errorf("%w: precio negativo en producto %d", domain.ErrInvalidInput, p.ID)
		}
		_, err := q.Exec(ctx, upsertProduct,
			p.ID, p.Nombre, p.Descripcion, p.Precio, p.ImagenReferencia, p.Categoria, p.EsFavorito,
		)
		if err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}
	return nil
}

// ListAll devuelve todo el catálogo.
func (r *ProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
}

// ListFavorites devuelve los productos marcados como favoritos.
func (r *ProductRepo) ListFavorites(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE es_favorito ORDER BY id ASC`)
}

func (r *ProductRepo) list(ctx context.Context, query string) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.ImagenReferencia, &p.Categoria, &p.EsFavorito); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateFavorite actualiza solo la marca de favorito.
func (r *ProductRepo) UpdateFavorite(ctx context.Context, productID int64, isFavorite bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE products SET es_favorito = $2 WHERE id = $1`, productID, isFavorite)
	if err != nil {
		return fmt.Errorf("update favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	r.notifier.Notify(repository.TableProducts)
	return nil
}

// Count devuelve la cantidad de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
