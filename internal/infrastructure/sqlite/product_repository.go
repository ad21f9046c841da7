package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Notifier recibe un aviso después de cada escritura confirmada.
type Notifier interface {
	Notify(table string)
}

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db       *sql.DB
	notifier Notifier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sql.DB, notifier Notifier) *ProductRepo {
	return &ProductRepo{db: db, notifier: notifier}
}

const productColumns = `id, nombre, descripcion, precio, imagen_referencia, categoria, es_favorito`

// InsertAll inserta o reemplaza los productos en una sola transacción.
func (r *ProductRepo) InsertAll(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertProducts(ctx, tx, products); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	r.notifier.Notify(repository.TableProducts)
	return nil
}

func insertProducts(ctx context.Context, ex execer, products []entity.Product) error {
	query := `INSERT OR REPLACE INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range products {
		if p.Precio.IsNegative() {
			return fmt.Errorf("%w: precio negativo en producto %d", domain.ErrInvalidInput, p.ID)
		}
		_, err := ex.ExecContext(ctx, query,
			p.ID, p.Nombre, p.Descripcion, p.Precio.String(), p.ImagenReferencia, p.Categoria, boolToInt(p.EsFavorito),
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
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE es_favorito = 1 ORDER BY id ASC`)
}

func (r *ProductRepo) list(ctx context.Context, query string) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, query)
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
	res, err := r.db.ExecContext(ctx, `UPDATE products SET es_favorito = ? WHERE id = ?`, boolToInt(isFavorite), productID)
	if err != nil {
		return fmt.Errorf("update favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update favorite: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	r.notifier.Notify(repository.TableProducts)
	return nil
}

// Count devuelve la cantidad de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
