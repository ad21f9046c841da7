// Package storefront es la única fachada entre los casos de uso y el almacenamiento relacional.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Repository reenvía al almacenamiento y expone el catálogo y los favoritos como consultas vivas.
// Los métodos bloquean hasta que el almacenamiento responde; los casos de uso los invocan desde el
// pool de tareas, nunca desde quien atiende la UI.
type Repository struct {
	products repository.ProductRepository
	users    repository.UserRepository
	log      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool

	all       *liveQuery
	favorites *liveQuery
}

// NewRepository construye la fachada sobre un Store.
func NewRepository(store repository.Store, log *logger.Logger) *Repository {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Repository{
		products: store.Products(),
		users:    store.Users(),
		log:      log.Component("storefront"),
		ctx:      ctx,
		cancel:   cancel,
	}
	r.all = r.newLiveQuery("all_products", store, store.Products().ListAll)
	r.favorites = r.newLiveQuery("favorite_products", store, store.Products().ListFavorites)
	return r
}

// AllProducts observa el catálogo completo ordenado por id.
func (r *Repository) AllProducts(ctx context.Context) *observable.Subscription[[]entity.Product] {
	return r.all.subscribe(ctx)
}

// FavoriteProducts observa los productos marcados como favoritos, ordenados por id.
func (r *Repository) FavoriteProducts(ctx context.Context) *observable.Subscription[[]entity.Product] {
	return r.favorites.subscribe(ctx)
}

// UpdateFavorite cambia la marca de favorito; las consultas vivas se refrescan solas.
func (r *Repository) UpdateFavorite(ctx context.Context, productID int64, isFavorite bool) error {
	return wrap("update favorite", r.products.UpdateFavorite(ctx, productID, isFavorite))
}

// InsertProducts inserta o reemplaza productos por id.
func (r *Repository) InsertProducts(ctx context.Context, products []entity.Product) error {
	return wrap("insert products", r.products.InsertAll(ctx, products))
}

// ProductCount cantidad de productos guardados.
func (r *Repository) ProductCount(ctx context.Context) (int, error) {
	n, err := r.products.Count(ctx)
	return n, wrap("count products", err)
}

// RegisterUser inserta el usuario. Un correo repetido devuelve domain.ErrEmailAlreadyExists.
func (r *Repository) RegisterUser(ctx context.Context, user *entity.User) error {
	return wrap("register user", r.users.Create(ctx, user))
}

// FindUserByEmail devuelve (nil, nil) si no hay usuario con ese email.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrap("find user", err)
	}
	return u, nil
}

// UpdateUser sobrescribe el usuario identificado por su ID.
func (r *Repository) UpdateUser(ctx context.Context, user *entity.User) error {
	return wrap("update user", r.users.Update(ctx, user))
}

// Close detiene las consultas vivas y cierra sus suscripciones.
func (r *Repository) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
	r.all.subject.Close()
	r.favorites.subject.Close()
}

// wrap deja pasar los errores de dominio y marca el resto como falla de almacenamiento.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStore, err)
}

// goBackground lanza fn salvo que la fachada ya esté cerrada.
func (r *Repository) goBackground(fn func(ctx context.Context)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(r.ctx)
	}()
}
