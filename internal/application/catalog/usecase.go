// Package catalog mantiene el estado del catálogo, los favoritos y el carrito en memoria.
package catalog

import (
	"context"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// ProductSource es lo que el caso de uso necesita de la fachada de almacenamiento.
type ProductSource interface {
	AllProducts(ctx context.Context) *observable.Subscription[[]entity.Product]
	FavoriteProducts(ctx context.Context) *observable.Subscription[[]entity.Product]
	UpdateFavorite(ctx context.Context, productID int64, isFavorite bool) error
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// SessionReader entrega el estado leído del almacén de sesión.
type SessionReader interface {
	Current(ctx context.Context) (entity.SessionState, error)
}

// CatalogUseCase es el dueño exclusivo del carrito. Las operaciones del carrito son síncronas y
// no tocan el almacenamiento; favoritos y nombre de usuario se resuelven en el pool de tareas.
type CatalogUseCase struct {
	repo    ProductSource
	session SessionReader
	exec    dispatch.Executor
	log     *logger.Logger

	state *observable.Subject[State]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogUseCase se suscribe al catálogo y a los favoritos y lanza la lectura del nombre de usuario.
func NewCatalogUseCase(repo ProductSource, session SessionReader, exec dispatch.Executor, log *logger.Logger) *CatalogUseCase {
	ctx, cancel := context.WithCancel(context.Background())
	uc := &CatalogUseCase{
		repo:    repo,
		session: session,
		exec:    exec,
		log:     log.Component("catalog"),
		state: observable.NewWithValue(State{
			Products:  []entity.Product{},
			Favorites: []entity.Product{},
			Cart:      entity.NewCart(),
		}),
		ctx:    ctx,
		cancel: cancel,
	}

	uc.follow("all_products", repo.AllProducts(ctx), func(s State, ps []entity.Product) State {
		s.Products = ps
		return s
	})
	uc.follow("favorite_products", repo.FavoriteProducts(ctx), func(s State, ps []entity.Product) State {
		s.Favorites = ps
		return s
	})
	uc.ReloadUserName()
	return uc
}

// follow refleja un stream en el estado. Un error se registra y se sigue escuchando.
func (uc *CatalogUseCase) follow(name string, sub *observable.Subscription[[]entity.Product], apply func(State, []entity.Product) State) {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		defer sub.Cancel()
		for ev := range sub.C {
			if ev.Err != nil {
				uc.log.Error().Err(ev.Err).Str("stream", name).Msg("error observando productos")
				continue
			}
			products := ev.Value
			uc.state.Update(func(s State) State { return apply(s, products) })
		}
	}()
}

// State devuelve una instantánea del estado actual.
func (uc *CatalogUseCase) State() State {
	s, _ := uc.state.Value()
	return s
}

// Watch observa el estado; entrega el actual de inmediato.
func (uc *CatalogUseCase) Watch(ctx context.Context) *observable.Subscription[State] {
	return uc.state.Subscribe(ctx)
}

// AddToCart suma una unidad del producto o lo agrega con cantidad 1.
func (uc *CatalogUseCase) AddToCart(p entity.Product) {
	uc.updateCart(func(c entity.Cart) entity.Cart { return c.Add(p) })
}

// IncreaseQuantity suma una unidad; sin efecto si el producto no está en el carrito.
func (uc *CatalogUseCase) IncreaseQuantity(productID int64) {
	uc.updateCart(func(c entity.Cart) entity.Cart { return c.Increase(productID) })
}

// DecreaseQuantity resta una unidad y elimina la línea al llegar a cero.
func (uc *CatalogUseCase) DecreaseQuantity(productID int64) {
	uc.updateCart(func(c entity.Cart) entity.Cart { return c.Decrease(productID) })
}

// ClearCart vacía el carrito (cierre de sesión).
func (uc *CatalogUseCase) ClearCart() {
	uc.updateCart(func(entity.Cart) entity.Cart { return entity.NewCart() })
}

func (uc *CatalogUseCase) updateCart(fn func(entity.Cart) entity.Cart) {
	uc.state.Update(func(s State) State {
		s.Cart = fn(s.Cart)
		return s
	})
}

// ToggleFavorite guarda el valor negado en segundo plano. El estado local no cambia hasta que
// el stream de favoritos refleja la escritura.
func (uc *CatalogUseCase) ToggleFavorite(productID int64, currentFavorite bool) {
	target := !currentFavorite
	uc.exec.Submit(func(ctx context.Context) {
		if err := uc.repo.UpdateFavorite(ctx, productID, target); err != nil {
			uc.log.Error().Err(err).Int64("product_id", productID).Bool("favorite", target).Msg("no se pudo actualizar el favorito")
		}
	})
}

// ReloadUserName vuelve a leer la sesión y el nombre del usuario en segundo plano.
func (uc *CatalogUseCase) ReloadUserName() {
	uc.exec.Submit(uc.loadUserName)
}

func (uc *CatalogUseCase) loadUserName(ctx context.Context) {
	name, err := uc.resolveUserName(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("no se pudo cargar el nombre del usuario")
		return
	}
	uc.state.Update(func(s State) State {
		s.UserName = name
		return s
	})
}

func (uc *CatalogUseCase) resolveUserName(ctx context.Context) (*string, error) {
	st, err := uc.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	email, ok := st.Email()
	if !ok {
		return nil, nil
	}
	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	name := user.FullName
	return &name, nil
}

// Close termina las suscripciones del caso de uso; después no se publica nada más.
func (uc *CatalogUseCase) Close() {
	uc.cancel()
	uc.wg.Wait()
	uc.state.Close()
}
