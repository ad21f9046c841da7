package storefront

import (
	"context"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// liveQuery reejecuta una consulta cada vez que la tabla de productos cambia y publica el resultado.
// Arranca con el primer suscriptor y vive hasta Repository.Close.
type liveQuery struct {
	name    string
	feed    repository.ChangeFeed
	query   func(ctx context.Context) ([]entity.Product, error)
	subject *observable.Subject[[]entity.Product]
	start   sync.Once
	repo    *Repository
}

func (r *Repository) newLiveQuery(name string, feed repository.ChangeFeed, query func(ctx context.Context) ([]entity.Product, error)) *liveQuery {
	return &liveQuery{
		name:    name,
		feed:    feed,
		query:   query,
		subject: observable.New[[]entity.Product](),
		repo:    r,
	}
}

func (q *liveQuery) subscribe(ctx context.Context) *observable.Subscription[[]entity.Product] {
	sub := q.subject.Subscribe(ctx)
	q.start.Do(func() { q.repo.goBackground(q.run) })
	return sub
}

func (q *liveQuery) run(ctx context.Context) {
	// Suscribirse antes de la primera lectura para no perder escrituras intermedias.
	changes := q.feed.Changes(ctx, repository.TableProducts)
	defer changes.Cancel()

	q.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes.C:
			if !ok {
				return
			}
			q.refresh(ctx)
		}
	}
}

func (q *liveQuery) refresh(ctx context.Context) {
	products, err := q.query(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		q.repo.log.Error().Err(err).Str("query", q.name).Msg("falló la consulta viva")
		q.subject.PublishError(wrap(q.name, err))
		return
	}
	q.subject.Publish(products)
}
