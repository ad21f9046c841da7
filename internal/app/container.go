// Package app es la raíz de composición: abre el almacenamiento una sola vez y arma los casos de uso.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/golden-burgers/internal/application/auth"
	"github.com/jhoicas/golden-burgers/internal/application/bootstrap"
	"github.com/jhoicas/golden-burgers/internal/application/catalog"
	"github.com/jhoicas/golden-burgers/internal/application/storefront"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/postgres"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/prefs"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/security"
	"github.com/jhoicas/golden-burgers/internal/infrastructure/sqlite"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

// StoreOpener abre el almacenamiento relacional configurado.
type StoreOpener func(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Store, error)

// OpenStore elige el adaptador según STORE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite, config.DriverLibSQL:
		store, err := sqlite.Open(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		store, err := postgres.Open(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER no soportado: %q", cfg.Store.Driver)
}

// Option ajusta el contenedor (tests).
type Option func(*Container)

// WithStoreOpener reemplaza la apertura del almacenamiento.
func WithStoreOpener(open StoreOpener) Option {
	return func(c *Container) { c.openStore = open }
}

// WithExecutor reemplaza el pool de tareas en segundo plano.
func WithExecutor(exec dispatch.Executor) Option {
	return func(c *Container) { c.exec = exec }
}

// Services casos de uso que dependen del almacenamiento. Se construyen juntos una sola vez.
type Services struct {
	Storefront  *storefront.Repository
	Catalog     *catalog.CatalogUseCase
	Login       *auth.LoginUseCase
	Register    *auth.RegisterUseCase
	EditProfile *auth.EditProfileUseCase
	Logout      *auth.LogoutUseCase
}

// Container es dueño de todos los recursos del proceso.
type Container struct {
	cfg       *config.Config
	log       *logger.Logger
	openStore StoreOpener

	exec     dispatch.Executor
	pool     *dispatch.Pool
	redis    *redis.Client
	session  *prefs.SessionStore
	theme    *prefs.ThemeStore
	verifier security.PasswordVerifier

	mu       sync.Mutex
	ready    atomic.Bool
	store    repository.Store
	services *Services
	closed   bool
}

// New arma las preferencias, el verificador de contraseñas y el pool. El almacenamiento relacional
// se abre recién en el primer acceso a Services.
func New(cfg *config.Config, log *logger.Logger, opts ...Option) (*Container, error) {
	c := &Container{cfg: cfg, log: log, openStore: OpenStore}
	for _, opt := range opts {
		opt(c)
	}

	verifier, err := security.NewPasswordVerifier(cfg.Auth)
	if err != nil {
		return nil, err
	}
	c.verifier = verifier

	sessionKV, themeKV, err := c.prefsBackends()
	if err != nil {
		return nil, err
	}
	c.session = prefs.NewSessionStore(sessionKV, log)
	c.theme = prefs.NewThemeStore(themeKV, log)

	if c.exec == nil {
		c.pool = dispatch.NewPool(cfg.Worker.Limit)
		c.exec = c.pool
	}
	return c, nil
}

func (c *Container) prefsBackends() (session, theme prefs.KV, err error) {
	switch c.cfg.Prefs.Backend {
	case config.PrefsBackendRedis:
		c.redis = prefs.NewRedisClient(c.cfg.Prefs.RedisAddr, c.cfg.Prefs.RedisPassword)
		return prefs.NewRedisKV(c.redis, prefs.SessionStoreName), prefs.NewRedisKV(c.redis, prefs.ThemeStoreName), nil
	case config.PrefsBackendFile, "":
		s, err := prefs.NewFileKV(c.cfg.Prefs.Dir, prefs.SessionStoreName)
		if err != nil {
			return nil, nil, err
		}
		t, err := prefs.NewFileKV(c.cfg.Prefs.Dir, prefs.ThemeStoreName)
		if err != nil {
			return nil, nil, err
		}
		return s, t, nil
	}
	return nil, nil, fmt.Errorf("PREFS_BACKEND no soportado: %q", c.cfg.Prefs.Backend)
}

// Session almacén de sesión (lo escribe quien recibe el onSuccess del login o del registro).
func (c *Container) Session() *prefs.SessionStore { return c.session }

// Theme almacén de la preferencia de modo oscuro.
func (c *Container) Theme() *prefs.ThemeStore { return c.theme }

// Executor pool de tareas compartido por los casos de uso.
func (c *Container) Executor() dispatch.Executor { return c.exec }

// Bootstrap arma el caso de uso de arranque; solo necesita la sesión.
func (c *Container) Bootstrap() *bootstrap.UseCase {
	return bootstrap.NewUseCase(c.session, c.exec, c.log)
}

// Services abre el almacenamiento en el primer acceso. Llamadas concurrentes obtienen la misma instancia
// y el almacenamiento se abre una sola vez. Tras Close devuelve error.
func (c *Container) Services(ctx context.Context) (*Services, error) {
	if c.ready.Load() {
		return c.services, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready.Load() {
		return c.services, nil
	}
	if c.closed {
		return nil, errors.New("contenedor cerrado")
	}

	store, err := c.openStore(ctx, c.cfg, c.log)
	if err != nil {
		return nil, fmt.Errorf("abrir almacenamiento: %w", err)
	}
	c.store = store
	c.services = c.build(store)
	c.ready.Store(true)
	c.log.Info().Str("driver", c.cfg.Store.Driver).Msg("almacenamiento listo")
	return c.services, nil
}

func (c *Container) build(store repository.Store) *Services {
	front := storefront.NewRepository(store, c.log)
	cat := catalog.NewCatalogUseCase(front, c.session, c.exec, c.log)
	return &Services{
		Storefront:  front,
		Catalog:     cat,
		Login:       auth.NewLoginUseCase(front, c.verifier, c.exec, c.log),
		Register:    auth.NewRegisterUseCase(front, c.verifier, c.exec, c.log),
		EditProfile: auth.NewEditProfileUseCase(front, c.session, c.exec, c.log),
		Logout:      auth.NewLogoutUseCase(cat, c.session, c.exec, c.log),
	}
}

// Close libera en orden inverso: casos de uso, pool, almacenamiento y preferencias.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.ready.Store(false)

	var errs []error
	if c.services != nil {
		c.services.Catalog.Close()
		c.services.Storefront.Close()
	}
	if c.pool != nil {
		c.pool.Close()
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar almacenamiento: %w", err))
		}
	}
	c.theme.Close()
	c.session.Close()
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
