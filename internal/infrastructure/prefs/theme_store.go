package prefs

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Nombre y clave del almacén de tema.
const (
	ThemeStoreName     = "theme"
	KeyDarkModeEnabled = "is_dark_mode_enabled"
)

// ThemeStore persiste la preferencia de modo oscuro (por defecto false), independiente de la sesión.
type ThemeStore struct {
	kv    KV
	log   *logger.Logger
	mu    sync.Mutex
	state *observable.Subject[bool]
}

func NewThemeStore(kv KV, log *logger.Logger) *ThemeStore {
	return &ThemeStore{
		kv:    kv,
		log:   log.Component("theme_store"),
		state: observable.New[bool](),
	}
}

// Watch emite el valor guardado en cuanto se lee y luego cada cambio.
func (t *ThemeStore) Watch(ctx context.Context) *observable.Subscription[bool] {
	sub := t.state.Subscribe(ctx)
	if _, ok := t.state.Value(); !ok {
		go func() {
			if _, err := t.load(context.WithoutCancel(ctx)); err != nil {
				t.log.Error().Err(err).Msg("no se pudo leer el tema")
				t.state.PublishError(err)
			}
		}()
	}
	return sub
}

// DarkMode devuelve el valor actual, leyéndolo si hace falta.
func (t *ThemeStore) DarkMode(ctx context.Context) (bool, error) {
	if v, ok := t.state.Value(); ok {
		return v, nil
	}
	return t.load(ctx)
}

func (t *ThemeStore) load(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.state.Value(); ok {
		return v, nil
	}
	raw, ok, err := t.kv.Get(ctx, KeyDarkModeEnabled)
	if err != nil {
		return false, fmt.Errorf("%w: leer tema: %w", domain.ErrStore, err)
	}
	enabled := false
	if ok {
		// Un valor ilegible cuenta como el valor por defecto.
		if b, perr := strconv.ParseBool(raw); perr == nil {
			enabled = b
		} else {
			t.log.Warn().Str("value", raw).Msg("valor de tema inválido, se usa false")
		}
	}
	t.state.Publish(enabled)
	return enabled, nil
}

// SetDarkMode guarda el valor y notifica a los observadores.
func (t *ThemeStore) SetDarkMode(ctx context.Context, enabled bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.kv.Set(ctx, KeyDarkModeEnabled, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("%w: guardar tema: %w", domain.ErrStore, err)
	}
	t.state.Publish(enabled)
	return nil
}

func (t *ThemeStore) Close() {
	t.state.Close()
}
