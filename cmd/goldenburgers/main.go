package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/golden-burgers/internal/app"
	"github.com/jhoicas/golden-burgers/internal/application/bootstrap"
	"github.com/jhoicas/golden-burgers/internal/application/catalog"
	"github.com/jhoicas/golden-burgers/internal/application/dto"
	"github.com/jhoicas/golden-burgers/internal/domain/navigation"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("prefs", cfg.Prefs.Backend).
		Msg("iniciando aplicación")

	container, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("armar dependencias")
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar dependencias")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start, err := decideStart(ctx, container.Bootstrap())
	if err != nil {
		log.Error().Err(err).Msg("no se pudo decidir la pantalla inicial")
		start = navigation.ScreenWelcome
	}
	log.Info().Str("route", start.Route()).Msg("pantalla inicial")

	services, err := container.Services(ctx)
	if err != nil {
		log.Error().Err(err).Msg("almacenamiento no disponible")
		return
	}

	if dark, err := container.Theme().DarkMode(ctx); err == nil {
		log.Info().Bool("dark_mode", dark).Msg("tema")
	}

	logCatalog(ctx, log, services.Catalog)

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando...")
}

// decideStart espera la decisión del arranque. Con un fallo reintenta una vez.
func decideStart(ctx context.Context, boot *bootstrap.UseCase) (navigation.Screen, error) {
	defer boot.Close()
	sub := boot.Watch(ctx)
	defer sub.Cancel()

	retried := false
	boot.Start()
	for ev := range sub.C {
		switch ev.Value.Phase {
		case bootstrap.PhaseReady:
			return ev.Value.Start, nil
		case bootstrap.PhaseFailed:
			if retried {
				return 0, ev.Value.Err
			}
			retried = true
			boot.Retry()
		}
	}
	return 0, ctx.Err()
}

// logCatalog registra el catálogo en cuanto llega la primera lectura, o al vencer el plazo.
func logCatalog(ctx context.Context, log *logger.Logger, uc *catalog.CatalogUseCase) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	sub := uc.Watch(ctx)
	defer sub.Cancel()

	for ev := range sub.C {
		st := ev.Value
		if len(st.Products) == 0 {
			continue
		}
		for _, p := range st.Products {
			r := dto.ToProductResponse(p)
			log.Debug().Int64("id", r.ID).Str("nombre", r.Nombre).Str("categoria", r.Categoria).
				Str("precio", r.Precio).Bool("favorito", r.Favorito).Msg("producto")
		}
		log.Info().
			Int("productos", len(st.Products)).
			Int("favoritos", len(st.Favorites)).
			Str("saludo", st.Greeting()).
			Msg("catálogo cargado")
		return
	}
	log.Warn().Msg("el catálogo no llegó a tiempo")
}
