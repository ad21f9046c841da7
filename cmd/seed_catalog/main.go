// seed_catalog carga un catálogo de productos desde un archivo YAML y lo inserta (o reemplaza)
// en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.yaml]
// Por defecto busca catalogo.yaml en el directorio actual.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/golden-burgers/internal/app"
	"github.com/jhoicas/golden-burgers/internal/application/dto"
	"github.com/jhoicas/golden-burgers/internal/application/storefront"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/repository"
	"github.com/jhoicas/golden-burgers/pkg/config"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

func main() {
	path := "catalogo.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir catálogo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	products, err := loadCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo inválido: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	count, err := seed(ctx, store, products, log)
	if cerr := store.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("cerrar almacenamiento")
	}
	if err != nil {
		log.Error().Err(err).Msg("cargar catálogo")
		os.Exit(1)
	}
	fmt.Printf("Cargados %d productos desde %s; total en el almacenamiento: %d\n", len(products), path, count)
}

// seed inserta o reemplaza los productos y devuelve el total guardado.
func seed(ctx context.Context, store repository.Store, products []entity.Product, log *logger.Logger) (int, error) {
	front := storefront.NewRepository(store, log)
	defer front.Close()

	if err := front.InsertProducts(ctx, products); err != nil {
		return 0, err
	}
	return front.ProductCount(ctx)
}

// loadCatalog decodifica y valida el archivo completo antes de tocar el almacenamiento.
func loadCatalog(r io.Reader) ([]entity.Product, error) {
	var file dto.CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decodificar YAML: %w", err)
	}
	if err := dto.Validator().Struct(file); err != nil {
		return nil, fmt.Errorf("validar: %w", err)
	}

	seen := make(map[int64]bool, len(file.Products))
	products := make([]entity.Product, 0, len(file.Products))
	for _, item := range file.Products {
		if seen[item.ID] {
			return nil, fmt.Errorf("id %d repetido", item.ID)
		}
		seen[item.ID] = true
		p, err := item.ToProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
