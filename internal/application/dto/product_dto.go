package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/internal/domain/money"
)

// CatalogFile es el archivo YAML que carga cmd/seed_catalog.
type CatalogFile struct {
	Products []CatalogItem `yaml:"products" validate:"required,min=1,dive"`
}

// CatalogItem un producto del archivo de catálogo. El precio va como texto para no perder precisión.
type CatalogItem struct {
	ID               int64  `yaml:"id" validate:"required,gt=0"`
	Nombre           string `yaml:"nombre" validate:"notblank"`
	Descripcion      string `yaml:"descripcion"`
	Precio           string `yaml:"precio" validate:"required,price"`
	ImagenReferencia string `yaml:"imagen" validate:"notblank"`
	Categoria        string `yaml:"categoria" validate:"oneof=Hamburguesa Frito Bebida"`
	EsFavorito       bool   `yaml:"favorito"`
}

// ToProduct convierte el ítem ya validado.
func (c CatalogItem) ToProduct() (entity.Product, error) {
	price, err := decimal.NewFromString(c.Precio)
	if err != nil {
		return entity.Product{}, fmt.Errorf("precio de %d: %w", c.ID, err)
	}
	return entity.Product{
		ID:               c.ID,
		Nombre:           c.Nombre,
		Descripcion:      c.Descripcion,
		Precio:           price,
		ImagenReferencia: c.ImagenReferencia,
		Categoria:        c.Categoria,
		EsFavorito:       c.EsFavorito,
	}, nil
}

// ProductResponse salida de un producto con el precio ya formateado en pesos chilenos.
type ProductResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	Precio    string `json:"precio"`
	Favorito  bool   `json:"favorito"`
}

// ToProductResponse proyecta un producto para mostrarlo.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Categoria: p.Categoria,
		Precio:    money.FormatCLP(p.Precio),
		Favorito:  p.EsFavorito,
	}
}
