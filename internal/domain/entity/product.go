package entity

import "github.com/shopspring/decimal"

// Categorías del catálogo semilla.
const (
	CategoryHamburguesa = "Hamburguesa"
	CategoryFrito       = "Frito"
	CategoryBebida      = "Bebida"
)

// Product representa un producto del catálogo (tabla products).
// EsFavorito es el único campo que cambia después de la siembra inicial.
type Product struct {
	ID               int64
	Nombre           string
	Descripcion      string
	Precio           decimal.Decimal // precio de venta, nunca negativo
	ImagenReferencia string          // handle opaco que resuelve la UI
	Categoria        string
	EsFavorito       bool
}
