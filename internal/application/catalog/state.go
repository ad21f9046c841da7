package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

// State es el estado combinado de las pantallas de catálogo, favoritos y carrito.
type State struct {
	Products  []entity.Product
	Favorites []entity.Product
	Cart      entity.Cart
	UserName  *string // nil sin sesión o si el usuario no existe
}

// CartItems líneas del carrito en orden de inserción.
func (s State) CartItems() []entity.CartItem {
	return s.Cart.Items()
}

// Subtotal se calcula en cada lectura a partir del carrito.
func (s State) Subtotal() decimal.Decimal {
	return s.Cart.Subtotal()
}

// Greeting nombre a mostrar en el saludo del inicio.
func (s State) Greeting() string {
	if s.UserName == nil || *s.UserName == "" {
		return "Invitado"
	}
	return *s.UserName
}
