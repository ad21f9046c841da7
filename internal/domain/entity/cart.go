package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito: un producto y su cantidad (siempre >= 1).
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal devuelve precio × cantidad de la línea.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Precio.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart es el carrito en memoria, ordenado por inserción, con a lo sumo una línea por producto.
// Es un valor inmutable: cada operación devuelve un carrito nuevo y nunca modifica el receptor.
type Cart struct {
	items []CartItem
}

// NewCart crea un carrito vacío.
func NewCart() Cart {
	return Cart{}
}

// Items devuelve una copia de las líneas del carrito.
func (c Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de líneas.
func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) indexOf(productID int64) int {
	for i, it := range c.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Quantity cantidad del producto en el carrito (0 si no está).
func (c Cart) Quantity(productID int64) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Add suma una unidad si el producto ya está; si no, agrega una línea nueva con cantidad 1 al final.
func (c Cart) Add(p Product) Cart {
	items := c.Items()
	if i := c.indexOf(p.ID); i >= 0 {
		items[i].Quantity++
		return Cart{items: items}
	}
	return Cart{items: append(items, CartItem{Product: p, Quantity: 1})}
}

// Increase suma una unidad a la línea del producto. Sin efecto si no está.
func (c Cart) Increase(productID int64) Cart {
	i := c.indexOf(productID)
	if i < 0 {
		return c
	}
	items := c.Items()
	items[i].Quantity++
	return Cart{items: items}
}

// Decrease resta una unidad; con cantidad 1 elimina la línea. Sin efecto si no está.
func (c Cart) Decrease(productID int64) Cart {
	i := c.indexOf(productID)
	if i < 0 {
		return c
	}
	items := c.Items()
	if items[i].Quantity > 1 {
		items[i].Quantity--
		return Cart{items: items}
	}
	return Cart{items: append(items[:i], items[i+1:]...)}
}

// Clear devuelve un carrito vacío.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Subtotal suma precio × cantidad de todas las líneas. Se recalcula en cada llamada.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}
