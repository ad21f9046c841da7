package entity

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price int64) Product {
	return Product{ID: id, Nombre: "p", Precio: decimal.NewFromInt(price)}
}

func TestCart_AddAgregaOIncrementa(t *testing.T) {
	c := NewCart().Add(product(1, 6990)).Add(product(2, 1500)).Add(product(1, 6990))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Product.ID, "se conserva el orden de inserción")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCart_Decrease(t *testing.T) {
	c := NewCart().Add(product(1, 100)).Add(product(1, 100)).Add(product(2, 50))

	c = c.Decrease(1)
	assert.Equal(t, 1, c.Quantity(1), "con cantidad > 1 resta exactamente 1")

	c = c.Decrease(1)
	assert.Equal(t, 0, c.Quantity(1), "con cantidad 1 elimina la línea")
	assert.Equal(t, 1, c.Len())

	before := c.Items()
	c = c.Decrease(99)
	assert.Equal(t, before, c.Items(), "producto ausente no cambia el carrito")
}

func TestCart_IncreaseAusenteEsNoOp(t *testing.T) {
	c := NewCart().Add(product(1, 100))
	c = c.Increase(7)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Quantity(7))

	c = c.Increase(1)
	assert.Equal(t, 2, c.Quantity(1))
}

func TestCart_EsInmutable(t *testing.T) {
	base := NewCart().Add(product(1, 100))
	_ = base.Add(product(1, 100))
	_ = base.Increase(1)
	_ = base.Decrease(1)

	assert.Equal(t, 1, base.Quantity(1))

	items := base.Items()
	items[0].Quantity = 42
	assert.Equal(t, 1, base.Quantity(1), "Items devuelve una copia")
}

func TestCart_SubtotalYClear(t *testing.T) {
	c := NewCart().
		Add(Product{ID: 1, Precio: decimal.RequireFromString("6990")}).
		Add(Product{ID: 1, Precio: decimal.RequireFromString("6990")}).
		Add(Product{ID: 9, Precio: decimal.RequireFromString("1500.50")})

	want := decimal.RequireFromString("15480.50")
	assert.True(t, want.Equal(c.Subtotal()), "got %s", c.Subtotal())
	assert.True(t, c.Subtotal().Equal(c.Subtotal()), "recalcular sin cambios da el mismo valor")

	c = c.Clear()
	assert.Zero(t, c.Len())
	assert.True(t, c.Subtotal().IsZero())
}

// Secuencias aleatorias: nunca hay dos líneas del mismo producto, toda cantidad es >= 1
// y el subtotal coincide con un modelo de referencia.
func TestCart_InvariantesConSecuenciasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	prices := map[int64]int64{1: 6990, 2: 8790, 3: 2000, 4: 1500, 5: 3000}

	for run := 0; run < 200; run++ {
		c := NewCart()
		model := map[int64]int{}
		for step := 0; step < 60; step++ {
			id := int64(rng.Intn(6) + 1) // el 6 nunca está en el catálogo
			switch rng.Intn(3) {
			case 0:
				if _, ok := prices[id]; ok {
					c = c.Add(product(id, prices[id]))
					model[id]++
				}
			case 1:
				c = c.Increase(id)
				if model[id] > 0 {
					model[id]++
				}
			case 2:
				c = c.Decrease(id)
				if model[id] > 0 {
					model[id]--
				}
			}

			seen := map[int64]bool{}
			expected := decimal.Zero
			for _, it := range c.Items() {
				require.False(t, seen[it.Product.ID], "línea duplicada para %d", it.Product.ID)
				seen[it.Product.ID] = true
				require.GreaterOrEqual(t, it.Quantity, 1)
				require.Equal(t, model[it.Product.ID], it.Quantity)
			}
			for id, q := range model {
				if q > 0 {
					require.True(t, seen[id])
					expected = expected.Add(decimal.NewFromInt(prices[id] * int64(q)))
				}
			}
			require.True(t, expected.Equal(c.Subtotal()))
		}
	}
}
