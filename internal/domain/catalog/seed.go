// Package catalog contiene el catálogo fijo con el que se siembra el almacenamiento la primera vez.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

func item(id int64, nombre, descripcion string, precio int64, imagen, categoria string, favorito bool) entity.Product {
	return entity.Product{
		ID:               id,
		Nombre:           nombre,
		Descripcion:      descripcion,
		Precio:           decimal.NewFromInt(precio),
		ImagenReferencia: imagen,
		Categoria:        categoria,
		EsFavorito:       favorito,
	}
}

// Seed devuelve los 12 productos iniciales (4 hamburguesas, 4 fritos, 4 bebidas; 7 favoritos).
// Cada llamada devuelve una lista nueva.
func Seed() []entity.Product {
	return []entity.Product{
		item(1, "Hamburguesa Clásica", "Hamburguesa 120g, doble chedar, pepinillos, salsa Golden, tomate, lechuga, cebolla morada y pepinillos.", 6990, "clasica", entity.CategoryHamburguesa, false),
		item(2, "Hamburguesa Champiñon", "Hamburguesa 120g, queso mantecoso, champiñones, cebolla caramelizada y Mayonesa.", 8790, "champinon", entity.CategoryHamburguesa, true),
		item(3, "Hamburguesa Golden", "Hamburguesa 120g, doble cheddar, pepinillos, tocino, salsa golden.", 7990, "golden", entity.CategoryHamburguesa, false),
		item(4, "Hamburguesa Italiana", "Hamburguesa 120g, Palta, tomate y mayonesa.", 2000, "italiana", entity.CategoryHamburguesa, false),
		item(5, "Papas medianas", "Papas cortadas en bastones finos.", 2000, "papasfritas", entity.CategoryFrito, true),
		item(6, "Papas Golden", "Papas de la casa con topping de tocino", 2500, "papasgolden", entity.CategoryFrito, true),
		item(7, "Chicken de pops", "Bolitas de pollos", 3000, "chickenpop", entity.CategoryFrito, true),
		item(8, "Jalapeño Frito", "Bolitas Fritas con jalapeños en su interior", 3000, "jalapenos", entity.CategoryFrito, true),
		item(9, "Coca Cola", "Lata de Bebida fria.", 1500, "cocacola", entity.CategoryBebida, true),
		item(10, "Sprite", "Lata de Bebida fria.", 1500, "sprite", entity.CategoryBebida, true),
		item(11, "Fanta", "Lata de Bebida fria.", 1500, "fanta", entity.CategoryBebida, false),
		item(12, "Jugo Jumex", "Lata de Jugo frio.", 1500, "jumex", entity.CategoryBebida, false),
	}
}
