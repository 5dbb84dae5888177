package entity

import "github.com/shopspring/decimal"

// EstadoStock producto publicado en el catálogo.
const EstadoStock = "stock"

// Producto ítem de catálogo de una microempresa.
type Producto struct {
	ID             int64
	Nombre         string
	Descripcion    string
	Precio         decimal.Decimal
	StockActual    int
	Categoria      string
	Estado         string
	MicroempresaID int64
}
