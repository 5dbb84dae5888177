package entity

import "github.com/shopspring/decimal"

// PlanPago plan de suscripción con límites de uso.
type PlanPago struct {
	ID              int64
	NombrePlan      string
	Descripcion     string
	Precio          decimal.Decimal
	TipoPlan        string
	LimiteUsuarios  int
	LimiteProductos int
	Estado          string // activo, inactivo, suscrito
}
