package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// PlanUpdate columnas de plan_pago que se pueden modificar; nil = no tocar.
type PlanUpdate struct {
	NombrePlan      *string
	Descripcion     *string
	Precio          *decimal.Decimal
	TipoPlan        *string
	LimiteUsuarios  *int
	LimiteProductos *int
	Estado          *string
}

// Empty informa si no hay ningún campo para actualizar.
func (u PlanUpdate) Empty() bool {
	return u.NombrePlan == nil && u.Descripcion == nil && u.Precio == nil && u.TipoPlan == nil &&
		u.LimiteUsuarios == nil && u.LimiteProductos == nil && u.Estado == nil
}

// PlanConEmpresas plan con el número de microempresas suscritas.
type PlanConEmpresas struct {
	entity.PlanPago
	EmpresasCount   int
	EmpresasActivas int
}

// PlanDistribucion microempresas por plan y estado.
type PlanDistribucion struct {
	NombrePlan        string
	TotalEmpresas     int
	EmpresasActivas   int
	EmpresasInactivas int
}

// PlanIngresos ingreso mensual estimado: precio × microempresas activas.
type PlanIngresos struct {
	NombrePlan                 string
	Precio                     decimal.Decimal
	TotalEmpresas              int
	IngresosMensualesEstimados decimal.Decimal
}

// PlanRepository define el puerto de persistencia para PlanPago.
type PlanRepository interface {
	ListConEmpresas(ctx context.Context) ([]PlanConEmpresas, error)
	Create(ctx context.Context, p *entity.PlanPago) error
	Update(ctx context.Context, id int64, u PlanUpdate) (bool, error)
	// Desactivar pone estado inactivo; false si no existe o ya estaba inactivo.
	Desactivar(ctx context.Context, id int64) (bool, error)
	Distribucion(ctx context.Context) ([]PlanDistribucion, error)
	Ingresos(ctx context.Context) ([]PlanIngresos, error)
}
