package dto

import "github.com/shopspring/decimal"

// CreatePlanRequest alta de plan. Estado vacío = activo.
type CreatePlanRequest struct {
	NombrePlan      string          `json:"nombre_plan"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	TipoPlan        string          `json:"tipo_plan"`
	LimiteUsuarios  int             `json:"limite_usuarios"`
	LimiteProductos int             `json:"limite_productos"`
	Estado          string          `json:"estado"`
}

// UpdatePlanFields únicas columnas modificables de un plan. Cualquier otra clave del JSON se ignora.
type UpdatePlanFields struct {
	NombrePlan      *string          `json:"nombre_plan"`
	Descripcion     *string          `json:"descripcion"`
	Precio          *decimal.Decimal `json:"precio"`
	TipoPlan        *string          `json:"tipo_plan"`
	LimiteUsuarios  *int             `json:"limite_usuarios"`
	LimiteProductos *int             `json:"limite_productos"`
	Estado          *string          `json:"estado"`
}

// PlanResponse plan con el número de microempresas suscritas.
type PlanResponse struct {
	ID              int64           `json:"id_plan"`
	NombrePlan      string          `json:"nombre_plan"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	TipoPlan        string          `json:"tipo_plan"`
	LimiteUsuarios  int             `json:"limite_usuarios"`
	LimiteProductos int             `json:"limite_productos"`
	Estado          string          `json:"estado"`
	EmpresasCount   int             `json:"empresas_count"`
	EmpresasActivas int             `json:"empresas_activas"`
}

// PlanDistribucionResponse microempresas por plan y estado.
type PlanDistribucionResponse struct {
	NombrePlan        string `json:"nombre_plan"`
	TotalEmpresas     int    `json:"total_empresas"`
	EmpresasActivas   int    `json:"empresas_activas"`
	EmpresasInactivas int    `json:"empresas_inactivas"`
}

// PlanIngresosResponse ingreso mensual estimado por plan.
type PlanIngresosResponse struct {
	NombrePlan                 string          `json:"nombre_plan"`
	Precio                     decimal.Decimal `json:"precio"`
	TotalEmpresas              int             `json:"total_empresas"`
	IngresosMensualesEstimados decimal.Decimal `json:"ingresos_mensuales_estimados"`
}

// PlanEstadisticasResponse respuesta de GET /api/planes/estadisticas.
type PlanEstadisticasResponse struct {
	Distribucion []PlanDistribucionResponse `json:"distribucion"`
	Ingresos     []PlanIngresosResponse     `json:"ingresos"`
}
