package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SuperAdminClientesQuery filtros de GET /api/super-admin/clientes.
type SuperAdminClientesQuery struct {
	PageQuery
	Search    string
	EmpresaID *int64
	Estado    string
	Origen    string
}

// ClientesPageResponse página de clientes con el total del filtro.
type ClientesPageResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ConteoActivos total y activos (clientes, usuarios).
type ConteoActivos struct {
	Total   int `json:"total"`
	Activos int `json:"activos"`
}

// ConteoActivas total y activas (microempresas).
type ConteoActivas struct {
	Total   int `json:"total"`
	Activas int `json:"activas"`
}

// ConteoSuscritos total y suscritos (planes).
type ConteoSuscritos struct {
	Total     int `json:"total"`
	Suscritos int `json:"suscritos"`
}

// OrigenCantidad clientes por origen.
type OrigenCantidad struct {
	Origen   *string `json:"origen"`
	Cantidad int     `json:"cantidad"`
}

// RolCantidad usuarios por rol.
type RolCantidad struct {
	TipoRol  *string `json:"tipo_rol"`
	Cantidad int     `json:"cantidad"`
}

// PlanCantidad microempresas por plan; nombre_plan null = sin plan.
type PlanCantidad struct {
	NombrePlan *string `json:"nombre_plan"`
	Cantidad   int     `json:"cantidad"`
}

// EstadisticasResponse respuesta de GET /api/super-admin/estadisticas.
type EstadisticasResponse struct {
	Clientes          ConteoActivos    `json:"clientes"`
	Usuarios          ConteoActivos    `json:"usuarios"`
	Microempresas     ConteoActivas    `json:"microempresas"`
	Planes            ConteoSuscritos  `json:"planes"`
	ClientesPorOrigen []OrigenCantidad `json:"clientesPorOrigen"`
	UsuariosPorRol    []RolCantidad    `json:"usuariosPorRol"`
	EmpresasPorPlan   []PlanCantidad   `json:"empresasPorPlan"`
}

// MicroempresaCompletaResponse microempresa con plan y conteos.
type MicroempresaCompletaResponse struct {
	ID            int64               `json:"id_microempresa"`
	Nombre        string              `json:"nombre"`
	Direccion     string              `json:"direccion"`
	Telefono      string              `json:"telefono"`
	Rubro         string              `json:"rubro"`
	Descripcion   string              `json:"descripcion"`
	Estado        string              `json:"estado"`
	PlanID        *int64              `json:"plan_id"`
	FechaRegistro time.Time           `json:"fecha_registro"`
	NombrePlan    *string             `json:"nombre_plan"`
	Precio        decimal.NullDecimal `json:"precio"`
	UsuariosCount int                 `json:"usuarios_count"`
	ClientesCount int                 `json:"clientes_count"`
}

// ExportQuery formato de GET /api/super-admin/export/:tipo.
type ExportQuery struct {
	Formato string
}
