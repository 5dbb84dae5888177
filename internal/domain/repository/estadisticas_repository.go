package repository

import "context"

// Conteo total y cuántos están en el estado "bueno" (activo, activa, suscrito).
type Conteo struct {
	Total   int
	Activos int
}

// ConteoPorClave cantidad agrupada por una clave (origen, rol, plan).
type ConteoPorClave struct {
	Clave    *string
	Cantidad int
}

// Estadisticas resumen global para super_admin.
type Estadisticas struct {
	Clientes          Conteo
	Usuarios          Conteo
	Microempresas     Conteo
	Planes            Conteo
	ClientesPorOrigen []ConteoPorClave
	UsuariosPorRol    []ConteoPorClave
	EmpresasPorPlan   []ConteoPorClave
}

// EstadisticasRepository consultas de solo lectura sobre todas las microempresas.
type EstadisticasRepository interface {
	Resumen(ctx context.Context) (*Estadisticas, error)
}
