package entity

// Roles válidos (tabla rol.tipo_rol).
const (
	RolSuperAdmin    = "super_admin"
	RolAdministrador = "administrador"
	RolVendedor      = "vendedor"
)

// Caller identidad del operador que hace la petición. Se construye en el middleware de auth
// a partir del token y se pasa por valor hasta los casos de uso.
type Caller struct {
	UsuarioID      int64
	Rol            string
	MicroempresaID *int64 // nil solo para super_admin
}

// IsSuperAdmin único rol que ve y filtra entre microempresas.
func (c Caller) IsSuperAdmin() bool {
	return c.Rol == RolSuperAdmin
}
