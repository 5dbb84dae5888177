package entity

import "time"

// Usuario operador del sistema. MicroempresaID es obligatorio salvo para super_admin.
type Usuario struct {
	ID             int64
	Nombre         string
	Email          string
	PasswordHash   string
	RolID          int64
	Rol            string // rol.tipo_rol
	Estado         string // activo, inactivo
	MicroempresaID *int64
	FechaRegistro  time.Time

	EmpresaNombre *string
}
