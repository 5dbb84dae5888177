package dto

import "time"

// LoginRequest credenciales de operador.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse salida de un operador (sin password).
type UsuarioResponse struct {
	ID             int64     `json:"id_usuario"`
	Nombre         string    `json:"nombre"`
	Email          string    `json:"email"`
	Rol            string    `json:"rol"`
	Estado         string    `json:"estado"`
	MicroempresaID *int64    `json:"microempresa_id"`
	EmpresaNombre  *string   `json:"empresa_nombre,omitempty"`
	FechaRegistro  time.Time `json:"fecha_registro"`
}

// LoginResponse token JWT y datos del operador.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
