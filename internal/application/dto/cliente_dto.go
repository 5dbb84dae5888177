package dto

import "time"

// CreateClienteRequest alta de cliente por un operador. MicroempresaID solo lo respeta super_admin.
type CreateClienteRequest struct {
	NombreRazonSocial string  `json:"nombre_razon_social"`
	CINIT             *string `json:"ci_nit"`
	Telefono          *string `json:"telefono"`
	Email             *string `json:"email"`
	MicroempresaID    *int64  `json:"microempresa_id"`
}

// UpdateClienteRequest campos modificables; los ausentes no se tocan.
type UpdateClienteRequest struct {
	NombreRazonSocial *string `json:"nombre_razon_social"`
	CINIT             *string `json:"ci_nit"`
	Telefono          *string `json:"telefono"`
	Email             *string `json:"email"`
}

// ClienteListQuery filtros de GET /api/clientes y /api/clientes/search.
type ClienteListQuery struct {
	PageQuery
	Search         string
	Origen         string
	MicroempresaID *int64
}

// ClienteResponse salida de un cliente (sin password).
type ClienteResponse struct {
	ID                int64     `json:"id_cliente"`
	NombreRazonSocial string    `json:"nombre_razon_social"`
	CINIT             *string   `json:"ci_nit"`
	Telefono          *string   `json:"telefono"`
	Email             *string   `json:"email"`
	Origen            string    `json:"origen"`
	Estado            string    `json:"estado"`
	MicroempresaID    *int64    `json:"microempresa_id"`
	FechaRegistro     time.Time `json:"fecha_registro"`
	EmpresaNombre     *string   `json:"empresa_nombre,omitempty"`
	EmpresaTelefono   *string   `json:"empresa_telefono,omitempty"`
}
