package entity

import "time"

// Orígenes de un cliente.
const (
	OrigenSistema = "sistema" // creado por un operador
	OrigenPublico = "publico" // autoregistro
)

// Cliente cliente final de una microempresa. Nunca se borra físicamente: Estado es el único
// indicador de ciclo de vida. MicroempresaID es nil hasta la primera visita de un cliente público.
type Cliente struct {
	ID                int64
	NombreRazonSocial string
	CINIT             *string
	Telefono          *string
	Email             *string
	PasswordHash      *string // bcrypt; solo clientes públicos
	Origen            string
	Estado            string
	MicroempresaID    *int64
	FechaRegistro     time.Time

	// Solo se completan en listados con JOIN a microempresa.
	EmpresaNombre   *string
	EmpresaTelefono *string
}
