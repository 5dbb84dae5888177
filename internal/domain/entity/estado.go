package entity

// Estados de soft-delete. Cliente y Usuario usan activo/inactivo; Microempresa usa activa/inactiva.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"

	EstadoActiva   = "activa"
	EstadoInactiva = "inactiva"

	// EstadoSuscrito solo existe en PlanPago.
	EstadoSuscrito = "suscrito"
)

// EstadoPersonaValido informa si e pertenece al vocabulario de Cliente/Usuario.
func EstadoPersonaValido(e string) bool {
	return e == EstadoActivo || e == EstadoInactivo
}

// EstadoMicroempresaValido informa si e pertenece al vocabulario de Microempresa.
func EstadoMicroempresaValido(e string) bool {
	return e == EstadoActiva || e == EstadoInactiva
}

// EstadoPlanValido informa si e pertenece al vocabulario de PlanPago (sin reglas de transición).
func EstadoPlanValido(e string) bool {
	return e == EstadoActivo || e == EstadoInactivo || e == EstadoSuscrito
}
