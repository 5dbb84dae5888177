package dto

// PageQuery paginación 1-based de los listados (query string).
type PageQuery struct {
	Page  int
	Limit int
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// EstadoRequest cambio explícito de estado (activar/desactivar desde el panel).
type EstadoRequest struct {
	Estado string `json:"estado"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
