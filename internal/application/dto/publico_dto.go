package dto

import "github.com/shopspring/decimal"

// RegistroPublicoRequest autoregistro de un cliente final.
type RegistroPublicoRequest struct {
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email"`
	Telefono *string `json:"telefono"`
	Password string  `json:"password"`
}

// LoginPublicoRequest credenciales de cliente público.
type LoginPublicoRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ClientePublicoResponse datos del cliente devueltos junto al token.
type ClientePublicoResponse struct {
	ID             int64   `json:"id"`
	Nombre         string  `json:"nombre"`
	Email          string  `json:"email"`
	Telefono       *string `json:"telefono"`
	MicroempresaID *int64  `json:"microempresa_id,omitempty"`
}

// AuthPublicoResponse respuesta de registro y login públicos.
type AuthPublicoResponse struct {
	Message string                 `json:"message"`
	Token   string                 `json:"token"`
	Cliente ClientePublicoResponse `json:"cliente"`
}

// VerifyResponse resultado de GET /api/clientes-publico/verify.
type VerifyResponse struct {
	Valid   bool                    `json:"valid"`
	Cliente *ClientePublicoResponse `json:"cliente,omitempty"`
	Message string                  `json:"message,omitempty"`
}

// VisitaRequest cliente público entrando a una microempresa.
type VisitaRequest struct {
	ClienteID      int64 `json:"cliente_id"`
	MicroempresaID int64 `json:"microempresa_id"`
}

// VisitaResponse Asociado indica si esta visita fijó la microempresa del cliente.
type VisitaResponse struct {
	Message  string `json:"message"`
	Asociado bool   `json:"asociado"`
}

// MicroempresaPublicaResponse microempresa visible en el portal público.
type MicroempresaPublicaResponse struct {
	ID             int64  `json:"id_microempresa"`
	Nombre         string `json:"nombre"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Rubro          string `json:"rubro"`
	Descripcion    string `json:"descripcion"`
	ProductosCount int    `json:"productos_count"`
}

// ProductoResponse producto del catálogo público.
type ProductoResponse struct {
	ID          int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	StockActual int             `json:"stock_actual"`
	Categoria   string          `json:"categoria"`
}
