package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/auth"
	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain"
)

// PublicoHandler portal público: registro y login de clientes finales, catálogo y visitas.
type PublicoHandler struct {
	auth *auth.PublicAuthUseCase
	uc   *usecase.PublicoUseCase
}

// NewPublicoHandler construye el handler.
func NewPublicoHandler(authUC *auth.PublicAuthUseCase, uc *usecase.PublicoUseCase) *PublicoHandler {
	return &PublicoHandler{auth: authUC, uc: uc}
}

// Registrar godoc
// @Summary      Registro de cliente público
// @Tags         clientes-publico
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroPublicoRequest  true  "nombre, email, telefono, password"
// @Success      201   {object}  dto.AuthPublicoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/clientes-publico/registrar [post]
func (h *PublicoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistroPublicoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.auth.Registrar(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login de cliente público
// @Tags         clientes-publico
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginPublicoRequest  true  "email, password"
// @Success      200   {object}  dto.AuthPublicoResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/clientes-publico/login [post]
func (h *PublicoHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginPublicoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token de cliente público
// @Tags         clientes-publico
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerifyResponse
// @Failure      401  {object}  dto.VerifyResponse
// @Failure      404  {object}  dto.VerifyResponse
// @Router       /api/clientes-publico/verify [get]
func (h *PublicoHandler) Verify(c *fiber.Ctx) error {
	token, _ := bearerToken(c)
	out, err := h.auth.Verify(c.UserContext(), token)
	switch {
	case err == nil:
		return c.JSON(out)
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.VerifyResponse{Valid: false, Message: "token inválido o expirado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.VerifyResponse{Valid: false, Message: "cliente no encontrado"})
	default:
		return respondError(c, err)
	}
}

// Microempresas godoc
// @Summary      Microempresas activas
// @Tags         clientes-publico
// @Produce      json
// @Success      200  {array}  dto.MicroempresaPublicaResponse
// @Router       /api/clientes-publico/microempresas [get]
func (h *PublicoHandler) Microempresas(c *fiber.Ctx) error {
	list, err := h.uc.Microempresas(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Microempresa godoc
// @Summary      Detalle de una microempresa activa
// @Tags         clientes-publico
// @Produce      json
// @Param        id   path  int  true  "ID de la microempresa"
// @Success      200  {object}  dto.MicroempresaPublicaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes-publico/microempresas/{id} [get]
func (h *PublicoHandler) Microempresa(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Microempresa(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Productos godoc
// @Summary      Catálogo de una microempresa activa
// @Tags         clientes-publico
// @Produce      json
// @Param        id   path  int  true  "ID de la microempresa"
// @Success      200  {array}   dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes-publico/productos/{id} [get]
func (h *PublicoHandler) Productos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.Productos(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Visita godoc
// @Summary      Registrar visita de un cliente a una microempresa
// @Description  La primera microempresa visitada queda asociada al cliente.
// @Tags         clientes-publico
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VisitaRequest  true  "cliente_id, microempresa_id"
// @Success      200   {object}  dto.VisitaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes-publico/visita [post]
func (h *PublicoHandler) Visita(c *fiber.Ctx) error {
	var in dto.VisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegistrarVisita(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
