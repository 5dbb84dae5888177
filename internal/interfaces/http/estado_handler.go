package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
)

// EstadoHandler activar/desactivar operadores y microempresas desde el panel.
type EstadoHandler struct {
	usuarios      *usecase.UsuarioUseCase
	microempresas *usecase.MicroempresaService
}

// NewEstadoHandler construye el handler.
func NewEstadoHandler(usuarios *usecase.UsuarioUseCase, microempresas *usecase.MicroempresaService) *EstadoHandler {
	return &EstadoHandler{usuarios: usuarios, microempresas: microempresas}
}

// Usuario godoc
// @Summary      Cambiar estado de un operador
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del usuario"
// @Param        body  body  dto.EstadoRequest  true  "activo | inactivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/estado/{id} [put]
func (h *EstadoHandler) Usuario(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.usuarios.SetEstado(c.UserContext(), caller, id, in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Estado del usuario actualizado"})
}

// Microempresa godoc
// @Summary      Activar o desactivar una microempresa
// @Description  Los operadores de una microempresa inactiva reciben 403.
// @Tags         microempresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID de la microempresa"
// @Param        body  body  dto.EstadoRequest  true  "activa | inactiva"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/microempresas/{id}/estado [put]
func (h *EstadoHandler) Microempresa(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.microempresas.SetEstado(c.UserContext(), id, in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Estado de la microempresa actualizado"})
}
