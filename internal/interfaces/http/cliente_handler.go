package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// ClienteHandler administración de clientes por operadores (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), caller, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes activos
// @Description  super_admin ve todas las microempresas (puede filtrar por microempresa_id); el resto solo la suya. El total va en X-Total-Count.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "nombre, email, ci_nit o teléfono"
// @Param        origen          query  string  false  "sistema | publico"
// @Param        microempresa_id query  int     false  "solo super_admin"
// @Param        page            query  int     false  "página (1-based)"
// @Param        limit           query  int     false  "tamaño de página (máx. 1000)"
// @Success      200  {array}   dto.ClienteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	return h.list(c, entity.EstadoActivo)
}

// ListEliminados godoc
// @Summary      Listar clientes eliminados (inactivos)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "nombre, email, ci_nit o teléfono"
// @Param        origen          query  string  false  "sistema | publico"
// @Param        microempresa_id query  int     false  "solo super_admin"
// @Param        page            query  int     false  "página (1-based)"
// @Param        limit           query  int     false  "tamaño de página (máx. 1000)"
// @Success      200  {array}   dto.ClienteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clientes/eliminados [get]
func (h *ClienteHandler) ListEliminados(c *fiber.Ctx) error {
	return h.list(c, entity.EstadoInactivo)
}

// Search godoc
// @Summary      Buscar clientes activos entre microempresas
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "nombre, email, ci_nit o teléfono"
// @Param        origen          query  string  false  "sistema | publico"
// @Param        microempresa_id query  int     false  "microempresa"
// @Param        page            query  int     false  "página (1-based)"
// @Param        limit           query  int     false  "tamaño de página (máx. 1000)"
// @Success      200  {array}   dto.ClienteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clientes/search [get]
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	q, err := clienteListQuery(c, caller)
	if err != nil {
		return respondError(c, err)
	}
	items, total, err := h.uc.Search(c.UserContext(), caller, q)
	if err != nil {
		return respondError(c, err)
	}
	return withTotal(c, items, total)
}

// ListByMicroempresa godoc
// @Summary      Clientes activos de una microempresa
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        microempresa_id  path   int  true   "ID de la microempresa"
// @Param        page             query  int  false  "página (1-based)"
// @Param        limit            query  int  false  "tamaño de página (máx. 1000)"
// @Success      200  {array}   dto.ClienteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clientes/microempresa/{microempresa_id} [get]
func (h *ClienteHandler) ListByMicroempresa(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "microempresa_id")
	if err != nil {
		return respondError(c, err)
	}
	items, total, err := h.uc.ListByMicroempresa(c.UserContext(), caller, id, pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return withTotal(c, items, total)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del cliente"
// @Param        body  body  dto.UpdateClienteRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), caller, id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar cliente (pasa a inactivo)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado correctamente"})
}

// Reactivar godoc
// @Summary      Reactivar cliente eliminado
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/reactivar/{id} [put]
func (h *ClienteHandler) Reactivar(c *fiber.Ctx) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Reactivar(c.UserContext(), caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente reactivado correctamente"})
}

// SetEstado godoc
// @Summary      Cambiar estado de un cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del cliente"
// @Param        body  body  dto.EstadoRequest  true  "activo | inactivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/estado [put]
func (h *ClienteHandler) SetEstado(c *fiber.Ctx) error {
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
	if err := h.uc.SetEstado(c.UserContext(), caller, id, in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Estado actualizado correctamente"})
}

func (h *ClienteHandler) list(c *fiber.Ctx, estado string) error {
	caller, err := mustCaller(c)
	if err != nil {
		return respondError(c, err)
	}
	q, err := clienteListQuery(c, caller)
	if err != nil {
		return respondError(c, err)
	}
	items, total, err := h.uc.List(c.UserContext(), caller, estado, q)
	if err != nil {
		return respondError(c, err)
	}
	return withTotal(c, items, total)
}

// clienteListQuery lee los filtros del query string. microempresa_id solo aplica a super_admin;
// para los demás roles se ignora sin validarlo.
func clienteListQuery(c *fiber.Ctx, caller entity.Caller) (dto.ClienteListQuery, error) {
	q := dto.ClienteListQuery{
		PageQuery: pageQuery(c),
		Search:    c.Query("search"),
		Origen:    c.Query("origen"),
	}
	if caller.IsSuperAdmin() {
		id, err := queryID(c, "microempresa_id")
		if err != nil {
			return dto.ClienteListQuery{}, err
		}
		q.MicroempresaID = id
	}
	return q, nil
}
