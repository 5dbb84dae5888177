package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
)

// PlanHandler planes de pago (solo super_admin).
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar planes con microempresas suscritas
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.PlanResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/planes [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear plan
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planes [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar plan
// @Description  Solo se aplican nombre_plan, descripcion, precio, tipo_plan, limite_usuarios, limite_productos y estado.
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del plan"
// @Param        body  body  dto.UpdatePlanFields  true  "Campos a modificar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planes/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePlanFields
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Plan actualizado correctamente"})
}

// Delete godoc
// @Summary      Desactivar plan
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del plan"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planes/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Desactivar(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Plan desactivado correctamente"})
}

// Estadisticas godoc
// @Summary      Distribución de microempresas e ingresos estimados por plan
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlanEstadisticasResponse
// @Router       /api/planes/estadisticas [get]
func (h *PlanHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
