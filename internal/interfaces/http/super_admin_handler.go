package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
)

// SuperAdminHandler vistas agregadas del panel de super_admin.
type SuperAdminHandler struct {
	uc       *usecase.SuperAdminUseCase
	planes   *usecase.PlanUseCase
	usuarios *usecase.UsuarioUseCase
	export   *usecase.ExportUseCase
}

// NewSuperAdminHandler construye el handler.
func NewSuperAdminHandler(
	uc *usecase.SuperAdminUseCase,
	planes *usecase.PlanUseCase,
	usuarios *usecase.UsuarioUseCase,
	export *usecase.ExportUseCase,
) *SuperAdminHandler {
	return &SuperAdminHandler{uc: uc, planes: planes, usuarios: usuarios, export: export}
}

// Clientes godoc
// @Summary      Clientes de todas las microempresas (paginado)
// @Tags         super-admin
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "nombre, email, ci_nit o teléfono"
// @Param        empresa_id  query  int     false  "microempresa"
// @Param        estado      query  string  false  "activo | inactivo"
// @Param        origen      query  string  false  "sistema | publico"
// @Param        page        query  int     false  "página (1-based)"
// @Param        limit       query  int     false  "tamaño de página (máx. 1000)"
// @Success      200  {object}  dto.ClientesPageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/super-admin/clientes [get]
func (h *SuperAdminHandler) Clientes(c *fiber.Ctx) error {
	empresaID, err := queryID(c, "empresa_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Clientes(c.UserContext(), dto.SuperAdminClientesQuery{
		PageQuery: pageQuery(c),
		Search:    c.Query("search"),
		EmpresaID: empresaID,
		Estado:    c.Query("estado"),
		Origen:    c.Query("origen"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Conteos globales del sistema
// @Tags         super-admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Router       /api/super-admin/estadisticas [get]
func (h *SuperAdminHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MicroempresasCompleto godoc
// @Summary      Microempresas con plan y conteos
// @Tags         super-admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MicroempresaCompletaResponse
// @Router       /api/super-admin/microempresas-completo [get]
func (h *SuperAdminHandler) MicroempresasCompleto(c *fiber.Ctx) error {
	list, err := h.uc.MicroempresasCompleto(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PlanesCompleto godoc
// @Summary      Planes con microempresas suscritas
// @Tags         super-admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/super-admin/planes-completo [get]
func (h *SuperAdminHandler) PlanesCompleto(c *fiber.Ctx) error {
	list, err := h.planes.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Usuarios godoc
// @Summary      Operadores con rol y microempresa
// @Tags         super-admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/super-admin/usuarios [get]
func (h *SuperAdminHandler) Usuarios(c *fiber.Ctx) error {
	list, err := h.usuarios.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Export godoc
// @Summary      Exportar reporte
// @Tags         super-admin
// @Security     Bearer
// @Produce      octet-stream
// @Param        tipo     path   string  true   "clientes | usuarios | microempresas | planes"
// @Param        formato  query  string  false  "csv (por defecto) | pdf"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/super-admin/export/{tipo} [get]
func (h *SuperAdminHandler) Export(c *fiber.Ctx) error {
	f, err := h.export.Export(c.UserContext(), c.Params("tipo"), c.Query("formato"))
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(f.Filename)
	c.Set(fiber.HeaderContentType, f.ContentType)
	return c.Send(f.Data)
}
