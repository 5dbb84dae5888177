package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/auth"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	PublicAuthUC    *auth.PublicAuthUseCase
	PublicoUC       *usecase.PublicoUseCase
	ClienteUC       *usecase.ClienteUseCase
	PlanUC          *usecase.PlanUseCase
	UsuarioUC       *usecase.UsuarioUseCase
	MicroempresaSvc *usecase.MicroempresaService
	SuperAdminUC    *usecase.SuperAdminUseCase
	ExportUC        *usecase.ExportUseCase
	RateLimiter     *RateLimiter // nil = sin límite en login/registro
	JWTSecret       string
}

// Router registra las rutas de la API.
//
// Los middlewares van por ruta y no en el Group: el prefijo "/api/clientes" de un Group
// también captaría "/api/clientes-publico".
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	limited := func(c *fiber.Ctx) error { return c.Next() }
	if deps.RateLimiter != nil {
		limited = RateLimit(deps.RateLimiter)
	}

	authn := AuthMiddleware(deps.JWTSecret)
	operador := []fiber.Handler{
		authn,
		RequireRole(entity.RolSuperAdmin, entity.RolAdministrador, entity.RolVendedor),
		RequireActiveMicroempresa(deps.MicroempresaSvc),
	}
	superAdmin := []fiber.Handler{authn, RequireRole(entity.RolSuperAdmin)}

	// Auth de operadores (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", limited, authHandler.Login)

	// Portal público
	publico := api.Group("/clientes-publico")
	publicoHandler := NewPublicoHandler(deps.PublicAuthUC, deps.PublicoUC)
	publico.Post("/registrar", limited, publicoHandler.Registrar)
	publico.Post("/login", limited, publicoHandler.Login)
	publico.Get("/verify", publicoHandler.Verify)
	publico.Get("/microempresas", publicoHandler.Microempresas)
	publico.Get("/microempresas/:id", publicoHandler.Microempresa)
	publico.Get("/productos/:id", publicoHandler.Productos)
	publico.Post("/visita", publicoHandler.Visita)

	// Clientes (operadores)
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", with(operador, clienteHandler.Create)...)
	clientes.Get("/", with(operador, clienteHandler.List)...)
	clientes.Get("/eliminados", with(operador, clienteHandler.ListEliminados)...)
	clientes.Get("/search", with(superAdmin, clienteHandler.Search)...)
	clientes.Get("/microempresa/:microempresa_id", with(superAdmin, clienteHandler.ListByMicroempresa)...)
	clientes.Put("/reactivar/:id", with(superAdmin, clienteHandler.Reactivar)...)
	clientes.Put("/:id/estado", with(superAdmin, clienteHandler.SetEstado)...)
	clientes.Put("/:id", with(operador, clienteHandler.Update)...)
	clientes.Delete("/:id", with(operador, clienteHandler.Delete)...)

	// Planes (super_admin)
	planes := api.Group("/planes")
	planHandler := NewPlanHandler(deps.PlanUC)
	planes.Get("/", with(superAdmin, planHandler.List)...)
	planes.Get("/estadisticas", with(superAdmin, planHandler.Estadisticas)...)
	planes.Post("/", with(superAdmin, planHandler.Create)...)
	planes.Put("/:id", with(superAdmin, planHandler.Update)...)
	planes.Delete("/:id", with(superAdmin, planHandler.Delete)...)

	// Panel super_admin
	sa := api.Group("/super-admin")
	saHandler := NewSuperAdminHandler(deps.SuperAdminUC, deps.PlanUC, deps.UsuarioUC, deps.ExportUC)
	sa.Get("/clientes", with(superAdmin, saHandler.Clientes)...)
	sa.Get("/estadisticas", with(superAdmin, saHandler.Estadisticas)...)
	sa.Get("/microempresas-completo", with(superAdmin, saHandler.MicroempresasCompleto)...)
	sa.Get("/planes-completo", with(superAdmin, saHandler.PlanesCompleto)...)
	sa.Get("/usuarios", with(superAdmin, saHandler.Usuarios)...)
	sa.Get("/export/:tipo", with(superAdmin, saHandler.Export)...)

	// Estado de operadores y microempresas (super_admin)
	estadoHandler := NewEstadoHandler(deps.UsuarioUC, deps.MicroempresaSvc)
	api.Put("/usuarios/estado/:id", with(superAdmin, estadoHandler.Usuario)...)
	api.Put("/microempresas/:id/estado", with(superAdmin, estadoHandler.Microempresa)...)
}

// with antepone la cadena de middlewares al handler sin compartir el slice base.
func with(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}
