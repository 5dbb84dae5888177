// @title                       Microempresas API
// @version                     1.0
// @description                 Back office multi-microempresa: clientes, usuarios, planes y portal público.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/microempresas-api/docs"
	"github.com/jhoicas/microempresas-api/internal/application/auth"
	"github.com/jhoicas/microempresas-api/internal/application/ports"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/infrastructure/cache"
	"github.com/jhoicas/microempresas-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/microempresas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/microempresas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/microempresas-api/internal/interfaces/http"
	"github.com/jhoicas/microempresas-api/pkg/config"
	"github.com/jhoicas/microempresas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de planes: opcional. Sin REDIS_ADDR (o con Redis caído) se consulta siempre la DB.
	var planCache ports.Cache
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de planes desactivado")
		} else {
			defer rc.Close()
			planCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de planes en redis")
		}
	}

	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	microempresaRepo := postgres.NewMicroempresaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	estadisticasRepo := postgres.NewEstadisticasRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	publicJWTCfg := jwtCfg
	publicJWTCfg.ExpMinutes = cfg.JWT.PublicExpiration

	authUC := auth.NewAuthUseCase(usuarioRepo, jwtCfg)
	publicAuthUC := auth.NewPublicAuthUseCase(clienteRepo, publicJWTCfg)
	publicoUC := usecase.NewPublicoUseCase(microempresaRepo, productoRepo, txRunner)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	planUC := usecase.NewPlanUseCase(planRepo, planCache, cfg.Redis.PlansCacheTTL)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	microempresaSvc := usecase.NewMicroempresaService(microempresaRepo)
	superAdminUC := usecase.NewSuperAdminUseCase(clienteRepo, estadisticasRepo, microempresaRepo)

	// Reportes: CSV para hojas de cálculo y PDF tabular A4.
	exportUC := usecase.NewExportUseCase(clienteRepo, usuarioRepo, microempresaRepo, planRepo,
		map[string]ports.TableExporter{
			"csv": export.NewCSVExporter(),
			"pdf": infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		})

	rateLimiter := httpRouter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Component("http").Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Microempresas API",
		}))
	} else {
		log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs desactivado")
	}

	app.Static("/uploads", cfg.App.UploadsDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		PublicAuthUC:    publicAuthUC,
		PublicoUC:       publicoUC,
		ClienteUC:       clienteUC,
		PlanUC:          planUC,
		UsuarioUC:       usuarioUC,
		MicroempresaSvc: microempresaSvc,
		SuperAdminUC:    superAdminUC,
		ExportUC:        exportUC,
		RateLimiter:     rateLimiter,
		JWTSecret:       cfg.JWT.Secret,
	})

	// Un fallo de Listen (puerto ocupado) también termina el proceso.
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := waitForShutdown(listenErr, quit); err != nil {
		rateLimiter.Stop()
		pool.Close()
		log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP no pudo iniciar")
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	rateLimiter.Stop()

	log.Info().Msg("aplicación detenida")
}

// waitForShutdown bloquea hasta una señal de apagado (nil) o hasta que Listen termine por su cuenta.
func waitForShutdown(listenErr <-chan error, quit <-chan os.Signal) error {
	select {
	case err := <-listenErr:
		if err == nil {
			err = errors.New("servidor HTTP detenido sin señal de apagado")
		}
		return err
	case <-quit:
		return nil
	}
}
