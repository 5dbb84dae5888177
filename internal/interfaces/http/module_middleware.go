package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
)

// microempresaChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *usecase.MicroempresaService; el uso de interfaz evita el import circular.
type microempresaChecker interface {
	IsActiva(ctx context.Context, microempresaID int64) (bool, error)
}

// RequireActiveMicroempresa bloquea a los operadores cuya microempresa fue desactivada.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - super_admin pasa siempre.
//   - 403 NO_TENANT → operador sin microempresa.
//   - 403 MICROEMPRESA_INACTIVA → microempresa inactiva o inexistente.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireActiveMicroempresa(checker microempresaChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := GetCaller(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "operador no encontrado en el token"})
		}
		if caller.IsSuperAdmin() {
			return c.Next()
		}
		if caller.MicroempresaID == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_TENANT", Message: "el usuario no pertenece a ninguna microempresa"})
		}

		activa, err := checker.IsActiva(c.UserContext(), *caller.MicroempresaID)
		if err != nil {
			log.Error().Err(err).
				Int64("microempresa_id", *caller.MicroempresaID).
				Str("request_id", GetRequestID(c)).
				Msg("verificar microempresa")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "TENANT_CHECK_FAILED",
				Message: "no se pudo verificar la microempresa, intente más tarde",
			})
		}
		if !activa {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MICROEMPRESA_INACTIVA",
				Message: "la microempresa está inactiva",
			})
		}
		return c.Next()
	}
}
