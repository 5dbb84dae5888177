package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/pkg/jwt"
)

// Locals keys del operador autenticado en Fiber.
const (
	LocalCaller         = "caller"
	LocalUserID         = "user_id"
	LocalRole           = "role"
	LocalMicroempresaID = "microempresa_id"
)

// AuthMiddleware valida el Bearer Token JWT de un operador y carga el Caller en c.Locals.
// Un token de cliente público (tipo distinto de usuario) se rechaza como inválido.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		claims, err := jwt.ParseTipo(jwtSecret, tokenString, jwt.TipoUsuario)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		caller := entity.Caller{
			UsuarioID:      claims.SubjectID,
			Rol:            claims.Rol,
			MicroempresaID: claims.MicroempresaID,
		}
		c.Locals(LocalCaller, caller)
		c.Locals(LocalUserID, caller.UsuarioID)
		c.Locals(LocalRole, caller.Rol)
		c.Locals(LocalMicroempresaID, caller.MicroempresaID)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE → el token no trae rol.
//   - 403 FORBIDDEN    → el rol no está en la lista.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para este recurso"})
		}
		return c.Next()
	}
}

// GetCaller devuelve el operador del contexto (después del middleware de auth).
func GetCaller(c *fiber.Ctx) (entity.Caller, bool) {
	caller, ok := c.Locals(LocalCaller).(entity.Caller)
	return caller, ok
}

// GetUserID devuelve el id del operador o 0.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol del operador o "".
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetMicroempresaID devuelve la microempresa del operador; nil para super_admin.
func GetMicroempresaID(c *fiber.Ctx) *int64 {
	id, _ := c.Locals(LocalMicroempresaID).(*int64)
	return id
}

// bearerToken extrae el token del header Authorization.
func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}
