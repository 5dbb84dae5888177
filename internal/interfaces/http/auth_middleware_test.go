package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/microempresas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/microempresas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "microempresas-api-test"
	testExpMin    = 60
	testUserID    = int64(11)
	testTenantID  = int64(7)
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT de operador con el rol y la microempresa indicados.
func tokenFor(t *testing.T, role string, tenant *int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Claims{
		SubjectID:      testUserID,
		Email:          "operador@empresa.bo",
		Rol:            role,
		MicroempresaID: tenant,
		Tipo:           pkgjwt.TipoUsuario,
	})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tenant := testTenantID
	return tokenFor(t, role, &tenant)
}

// publicToken genera un token de cliente público.
func publicToken(t *testing.T, clienteID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Claims{
		SubjectID: clienteID,
		Nombre:    "Cliente",
		Email:     "cliente@gmail.com",
		Tipo:      pkgjwt.TipoClientePublico,
	})
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El operador tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_SuperAdminAccedeRutaSuperAdmin(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, tokenFor(t, "super_admin", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "super_admin", body["role"])
}

// Caso 1b: uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_VendedorAccedeRutaAdministradorOVendedor(t *testing.T) {
	app := buildTestApp("administrador", "vendedor")
	resp := doRequest(t, app, tokenForRole(t, "vendedor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_AdministradorBloqueadoEnRutaSuperAdmin(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, tokenForRole(t, "administrador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: un token de cliente público nunca llega a rutas de operadores.
func TestAuthMiddleware_TokenClientePublico_Retorna401(t *testing.T) {
	app := buildTestApp("super_admin", "administrador", "vendedor")
	resp := doRequest(t, app, publicToken(t, 10))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		caller, ok := apphttp.GetCaller(c)
		return c.JSON(fiber.Map{
			"ok":              ok,
			"user_id":         apphttp.GetUserID(c),
			"microempresa_id": apphttp.GetMicroempresaID(c),
			"role":            apphttp.GetRole(c),
			"super":           caller.IsSuperAdmin(),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "administrador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		OK             bool   `json:"ok"`
		UserID         int64  `json:"user_id"`
		MicroempresaID *int64 `json:"microempresa_id"`
		Role           string `json:"role"`
		Super          bool   `json:"super"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, testUserID, body.UserID)
	require.NotNil(t, body.MicroempresaID)
	assert.Equal(t, testTenantID, *body.MicroempresaID)
	assert.Equal(t, "administrador", body.Role)
	assert.False(t, body.Super)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireActiveMicroempresa
// ──────────────────────────────────────────────────────────────────────────────

type fakeChecker struct {
	activa bool
	err    error
	calls  int
}

func (f *fakeChecker) IsActiva(_ context.Context, _ int64) (bool, error) {
	f.calls++
	return f.activa, f.err
}

func tenantApp(checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/tenant",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireActiveMicroempresa(checker),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func tenantRequest(t *testing.T, app *fiber.App, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireActiveMicroempresa_Activa_Pasa(t *testing.T) {
	checker := &fakeChecker{activa: true}
	status, _ := tenantRequest(t, tenantApp(checker), tokenForRole(t, "vendedor"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, checker.calls)
}

func TestRequireActiveMicroempresa_Inactiva_Retorna403(t *testing.T) {
	status, body := tenantRequest(t, tenantApp(&fakeChecker{activa: false}), tokenForRole(t, "vendedor"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "MICROEMPRESA_INACTIVA")
}

func TestRequireActiveMicroempresa_FalloDB_Retorna503(t *testing.T) {
	status, _ := tenantRequest(t, tenantApp(&fakeChecker{err: errors.New("db caída")}), tokenForRole(t, "administrador"))
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestRequireActiveMicroempresa_SinTenant_Retorna403(t *testing.T) {
	status, body := tenantRequest(t, tenantApp(&fakeChecker{activa: true}), tokenFor(t, "vendedor", nil))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "NO_TENANT")
}

func TestRequireActiveMicroempresa_SuperAdminNoConsulta(t *testing.T) {
	checker := &fakeChecker{activa: false}
	status, _ := tenantRequest(t, tenantApp(checker), tokenFor(t, "super_admin", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, checker.calls)
}
