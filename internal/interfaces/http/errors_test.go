package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/internal/domain"
)

func TestRespondError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: nombre es obligatorio", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrNoFields, http.StatusBadRequest, "NO_FIELDS"},
		{domain.ErrEmailAlreadyExists, http.StatusBadRequest, "EMAIL_EXISTS"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("cliente 3: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNoTenant, http.StatusForbidden, "NO_TENANT"},
		{errors.New("conexión rechazada"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, string(body), `"code":"`+tc.code+`"`)
		})
	}
}

func TestDetail_QuitaPrefijoDelSentinel(t *testing.T) {
	err := fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	assert.Equal(t, "precio no puede ser negativo", detail(err, domain.ErrInvalidInput))
	assert.Equal(t, domain.ErrInvalidInput.Error(), detail(domain.ErrInvalidInput, domain.ErrInvalidInput))
}

func TestWith_NoCompartePrefijo(t *testing.T) {
	mw := make([]fiber.Handler, 1, 4)
	mw[0] = func(c *fiber.Ctx) error { return c.Next() }
	a := func(c *fiber.Ctx) error { return c.SendString("a") }
	b := func(c *fiber.Ctx) error { return c.SendString("b") }

	ha := with(mw, a)
	hb := with(mw, b)

	app := fiber.New()
	app.Get("/a", ha...)
	app.Get("/b", hb...)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/a", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "a", string(body))
}
