package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/microempresas-api/internal/interfaces/http"
)

func TestRateLimit_BloqueaAlAgotarBurst(t *testing.T) {
	rl := apphttp.NewRateLimiter(0.001, 2, time.Hour)
	defer rl.Stop()

	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(rl), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_MismaIPMismoLimitador(t *testing.T) {
	rl := apphttp.NewRateLimiter(1, 1, time.Hour)
	defer rl.Stop()

	assert.Same(t, rl.Limiter("10.0.0.1"), rl.Limiter("10.0.0.1"))
	assert.NotSame(t, rl.Limiter("10.0.0.1"), rl.Limiter("10.0.0.2"))
}

func TestRateLimiter_StopIdempotente(t *testing.T) {
	rl := apphttp.NewRateLimiter(1, 1, time.Hour)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
