package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket por IP para login y registro.
type RateLimiter struct {
	mu       sync.Mutex
	ips      map[string]*visitor
	rps      rate.Limit
	burst    int
	idle     time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter crea el limitador y arranca la limpieza de IPs inactivas cada idle.
// Llamar Stop al apagar el servidor.
func NewRateLimiter(rps float64, burst int, idle time.Duration) *RateLimiter {
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	rl := &RateLimiter{
		ips:   make(map[string]*visitor),
		rps:   rate.Limit(rps),
		burst: burst,
		idle:  idle,
		stop:  make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Limiter devuelve el limitador de una IP, creándolo si no existe.
func (rl *RateLimiter) Limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.ips[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.ips[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Stop detiene la limpieza. Es seguro llamarlo más de una vez.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.ips {
				if now.Sub(v.lastSeen) > rl.idle {
					delete(rl.ips, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RateLimit responde 429 cuando la IP agotó su cupo.
func RateLimit(rl *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Limiter(c.IP()).Allow() {
			retry := 1
			if rl.rps > 0 {
				retry = int(1/float64(rl.rps)) + 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas solicitudes, intente más tarde"})
		}
		return c.Next()
	}
}
