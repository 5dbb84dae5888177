package ports

import (
	"context"
	"time"
)

// Cache puerto de caché clave/valor con expiración. Un fallo de caché nunca debe romper la
// petición: los casos de uso registran el error y siguen contra la base de datos.
type Cache interface {
	// Get devuelve found=false si la clave no existe o expiró.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
