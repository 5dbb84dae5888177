package ports

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// VisitaTxRunner ejecuta el registro de una visita en una sola transacción.
// fn recibe repos atados a la tx; si fn retorna error se hace Rollback.
type VisitaTxRunner interface {
	RunVisita(ctx context.Context, fn func(
		visitas repository.VisitaRepository,
		clientes repository.ClienteRepository,
	) error) error
}
