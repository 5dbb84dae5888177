package repository

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// VisitaRepository log append-only de visitas.
type VisitaRepository interface {
	Create(ctx context.Context, v *entity.Visita) error
}
