package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var _ repository.VisitaRepository = (*VisitaRepo)(nil)

// VisitaRepo log de visitas (usable con pool o tx).
type VisitaRepo struct {
	q Querier
}

// NewVisitaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitaRepository(q Querier) *VisitaRepo {
	return &VisitaRepo{q: q}
}

// Create agrega una visita; completa ID y fecha.
func (r *VisitaRepo) Create(ctx context.Context, v *entity.Visita) error {
	query := `
		INSERT INTO visita_microempresa (cliente_id, microempresa_id)
		VALUES ($1, $2)
		RETURNING id_visita, fecha_visita`
	if err := r.q.QueryRow(ctx, query, v.ClienteID, v.MicroempresaID).Scan(&v.ID, &v.FechaVisita); err != nil {
		return fmt.Errorf("insert visita: %w", err)
	}
	return nil
}
