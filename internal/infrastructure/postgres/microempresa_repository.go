package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// Asegura que MicroempresaRepo implementa repository.MicroempresaRepository.
var _ repository.MicroempresaRepository = (*MicroempresaRepo)(nil)

// MicroempresaRepo implementación del puerto MicroempresaRepository sobre PostgreSQL.
type MicroempresaRepo struct {
	pool *pgxpool.Pool
}

// NewMicroempresaRepository construye el adaptador de persistencia para microempresas.
func NewMicroempresaRepository(pool *pgxpool.Pool) *MicroempresaRepo {
	return &MicroempresaRepo{pool: pool}
}

const microempresaCols = `m.id_microempresa, m.nombre, COALESCE(m.direccion, ''), COALESCE(m.telefono, ''),
	COALESCE(m.rubro, ''), COALESCE(m.descripcion, ''), m.estado, m.plan_id, m.fecha_registro`

func microempresaDest(m *entity.Microempresa) []any {
	return []any{&m.ID, &m.Nombre, &m.Direccion, &m.Telefono, &m.Rubro, &m.Descripcion,
		&m.Estado, &m.PlanID, &m.FechaRegistro}
}

// GetByID obtiene una microempresa por ID, cualquiera sea su estado.
func (r *MicroempresaRepo) GetByID(ctx context.Context, id int64) (*entity.Microempresa, error) {
	var m entity.Microempresa
	query := `SELECT ` + microempresaCols + ` FROM microempresa m WHERE m.id_microempresa = $1`
	if err := r.pool.QueryRow(ctx, query, id).Scan(microempresaDest(&m)...); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get microempresa: %w", err)
	}
	return &m, nil
}

// IsActiva false también cuando la microempresa no existe.
func (r *MicroempresaRepo) IsActiva(ctx context.Context, id int64) (bool, error) {
	var ok bool
	query := `SELECT EXISTS (SELECT 1 FROM microempresa WHERE id_microempresa = $1 AND estado = 'activa')`
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("microempresa activa: %w", err)
	}
	return ok, nil
}

// ListPublicas microempresas activas con la cantidad de productos en stock.
func (r *MicroempresaRepo) ListPublicas(ctx context.Context) ([]repository.MicroempresaPublica, error) {
	query := `
		SELECT ` + microempresaCols + `,
		       (SELECT COUNT(*) FROM producto p WHERE p.microempresa_id = m.id_microempresa AND p.estado = 'stock')
		FROM microempresa m
		WHERE m.estado = 'activa'
		ORDER BY m.nombre`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list microempresas publicas: %w", err)
	}
	defer rows.Close()

	list := make([]repository.MicroempresaPublica, 0)
	for rows.Next() {
		var mp repository.MicroempresaPublica
		dest := append(microempresaDest(&mp.Microempresa), &mp.ProductosCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan microempresa: %w", err)
		}
		list = append(list, mp)
	}
	return list, rows.Err()
}

// ListCompleto todas las microempresas con plan y conteos de usuarios y clientes.
func (r *MicroempresaRepo) ListCompleto(ctx context.Context) ([]repository.MicroempresaCompleta, error) {
	query := `
		SELECT ` + microempresaCols + `, pp.nombre_plan, pp.precio,
		       (SELECT COUNT(*) FROM usuario u WHERE u.microempresa_id = m.id_microempresa),
		       (SELECT COUNT(*) FROM cliente c WHERE c.microempresa_id = m.id_microempresa)
		FROM microempresa m
		LEFT JOIN plan_pago pp ON pp.id_plan = m.plan_id
		ORDER BY m.fecha_registro DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list microempresas completo: %w", err)
	}
	defer rows.Close()

	list := make([]repository.MicroempresaCompleta, 0)
	for rows.Next() {
		var mc repository.MicroempresaCompleta
		dest := append(microempresaDest(&mc.Microempresa), &mc.NombrePlan, &mc.Precio, &mc.UsuariosCount, &mc.ClientesCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan microempresa: %w", err)
		}
		list = append(list, mc)
	}
	return list, rows.Err()
}

// SetEstado activa o desactiva una microempresa.
func (r *MicroempresaRepo) SetEstado(ctx context.Context, id int64, estado string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE microempresa SET estado = $1 WHERE id_microempresa = $2`, estado, id)
	if err != nil {
		return false, fmt.Errorf("set estado microempresa: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
