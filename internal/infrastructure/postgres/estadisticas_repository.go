package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo consultas agregadas de solo lectura para el panel de super_admin.
type EstadisticasRepo struct {
	pool *pgxpool.Pool
}

// NewEstadisticasRepository construye el adaptador de estadísticas.
func NewEstadisticasRepository(pool *pgxpool.Pool) *EstadisticasRepo {
	return &EstadisticasRepo{pool: pool}
}

// Resumen totales y agrupaciones de todo el sistema.
func (r *EstadisticasRepo) Resumen(ctx context.Context) (*repository.Estadisticas, error) {
	var e repository.Estadisticas

	conteos := []struct {
		dst   *repository.Conteo
		query string
	}{
		{&e.Clientes, `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'activo') FROM cliente`},
		{&e.Usuarios, `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'activo') FROM usuario`},
		{&e.Microempresas, `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'activa') FROM microempresa`},
		{&e.Planes, `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'suscrito') FROM plan_pago`},
	}
	for _, c := range conteos {
		if err := r.pool.QueryRow(ctx, c.query).Scan(&c.dst.Total, &c.dst.Activos); err != nil {
			return nil, fmt.Errorf("estadisticas.Resumen: %w", err)
		}
	}

	agrupados := []struct {
		dst   *[]repository.ConteoPorClave
		query string
	}{
		{&e.ClientesPorOrigen, `SELECT origen, COUNT(*) FROM cliente GROUP BY origen ORDER BY origen`},
		{&e.UsuariosPorRol, `
			SELECT r.tipo_rol, COUNT(*)
			FROM usuario u JOIN rol r ON r.id_rol = u.rol_id
			GROUP BY r.tipo_rol ORDER BY r.tipo_rol`},
		{&e.EmpresasPorPlan, `
			SELECT p.nombre_plan, COUNT(*)
			FROM microempresa m LEFT JOIN plan_pago p ON p.id_plan = m.plan_id
			GROUP BY p.nombre_plan ORDER BY p.nombre_plan NULLS LAST`},
	}
	for _, a := range agrupados {
		list, err := r.porClave(ctx, a.query)
		if err != nil {
			return nil, err
		}
		*a.dst = list
	}
	return &e, nil
}

func (r *EstadisticasRepo) porClave(ctx context.Context, query string) ([]repository.ConteoPorClave, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.porClave: %w", err)
	}
	defer rows.Close()

	list := make([]repository.ConteoPorClave, 0)
	for rows.Next() {
		var c repository.ConteoPorClave
		if err := rows.Scan(&c.Clave, &c.Cantidad); err != nil {
			return nil, fmt.Errorf("estadisticas.porClave scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
