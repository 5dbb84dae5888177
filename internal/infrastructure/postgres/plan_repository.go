package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de persistencia para planes de pago.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// ListConEmpresas todos los planes (cualquier estado) ordenados por precio.
func (r *PlanRepo) ListConEmpresas(ctx context.Context) ([]repository.PlanConEmpresas, error) {
	const query = `
	SELECT
	    p.id_plan, p.nombre_plan, COALESCE(p.descripcion, ''), p.precio, COALESCE(p.tipo_plan, ''),
	    COALESCE(p.limite_usuarios, 0), COALESCE(p.limite_productos, 0), p.estado,
	    COUNT(DISTINCT m.id_microempresa)                                             AS empresas_count,
	    COUNT(DISTINCT CASE WHEN m.estado = 'activa' THEN m.id_microempresa END)      AS empresas_activas
	FROM plan_pago p
	LEFT JOIN microempresa m ON m.plan_id = p.id_plan
	GROUP BY p.id_plan
	ORDER BY p.precio, p.id_plan`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("planes.ListConEmpresas: %w", err)
	}
	defer rows.Close()

	list := make([]repository.PlanConEmpresas, 0)
	for rows.Next() {
		var p repository.PlanConEmpresas
		if err := rows.Scan(
			&p.ID, &p.NombrePlan, &p.Descripcion, &p.Precio, &p.TipoPlan,
			&p.LimiteUsuarios, &p.LimiteProductos, &p.Estado,
			&p.EmpresasCount, &p.EmpresasActivas,
		); err != nil {
			return nil, fmt.Errorf("planes.ListConEmpresas scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un plan; estado vacío queda activo.
func (r *PlanRepo) Create(ctx context.Context, p *entity.PlanPago) error {
	if p.Estado == "" {
		p.Estado = entity.EstadoActivo
	}
	query := `
		INSERT INTO plan_pago (nombre_plan, descripcion, precio, tipo_plan, limite_usuarios, limite_productos, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_plan`
	err := r.q.QueryRow(ctx, query,
		p.NombrePlan, p.Descripcion, p.Precio, p.TipoPlan, p.LimiteUsuarios, p.LimiteProductos, p.Estado,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// Update modifica solo las columnas presentes en u.
func (r *PlanRepo) Update(ctx context.Context, id int64, u repository.PlanUpdate) (bool, error) {
	var s setList
	if u.NombrePlan != nil {
		s.add("nombre_plan", *u.NombrePlan)
	}
	if u.Descripcion != nil {
		s.add("descripcion", *u.Descripcion)
	}
	if u.Precio != nil {
		s.add("precio", *u.Precio)
	}
	if u.TipoPlan != nil {
		s.add("tipo_plan", *u.TipoPlan)
	}
	if u.LimiteUsuarios != nil {
		s.add("limite_usuarios", *u.LimiteUsuarios)
	}
	if u.LimiteProductos != nil {
		s.add("limite_productos", *u.LimiteProductos)
	}
	if u.Estado != nil {
		s.add("estado", *u.Estado)
	}
	if s.empty() {
		return false, domain.ErrNoFields
	}

	query := "UPDATE plan_pago SET " + s.sql() + " WHERE id_plan = " + s.next(id)
	tag, err := r.q.Exec(ctx, query, s.args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Desactivar soft-delete del plan.
func (r *PlanRepo) Desactivar(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE plan_pago SET estado = 'inactivo' WHERE id_plan = $1 AND estado <> 'inactivo'`, id)
	if err != nil {
		return false, fmt.Errorf("desactivar plan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Distribucion microempresas por plan, separadas por estado.
func (r *PlanRepo) Distribucion(ctx context.Context) ([]repository.PlanDistribucion, error) {
	const query = `
	SELECT
	    p.nombre_plan,
	    COUNT(m.id_microempresa)                                   AS total_empresas,
	    COUNT(*) FILTER (WHERE m.estado = 'activa')                AS empresas_activas,
	    COUNT(*) FILTER (WHERE m.estado = 'inactiva')              AS empresas_inactivas
	FROM plan_pago p
	LEFT JOIN microempresa m ON m.plan_id = p.id_plan
	GROUP BY p.id_plan
	ORDER BY total_empresas DESC, p.id_plan`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("planes.Distribucion: %w", err)
	}
	defer rows.Close()

	list := make([]repository.PlanDistribucion, 0)
	for rows.Next() {
		var d repository.PlanDistribucion
		if err := rows.Scan(&d.NombrePlan, &d.TotalEmpresas, &d.EmpresasActivas, &d.EmpresasInactivas); err != nil {
			return nil, fmt.Errorf("planes.Distribucion scan: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Ingresos estimación mensual: precio × microempresas activas del plan.
func (r *PlanRepo) Ingresos(ctx context.Context) ([]repository.PlanIngresos, error) {
	const query = `
	SELECT
	    p.nombre_plan,
	    p.precio,
	    COUNT(m.id_microempresa)             AS total_empresas,
	    p.precio * COUNT(m.id_microempresa)  AS ingresos_mensuales_estimados
	FROM plan_pago p
	LEFT JOIN microempresa m ON m.plan_id = p.id_plan AND m.estado = 'activa'
	GROUP BY p.id_plan
	ORDER BY p.precio, p.id_plan`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("planes.Ingresos: %w", err)
	}
	defer rows.Close()

	list := make([]repository.PlanIngresos, 0)
	for rows.Next() {
		var in repository.PlanIngresos
		if err := rows.Scan(&in.NombrePlan, &in.Precio, &in.TotalEmpresas, &in.IngresosMensualesEstimados); err != nil {
			return nil, fmt.Errorf("planes.Ingresos scan: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}
