package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `c.id_cliente, c.nombre_razon_social, c.ci_nit, c.telefono, c.email, c.password,
	c.origen, c.estado, c.microempresa_id, c.fecha_registro`

var clienteOrden = map[int]string{
	repository.OrdenClienteReciente: "ORDER BY c.id_cliente DESC",
	repository.OrdenClienteRegistro: "ORDER BY c.fecha_registro DESC",
	repository.OrdenClienteNombre:   "ORDER BY c.nombre_razon_social",
}

// listQuery SQL de listado y de conteo compartiendo el mismo predicado.
type listQuery struct {
	list      string
	listArgs  []any
	count     string
	countArgs []any
}

// clienteListQuery arma el SELECT paginado y el COUNT para un filtro ya resuelto por rol.
func clienteListQuery(f repository.ClienteFilter) listQuery {
	b := predicate.New().
		EqStr("c.estado", f.Estado).
		EqID("c.microempresa_id", f.MicroempresaID).
		EqStr("c.origen", f.Origen).
		ILikeAny(f.Search, "c.nombre_razon_social", "c.email", "c.ci_nit", "c.telefono")

	from := "FROM cliente c"
	empresa := "NULL::text, NULL::text"
	if f.JoinEmpresa {
		from = "FROM cliente c LEFT JOIN microempresa m ON m.id_microempresa = c.microempresa_id"
		empresa = "m.nombre, m.telefono"
	}

	orden, ok := clienteOrden[f.Orden]
	if !ok {
		orden = clienteOrden[repository.OrdenClienteReciente]
	}
	limit, args := b.Paginate(f.Page)

	return listQuery{
		list:      joinSQL("SELECT "+clienteCols+", "+empresa, from, b.Where(), orden, limit),
		listArgs:  args,
		count:     joinSQL("SELECT COUNT(*)", from, b.Where()),
		countArgs: b.Args(),
	}
}

func scanCliente(row pgx.Row, withEmpresa bool) (*entity.Cliente, error) {
	var c entity.Cliente
	dest := []any{
		&c.ID, &c.NombreRazonSocial, &c.CINIT, &c.Telefono, &c.Email, &c.PasswordHash,
		&c.Origen, &c.Estado, &c.MicroempresaID, &c.FechaRegistro,
	}
	if withEmpresa {
		dest = append(dest, &c.EmpresaNombre, &c.EmpresaTelefono)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente y completa ID, estado y fecha de registro.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO cliente (nombre_razon_social, ci_nit, telefono, email, password, origen, estado, microempresa_id)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE(NULLIF($7, ''), 'activo'), $8)
		RETURNING id_cliente, estado, fecha_registro`
	c.Email = nullIfBlank(c.Email)
	c.CINIT = nullIfBlank(c.CINIT)
	c.Telefono = nullIfBlank(c.Telefono)
	err := r.q.QueryRow(ctx, query,
		c.NombreRazonSocial, c.CINIT, c.Telefono, c.Email, c.PasswordHash, c.Origen, c.Estado, c.MicroempresaID,
	).Scan(&c.ID, &c.Estado, &c.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, cualquiera sea su estado.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM cliente c WHERE c.id_cliente = $1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, id), false)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByEmail busca por email sin distinguir mayúsculas ni origen.
func (r *ClienteRepo) GetByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM cliente c WHERE LOWER(c.email) = LOWER($1) ORDER BY c.id_cliente LIMIT 1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, email), false)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by email: %w", err)
	}
	return c, nil
}

// List devuelve la página pedida y el total que coincide con el filtro.
func (r *ClienteRepo) List(ctx context.Context, f repository.ClienteFilter) ([]*entity.Cliente, int, error) {
	lq := clienteListQuery(f)

	var total int
	if err := r.q.QueryRow(ctx, lq.count, lq.countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	rows, err := r.q.Query(ctx, lq.list, lq.listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	return list, total, nil
}

// Update modifica solo los campos presentes. Con tenant != nil la fila debe pertenecer a esa microempresa.
func (r *ClienteRepo) Update(ctx context.Context, id int64, tenant *int64, u repository.ClienteUpdate) (bool, error) {
	var s setList
	if u.NombreRazonSocial != nil {
		s.add("nombre_razon_social", *u.NombreRazonSocial)
	}
	if u.CINIT != nil {
		s.add("ci_nit", nullIfBlank(u.CINIT))
	}
	if u.Telefono != nil {
		s.add("telefono", nullIfBlank(u.Telefono))
	}
	if u.Email != nil {
		s.add("email", nullIfBlank(u.Email))
	}
	if s.empty() {
		return false, domain.ErrNoFields
	}

	query := "UPDATE cliente SET " + s.sql() + " WHERE id_cliente = " + s.next(id)
	if tenant != nil {
		query += " AND microempresa_id = " + s.next(*tenant)
	}
	tag, err := r.q.Exec(ctx, query, s.args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrEmailAlreadyExists
		}
		return false, fmt.Errorf("update cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetEstado transición condicional de estado; ver ClienteRepository.
func (r *ClienteRepo) SetEstado(ctx context.Context, id int64, tenant *int64, from, to string) (bool, error) {
	b := predicate.New().Eq("id_cliente", id)
	if from != "" {
		b.Eq("estado", from)
	} else {
		b.Raw("estado <> ?", to)
	}
	b.EqID("microempresa_id", tenant)

	args := append(b.Args(), to)
	query := fmt.Sprintf("UPDATE cliente SET estado = $%d %s", len(args), b.Where())
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("set estado cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AssociateIfUnset la primera microempresa visitada gana; las siguientes no cambian nada.
func (r *ClienteRepo) AssociateIfUnset(ctx context.Context, id, microempresaID int64) (bool, error) {
	query := `UPDATE cliente SET microempresa_id = $1 WHERE id_cliente = $2 AND microempresa_id IS NULL`
	tag, err := r.q.Exec(ctx, query, microempresaID, id)
	if err != nil {
		return false, fmt.Errorf("associate cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
