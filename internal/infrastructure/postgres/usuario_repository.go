package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioSelect = `
	SELECT u.id_usuario, u.nombre, u.email, u.password, u.rol_id, r.tipo_rol, u.estado,
	       u.microempresa_id, u.fecha_registro, m.nombre
	FROM usuario u
	JOIN rol r ON r.id_rol = u.rol_id
	LEFT JOIN microempresa m ON m.id_microempresa = u.microempresa_id`

func scanUsuario(row interface{ Scan(...any) error }) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.RolID, &u.Rol, &u.Estado,
		&u.MicroempresaID, &u.FechaRegistro, &u.EmpresaNombre)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail obtiene un usuario con su rol (cualquier microempresa).
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	u, err := scanUsuario(r.pool.QueryRow(ctx, usuarioSelect+` WHERE LOWER(u.email) = LOWER($1)`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return u, nil
}

// List todos los operadores, los más recientes primero.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, usuarioSelect+` ORDER BY u.fecha_registro DESC, u.id_usuario DESC`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// SetEstado activa o desactiva un usuario.
func (r *UsuarioRepo) SetEstado(ctx context.Context, id int64, estado string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE usuario SET estado = $1 WHERE id_usuario = $2`, estado, id)
	if err != nil {
		return false, fmt.Errorf("set estado usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
