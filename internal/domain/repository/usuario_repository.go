package repository

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para operadores (con su rol).
type UsuarioRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	SetEstado(ctx context.Context, id int64, estado string) (bool, error)
}
