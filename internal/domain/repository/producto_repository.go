package repository

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// ProductoRepository lectura del catálogo público.
type ProductoRepository interface {
	ListEnStock(ctx context.Context, microempresaID int64) ([]*entity.Producto, error)
}
