package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo catálogo público de productos (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// ListEnStock productos publicados de una microempresa, por nombre.
func (r *ProductoRepo) ListEnStock(ctx context.Context, microempresaID int64) ([]*entity.Producto, error) {
	query := `
		SELECT id_producto, nombre, COALESCE(descripcion, ''), precio, stock_actual,
		       COALESCE(categoria, ''), estado, microempresa_id
		FROM producto
		WHERE microempresa_id = $1 AND estado = $2
		ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, microempresaID, entity.EstadoStock)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Producto, 0)
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.StockActual,
			&p.Categoria, &p.Estado, &p.MicroempresaID); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
