package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/ports"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// PublicoUseCase portal público: catálogo de microempresas y registro de visitas.
type PublicoUseCase struct {
	microempresas repository.MicroempresaRepository
	productos     repository.ProductoRepository
	tx            ports.VisitaTxRunner
}

// NewPublicoUseCase construye el caso de uso del portal público.
func NewPublicoUseCase(
	microempresas repository.MicroempresaRepository,
	productos repository.ProductoRepository,
	tx ports.VisitaTxRunner,
) *PublicoUseCase {
	return &PublicoUseCase{microempresas: microempresas, productos: productos, tx: tx}
}

// Microempresas activas con la cantidad de productos publicados.
func (uc *PublicoUseCase) Microempresas(ctx context.Context) ([]dto.MicroempresaPublicaResponse, error) {
	list, err := uc.microempresas.ListPublicas(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MicroempresaPublicaResponse, 0, len(list))
	for _, m := range list {
		items = append(items, microempresaPublica(m.Microempresa, m.ProductosCount))
	}
	return items, nil
}

// Microempresa detalle de una microempresa activa; ErrNotFound si no existe o está inactiva.
func (uc *PublicoUseCase) Microempresa(ctx context.Context, id int64) (*dto.MicroempresaPublicaResponse, error) {
	m, err := uc.microempresas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.Estado != entity.EstadoActiva {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productos.ListEnStock(ctx, id)
	if err != nil {
		return nil, err
	}
	out := microempresaPublica(*m, len(productos))
	return &out, nil
}

// Productos catálogo en stock de una microempresa activa.
func (uc *PublicoUseCase) Productos(ctx context.Context, microempresaID int64) ([]dto.ProductoResponse, error) {
	activa, err := uc.microempresas.IsActiva(ctx, microempresaID)
	if err != nil {
		return nil, err
	}
	if !activa {
		return nil, domain.ErrNotFound
	}
	list, err := uc.productos.ListEnStock(ctx, microempresaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductoResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Precio:      p.Precio,
			StockActual: p.StockActual,
			Categoria:   p.Categoria,
		})
	}
	return items, nil
}

// RegistrarVisita agrega la visita y, si el cliente aún no tiene microempresa, lo asocia a esta.
// La primera microempresa visitada gana: visitas posteriores nunca cambian la asociación.
func (uc *PublicoUseCase) RegistrarVisita(ctx context.Context, in dto.VisitaRequest) (*dto.VisitaResponse, error) {
	if in.ClienteID <= 0 || in.MicroempresaID <= 0 {
		return nil, fmt.Errorf("%w: cliente_id y microempresa_id son obligatorios", domain.ErrInvalidInput)
	}
	m, err := uc.microempresas.GetByID(ctx, in.MicroempresaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("microempresa %d: %w", in.MicroempresaID, domain.ErrNotFound)
	}

	var asociado bool
	err = uc.tx.RunVisita(ctx, func(visitas repository.VisitaRepository, clientes repository.ClienteRepository) error {
		c, err := clientes.GetByID(ctx, in.ClienteID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("cliente %d: %w", in.ClienteID, domain.ErrNotFound)
		}
		if err := visitas.Create(ctx, &entity.Visita{ClienteID: c.ID, MicroempresaID: m.ID}); err != nil {
			return err
		}
		asociado, err = clientes.AssociateIfUnset(ctx, c.ID, m.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.VisitaResponse{Message: "Visita registrada", Asociado: asociado}, nil
}

func microempresaPublica(m entity.Microempresa, productos int) dto.MicroempresaPublicaResponse {
	return dto.MicroempresaPublicaResponse{
		ID:             m.ID,
		Nombre:         m.Nombre,
		Direccion:      m.Direccion,
		Telefono:       m.Telefono,
		Rubro:          m.Rubro,
		Descripcion:    m.Descripcion,
		ProductosCount: productos,
	}
}
