package usecase

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

// SuperAdminUseCase vistas agregadas sobre todas las microempresas.
type SuperAdminUseCase struct {
	clientes      repository.ClienteRepository
	estadisticas  repository.EstadisticasRepository
	microempresas repository.MicroempresaRepository
}

// NewSuperAdminUseCase construye el caso de uso.
func NewSuperAdminUseCase(
	clientes repository.ClienteRepository,
	estadisticas repository.EstadisticasRepository,
	microempresas repository.MicroempresaRepository,
) *SuperAdminUseCase {
	return &SuperAdminUseCase{clientes: clientes, estadisticas: estadisticas, microempresas: microempresas}
}

// Clientes listado de clientes de cualquier estado con nombre de microempresa, los más recientes primero.
func (uc *SuperAdminUseCase) Clientes(ctx context.Context, q dto.SuperAdminClientesQuery) (*dto.ClientesPageResponse, error) {
	page := predicate.NewPage(q.Page, q.Limit, DefaultPageSize, MaxPageSize)
	list, total, err := uc.clientes.List(ctx, repository.ClienteFilter{
		MicroempresaID: q.EmpresaID,
		JoinEmpresa:    true,
		Estado:         q.Estado,
		Origen:         q.Origen,
		Search:         q.Search,
		Orden:          repository.OrdenClienteRegistro,
		Page:           page,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.ClientesPageResponse{
		Data:  make([]dto.ClienteResponse, 0, len(list)),
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	}
	for _, c := range list {
		out.Data = append(out.Data, *ClienteToResponse(c))
	}
	return out, nil
}

// Estadisticas totales globales y agrupaciones por origen, rol y plan.
func (uc *SuperAdminUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	e, err := uc.estadisticas.Resumen(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.EstadisticasResponse{
		Clientes:          dto.ConteoActivos{Total: e.Clientes.Total, Activos: e.Clientes.Activos},
		Usuarios:          dto.ConteoActivos{Total: e.Usuarios.Total, Activos: e.Usuarios.Activos},
		Microempresas:     dto.ConteoActivas{Total: e.Microempresas.Total, Activas: e.Microempresas.Activos},
		Planes:            dto.ConteoSuscritos{Total: e.Planes.Total, Suscritos: e.Planes.Activos},
		ClientesPorOrigen: make([]dto.OrigenCantidad, 0, len(e.ClientesPorOrigen)),
		UsuariosPorRol:    make([]dto.RolCantidad, 0, len(e.UsuariosPorRol)),
		EmpresasPorPlan:   make([]dto.PlanCantidad, 0, len(e.EmpresasPorPlan)),
	}
	for _, c := range e.ClientesPorOrigen {
		out.ClientesPorOrigen = append(out.ClientesPorOrigen, dto.OrigenCantidad{Origen: c.Clave, Cantidad: c.Cantidad})
	}
	for _, c := range e.UsuariosPorRol {
		out.UsuariosPorRol = append(out.UsuariosPorRol, dto.RolCantidad{TipoRol: c.Clave, Cantidad: c.Cantidad})
	}
	for _, c := range e.EmpresasPorPlan {
		out.EmpresasPorPlan = append(out.EmpresasPorPlan, dto.PlanCantidad{NombrePlan: c.Clave, Cantidad: c.Cantidad})
	}
	return out, nil
}

// MicroempresasCompleto todas las microempresas con plan, precio y conteos.
func (uc *SuperAdminUseCase) MicroempresasCompleto(ctx context.Context) ([]dto.MicroempresaCompletaResponse, error) {
	list, err := uc.microempresas.ListCompleto(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MicroempresaCompletaResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MicroempresaCompletaResponse{
			ID:            m.ID,
			Nombre:        m.Nombre,
			Direccion:     m.Direccion,
			Telefono:      m.Telefono,
			Rubro:         m.Rubro,
			Descripcion:   m.Descripcion,
			Estado:        m.Estado,
			PlanID:        m.PlanID,
			FechaRegistro: m.FechaRegistro,
			NombrePlan:    m.NombrePlan,
			Precio:        m.Precio,
			UsuariosCount: m.UsuariosCount,
			ClientesCount: m.ClientesCount,
		})
	}
	return items, nil
}
