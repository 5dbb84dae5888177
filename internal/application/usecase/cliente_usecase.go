package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/access"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

// Límites de paginación de todos los listados de clientes.
const (
	DefaultPageSize = 1000
	MaxPageSize     = 1000
)

// ClienteUseCase administración de clientes por operadores, siempre acotada a la microempresa
// del operador salvo para super_admin.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso con el puerto de persistencia.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create da de alta un cliente de origen sistema en la microempresa del operador.
func (uc *ClienteUseCase) Create(ctx context.Context, caller entity.Caller, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(in.NombreRazonSocial)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre_razon_social es obligatorio", domain.ErrInvalidInput)
	}
	scope, err := access.ForCaller(caller, in.MicroempresaID)
	if err != nil {
		return nil, err
	}
	c := &entity.Cliente{
		NombreRazonSocial: nombre,
		CINIT:             in.CINIT,
		Telefono:          in.Telefono,
		Email:             in.Email,
		Origen:            entity.OrigenSistema,
		Estado:            entity.EstadoActivo,
		MicroempresaID:    scope.MicroempresaID,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return ClienteToResponse(c), nil
}

// List clientes con el estado dado visibles para el operador. Devuelve la página y el total.
func (uc *ClienteUseCase) List(ctx context.Context, caller entity.Caller, estado string, q dto.ClienteListQuery) ([]dto.ClienteResponse, int, error) {
	scope, err := access.ForCaller(caller, q.MicroempresaID)
	if err != nil {
		return nil, 0, err
	}
	return uc.list(ctx, repository.ClienteFilter{
		MicroempresaID: scope.MicroempresaID,
		JoinEmpresa:    scope.JoinEmpresa,
		Estado:         estado,
		Origen:         q.Origen,
		Search:         q.Search,
		Orden:          repository.OrdenClienteReciente,
		Page:           predicate.NewPage(q.Page, q.Limit, DefaultPageSize, MaxPageSize),
	})
}

// Search búsqueda de clientes activos entre todas las microempresas (solo super_admin).
func (uc *ClienteUseCase) Search(ctx context.Context, caller entity.Caller, q dto.ClienteListQuery) ([]dto.ClienteResponse, int, error) {
	if err := access.RequireSuperAdmin(caller); err != nil {
		return nil, 0, err
	}
	return uc.List(ctx, caller, entity.EstadoActivo, q)
}

// ListByMicroempresa clientes activos de una microempresa concreta (solo super_admin).
func (uc *ClienteUseCase) ListByMicroempresa(ctx context.Context, caller entity.Caller, microempresaID int64, page dto.PageQuery) ([]dto.ClienteResponse, int, error) {
	if err := access.RequireSuperAdmin(caller); err != nil {
		return nil, 0, err
	}
	return uc.List(ctx, caller, entity.EstadoActivo, dto.ClienteListQuery{PageQuery: page, MicroempresaID: &microempresaID})
}

// Update modifica los campos presentes de un cliente de la microempresa del operador.
func (uc *ClienteUseCase) Update(ctx context.Context, caller entity.Caller, id int64, in dto.UpdateClienteRequest) error {
	u := repository.ClienteUpdate{
		NombreRazonSocial: in.NombreRazonSocial,
		CINIT:             in.CINIT,
		Telefono:          in.Telefono,
		Email:             in.Email,
	}
	if u.Empty() {
		return domain.ErrNoFields
	}
	if u.NombreRazonSocial != nil && strings.TrimSpace(*u.NombreRazonSocial) == "" {
		return fmt.Errorf("%w: nombre_razon_social no puede quedar vacío", domain.ErrInvalidInput)
	}
	tenant, err := tenantFor(caller)
	if err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, id, tenant, u)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete soft-delete: activo -> inactivo. Un cliente ya inactivo o de otra microempresa da ErrNotFound.
func (uc *ClienteUseCase) Delete(ctx context.Context, caller entity.Caller, id int64) error {
	tenant, err := tenantFor(caller)
	if err != nil {
		return err
	}
	return uc.transition(ctx, id, tenant, entity.EstadoActivo, entity.EstadoInactivo)
}

// Reactivar inactivo -> activo (solo super_admin, sin restricción de microempresa).
func (uc *ClienteUseCase) Reactivar(ctx context.Context, caller entity.Caller, id int64) error {
	if err := access.RequireSuperAdmin(caller); err != nil {
		return err
	}
	return uc.transition(ctx, id, nil, entity.EstadoInactivo, entity.EstadoActivo)
}

// SetEstado fija el estado desde el panel de super_admin.
func (uc *ClienteUseCase) SetEstado(ctx context.Context, caller entity.Caller, id int64, estado string) error {
	if err := access.RequireSuperAdmin(caller); err != nil {
		return err
	}
	if !entity.EstadoPersonaValido(estado) {
		return fmt.Errorf("%w: estado debe ser activo o inactivo", domain.ErrInvalidInput)
	}
	return uc.transition(ctx, id, nil, "", estado)
}

func (uc *ClienteUseCase) transition(ctx context.Context, id int64, tenant *int64, from, to string) error {
	ok, err := uc.repo.SetEstado(ctx, id, tenant, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ClienteUseCase) list(ctx context.Context, f repository.ClienteFilter) ([]dto.ClienteResponse, int, error) {
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ClienteToResponse(c))
	}
	return items, total, nil
}

// tenantFor nil para super_admin (sin restricción); la microempresa propia para el resto.
func tenantFor(caller entity.Caller) (*int64, error) {
	scope, err := access.ForCaller(caller, nil)
	if err != nil {
		return nil, err
	}
	return scope.MicroempresaID, nil
}

// ClienteToResponse convierte la entidad a DTO; nunca expone el password.
func ClienteToResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                c.ID,
		NombreRazonSocial: c.NombreRazonSocial,
		CINIT:             c.CINIT,
		Telefono:          c.Telefono,
		Email:             c.Email,
		Origen:            c.Origen,
		Estado:            c.Estado,
		MicroempresaID:    c.MicroempresaID,
		FechaRegistro:     c.FechaRegistro,
		EmpresaNombre:     c.EmpresaNombre,
		EmpresaTelefono:   c.EmpresaTelefono,
	}
}
