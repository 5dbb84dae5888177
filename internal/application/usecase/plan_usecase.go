package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/ports"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// PlanesCacheKey clave del listado de planes en caché.
const PlanesCacheKey = "planes:list"

// PlanUseCase administración de planes de pago (solo super_admin, verificado en el router).
type PlanUseCase struct {
	repo  repository.PlanRepository
	cache ports.Cache // nil = sin caché
	ttl   time.Duration
}

// NewPlanUseCase construye el caso de uso. cache puede ser nil.
func NewPlanUseCase(repo repository.PlanRepository, cache ports.Cache, ttl time.Duration) *PlanUseCase {
	return &PlanUseCase{repo: repo, cache: cache, ttl: ttl}
}

// List todos los planes con conteo de microempresas, ordenados por precio.
func (uc *PlanUseCase) List(ctx context.Context) ([]dto.PlanResponse, error) {
	if cached, ok := uc.fromCache(ctx); ok {
		return cached, nil
	}
	list, err := uc.repo.ListConEmpresas(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, planToResponse(p))
	}
	uc.toCache(ctx, items)
	return items, nil
}

// Create alta de plan.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	nombre := strings.TrimSpace(in.NombrePlan)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre_plan es obligatorio", domain.ErrInvalidInput)
	}
	if in.Precio.IsNegative() {
		return nil, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.LimiteUsuarios < 0 || in.LimiteProductos < 0 {
		return nil, fmt.Errorf("%w: los límites no pueden ser negativos", domain.ErrInvalidInput)
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoActivo
	}
	if !entity.EstadoPlanValido(estado) {
		return nil, fmt.Errorf("%w: estado debe ser activo, inactivo o suscrito", domain.ErrInvalidInput)
	}
	p := &entity.PlanPago{
		NombrePlan:      nombre,
		Descripcion:     in.Descripcion,
		Precio:          in.Precio,
		TipoPlan:        in.TipoPlan,
		LimiteUsuarios:  in.LimiteUsuarios,
		LimiteProductos: in.LimiteProductos,
		Estado:          estado,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	resp := planToResponse(repository.PlanConEmpresas{PlanPago: *p})
	return &resp, nil
}

// Update modifica solo los campos permitidos presentes en in.
func (uc *PlanUseCase) Update(ctx context.Context, id int64, in dto.UpdatePlanFields) error {
	if in.NombrePlan != nil && strings.TrimSpace(*in.NombrePlan) == "" {
		return fmt.Errorf("%w: nombre_plan no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Precio != nil && in.Precio.IsNegative() {
		return fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Estado != nil && !entity.EstadoPlanValido(*in.Estado) {
		return fmt.Errorf("%w: estado debe ser activo, inactivo o suscrito", domain.ErrInvalidInput)
	}
	u := repository.PlanUpdate{
		NombrePlan:      in.NombrePlan,
		Descripcion:     in.Descripcion,
		Precio:          in.Precio,
		TipoPlan:        in.TipoPlan,
		LimiteUsuarios:  in.LimiteUsuarios,
		LimiteProductos: in.LimiteProductos,
		Estado:          in.Estado,
	}
	if u.Empty() {
		return domain.ErrNoFields
	}
	ok, err := uc.repo.Update(ctx, id, u)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.invalidate(ctx)
	return nil
}

// Desactivar soft-delete del plan; ErrNotFound si no existe o ya estaba inactivo.
func (uc *PlanUseCase) Desactivar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Desactivar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.invalidate(ctx)
	return nil
}

// Estadisticas distribución de microempresas e ingresos estimados por plan.
func (uc *PlanUseCase) Estadisticas(ctx context.Context) (*dto.PlanEstadisticasResponse, error) {
	dist, err := uc.repo.Distribucion(ctx)
	if err != nil {
		return nil, err
	}
	ingresos, err := uc.repo.Ingresos(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.PlanEstadisticasResponse{
		Distribucion: make([]dto.PlanDistribucionResponse, 0, len(dist)),
		Ingresos:     make([]dto.PlanIngresosResponse, 0, len(ingresos)),
	}
	for _, d := range dist {
		out.Distribucion = append(out.Distribucion, dto.PlanDistribucionResponse{
			NombrePlan:        d.NombrePlan,
			TotalEmpresas:     d.TotalEmpresas,
			EmpresasActivas:   d.EmpresasActivas,
			EmpresasInactivas: d.EmpresasInactivas,
		})
	}
	for _, in := range ingresos {
		out.Ingresos = append(out.Ingresos, dto.PlanIngresosResponse{
			NombrePlan:                 in.NombrePlan,
			Precio:                     in.Precio,
			TotalEmpresas:              in.TotalEmpresas,
			IngresosMensualesEstimados: in.IngresosMensualesEstimados,
		})
	}
	return out, nil
}

func (uc *PlanUseCase) fromCache(ctx context.Context) ([]dto.PlanResponse, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, found, err := uc.cache.Get(ctx, PlanesCacheKey)
	if err != nil {
		log.Warn().Err(err).Str("key", PlanesCacheKey).Msg("cache get")
		return nil, false
	}
	if !found {
		return nil, false
	}
	var items []dto.PlanResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", PlanesCacheKey).Msg("cache decode")
		return nil, false
	}
	return items, true
}

func (uc *PlanUseCase) toCache(ctx context.Context, items []dto.PlanResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, PlanesCacheKey, raw, uc.ttl); err != nil {
		log.Warn().Err(err).Str("key", PlanesCacheKey).Msg("cache set")
	}
}

func (uc *PlanUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, PlanesCacheKey); err != nil {
		log.Warn().Err(err).Str("key", PlanesCacheKey).Msg("cache delete")
	}
}

func planToResponse(p repository.PlanConEmpresas) dto.PlanResponse {
	return dto.PlanResponse{
		ID:              p.ID,
		NombrePlan:      p.NombrePlan,
		Descripcion:     p.Descripcion,
		Precio:          p.Precio,
		TipoPlan:        p.TipoPlan,
		LimiteUsuarios:  p.LimiteUsuarios,
		LimiteProductos: p.LimiteProductos,
		Estado:          p.Estado,
		EmpresasCount:   p.EmpresasCount,
		EmpresasActivas: p.EmpresasActivas,
	}
}
