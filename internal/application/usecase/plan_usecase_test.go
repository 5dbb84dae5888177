package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/internal/mocks"
)

const ttl = 5 * time.Minute

func TestPlanList_CacheHitNoConsultaDB(t *testing.T) {
	repo := new(mocks.PlanRepository)
	cache := new(mocks.Cache)
	uc := usecase.NewPlanUseCase(repo, cache, ttl)

	raw, err := json.Marshal([]dto.PlanResponse{{ID: 1, NombrePlan: "Básico"}})
	require.NoError(t, err)
	cache.On("Get", mock.Anything, usecase.PlanesCacheKey).Return(raw, true, nil)

	items, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Básico", items[0].NombrePlan)
	repo.AssertNotCalled(t, "ListConEmpresas", mock.Anything)
}

func TestPlanList_CacheMissGuardaResultado(t *testing.T) {
	repo := new(mocks.PlanRepository)
	cache := new(mocks.Cache)
	uc := usecase.NewPlanUseCase(repo, cache, ttl)

	cache.On("Get", mock.Anything, usecase.PlanesCacheKey).Return(nil, false, nil)
	repo.On("ListConEmpresas", mock.Anything).Return([]repository.PlanConEmpresas{{
		PlanPago:      entity.PlanPago{ID: 2, NombrePlan: "Pro", Precio: decimal.NewFromInt(50)},
		EmpresasCount: 3, EmpresasActivas: 2,
	}}, nil)
	cache.On("Set", mock.Anything, usecase.PlanesCacheKey, mock.Anything, ttl).Return(nil)

	items, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].EmpresasCount)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestPlanList_CacheCaidaNoRompe(t *testing.T) {
	repo := new(mocks.PlanRepository)
	cache := new(mocks.Cache)
	uc := usecase.NewPlanUseCase(repo, cache, ttl)

	cache.On("Get", mock.Anything, usecase.PlanesCacheKey).Return(nil, false, errors.New("connection refused"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	repo.On("ListConEmpresas", mock.Anything).Return([]repository.PlanConEmpresas{}, nil)

	items, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPlanList_SinCache(t *testing.T) {
	repo := new(mocks.PlanRepository)
	uc := usecase.NewPlanUseCase(repo, nil, ttl)
	repo.On("ListConEmpresas", mock.Anything).Return([]repository.PlanConEmpresas{}, nil)

	_, err := uc.List(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPlanUpdate_SoloCamposPermitidosEInvalidaCache(t *testing.T) {
	repo := new(mocks.PlanRepository)
	cache := new(mocks.Cache)
	uc := usecase.NewPlanUseCase(repo, cache, ttl)

	precio := decimal.NewFromInt(99)
	repo.On("Update", mock.Anything, int64(4), repository.PlanUpdate{Precio: &precio}).Return(true, nil)
	cache.On("Delete", mock.Anything, []string{usecase.PlanesCacheKey}).Return(nil)

	require.NoError(t, uc.Update(context.Background(), 4, dto.UpdatePlanFields{Precio: &precio}))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestPlanUpdate_SinCampos(t *testing.T) {
	uc := usecase.NewPlanUseCase(new(mocks.PlanRepository), nil, ttl)
	assert.ErrorIs(t, uc.Update(context.Background(), 4, dto.UpdatePlanFields{}), domain.ErrNoFields)
}

func TestPlanUpdate_EstadoFueraDeVocabulario(t *testing.T) {
	uc := usecase.NewPlanUseCase(new(mocks.PlanRepository), nil, ttl)
	err := uc.Update(context.Background(), 4, dto.UpdatePlanFields{Estado: ptr("borrado")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanUpdate_NoExiste(t *testing.T) {
	repo := new(mocks.PlanRepository)
	cache := new(mocks.Cache)
	uc := usecase.NewPlanUseCase(repo, cache, ttl)
	repo.On("Update", mock.Anything, int64(40), mock.Anything).Return(false, nil)

	err := uc.Update(context.Background(), 40, dto.UpdatePlanFields{TipoPlan: ptr("anual")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlanCreate_Validaciones(t *testing.T) {
	uc := usecase.NewPlanUseCase(new(mocks.PlanRepository), nil, ttl)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePlanRequest{NombrePlan: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreatePlanRequest{NombrePlan: "X", Precio: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreatePlanRequest{NombrePlan: "X", Estado: "gratis"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanCreate_EstadoPorDefectoActivo(t *testing.T) {
	repo := new(mocks.PlanRepository)
	uc := usecase.NewPlanUseCase(repo, nil, ttl)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.PlanPago) bool {
		return p.Estado == entity.EstadoActivo && p.NombrePlan == "Empresarial"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.PlanPago).ID = 8
	}).Return(nil)

	out, err := uc.Create(context.Background(), dto.CreatePlanRequest{NombrePlan: "Empresarial", Precio: decimal.NewFromInt(120)})
	require.NoError(t, err)
	assert.Equal(t, int64(8), out.ID)
	assert.Equal(t, entity.EstadoActivo, out.Estado)
}

func TestPlanDesactivar_YaInactivo(t *testing.T) {
	repo := new(mocks.PlanRepository)
	uc := usecase.NewPlanUseCase(repo, nil, ttl)
	repo.On("Desactivar", mock.Anything, int64(2)).Return(false, nil)

	assert.ErrorIs(t, uc.Desactivar(context.Background(), 2), domain.ErrNotFound)
}

func TestPlanEstadisticas(t *testing.T) {
	repo := new(mocks.PlanRepository)
	uc := usecase.NewPlanUseCase(repo, nil, ttl)
	repo.On("Distribucion", mock.Anything).Return([]repository.PlanDistribucion{
		{NombrePlan: "Pro", TotalEmpresas: 3, EmpresasActivas: 2, EmpresasInactivas: 1},
	}, nil)
	repo.On("Ingresos", mock.Anything).Return([]repository.PlanIngresos{
		{NombrePlan: "Pro", Precio: decimal.NewFromInt(50), TotalEmpresas: 2, IngresosMensualesEstimados: decimal.NewFromInt(100)},
	}, nil)

	out, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Distribucion, 1)
	require.Len(t, out.Ingresos, 1)
	assert.True(t, out.Ingresos[0].IngresosMensualesEstimados.Equal(decimal.NewFromInt(100)))
}
