package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/internal/mocks"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

func ptr[T any](v T) *T { return &v }

func vendedor(tenant int64) entity.Caller {
	return entity.Caller{UsuarioID: 2, Rol: entity.RolVendedor, MicroempresaID: &tenant}
}

func superAdmin() entity.Caller {
	return entity.Caller{UsuarioID: 1, Rol: entity.RolSuperAdmin}
}

func TestClienteList_VendedorNoPuedeVerOtraMicroempresa(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ClienteFilter) bool {
		return f.MicroempresaID != nil && *f.MicroempresaID == 5 && !f.JoinEmpresa && f.Estado == entity.EstadoActivo
	})).Return([]*entity.Cliente{{ID: 1, NombreRazonSocial: "Ana"}}, 1, nil)

	items, total, err := uc.List(context.Background(), vendedor(5), entity.EstadoActivo,
		dto.ClienteListQuery{MicroempresaID: ptr(int64(9))})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, items, 1)
	repo.AssertExpectations(t)
}

func TestClienteList_SuperAdminFiltraYUneEmpresa(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	want := repository.ClienteFilter{
		MicroempresaID: ptr(int64(9)),
		JoinEmpresa:    true,
		Estado:         entity.EstadoInactivo,
		Search:         "juan",
		Orden:          repository.OrdenClienteReciente,
		Page:           predicate.Page{Number: 2, Size: 50},
	}
	repo.On("List", mock.Anything, want).Return([]*entity.Cliente{}, 0, nil)

	items, total, err := uc.List(context.Background(), superAdmin(), entity.EstadoInactivo, dto.ClienteListQuery{
		PageQuery:      dto.PageQuery{Page: 2, Limit: 50},
		Search:         "juan",
		MicroempresaID: ptr(int64(9)),
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	repo.AssertExpectations(t)
}

func TestClienteList_LimiteSeAcota(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ClienteFilter) bool {
		return f.Page == predicate.Page{Number: 1, Size: usecase.MaxPageSize}
	})).Return([]*entity.Cliente{}, 0, nil)

	_, _, err := uc.List(context.Background(), vendedor(5), entity.EstadoActivo,
		dto.ClienteListQuery{PageQuery: dto.PageQuery{Page: -3, Limit: 99999}})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestClienteList_SinMicroempresa_Rechaza(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	_, _, err := uc.List(context.Background(), entity.Caller{UsuarioID: 3, Rol: entity.RolAdministrador},
		entity.EstadoActivo, dto.ClienteListQuery{})

	assert.ErrorIs(t, err, domain.ErrNoTenant)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestClienteCreate_UsaMicroempresaDelOperador(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Cliente) bool {
		return c.NombreRazonSocial == "Ferretería Sur" && *c.MicroempresaID == 5 &&
			c.Origen == entity.OrigenSistema && c.Estado == entity.EstadoActivo
	})).Return(nil)

	out, err := uc.Create(context.Background(), vendedor(5), dto.CreateClienteRequest{
		NombreRazonSocial: "  Ferretería Sur ",
		MicroempresaID:    ptr(int64(77)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), *out.MicroempresaID)
	repo.AssertExpectations(t)
}

func TestClienteCreate_SinNombre(t *testing.T) {
	uc := usecase.NewClienteUseCase(new(mocks.ClienteRepository))
	_, err := uc.Create(context.Background(), vendedor(5), dto.CreateClienteRequest{NombreRazonSocial: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClienteDelete_YaInactivoDaNotFound(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("SetEstado", mock.Anything, int64(3), ptr(int64(5)), entity.EstadoActivo, entity.EstadoInactivo).
		Return(false, nil)

	err := uc.Delete(context.Background(), vendedor(5), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestClienteDelete_SuperAdminSinRestriccion(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("SetEstado", mock.Anything, int64(3), (*int64)(nil), entity.EstadoActivo, entity.EstadoInactivo).
		Return(true, nil)

	require.NoError(t, uc.Delete(context.Background(), superAdmin(), 3))
	repo.AssertExpectations(t)
}

func TestClienteReactivar_SoloSuperAdmin(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	err := uc.Reactivar(context.Background(), vendedor(5), 3)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "SetEstado", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	repo.On("SetEstado", mock.Anything, int64(3), (*int64)(nil), entity.EstadoInactivo, entity.EstadoActivo).
		Return(true, nil)
	require.NoError(t, uc.Reactivar(context.Background(), superAdmin(), 3))
	repo.AssertExpectations(t)
}

func TestClienteUpdate_SinCampos(t *testing.T) {
	uc := usecase.NewClienteUseCase(new(mocks.ClienteRepository))
	err := uc.Update(context.Background(), vendedor(5), 3, dto.UpdateClienteRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFields)
}

func TestClienteUpdate_OtraMicroempresaDaNotFound(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := usecase.NewClienteUseCase(repo)

	repo.On("Update", mock.Anything, int64(3), ptr(int64(5)), repository.ClienteUpdate{Telefono: ptr("777")}).
		Return(false, nil)

	err := uc.Update(context.Background(), vendedor(5), 3, dto.UpdateClienteRequest{Telefono: ptr("777")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestClienteSetEstado_EstadoInvalido(t *testing.T) {
	uc := usecase.NewClienteUseCase(new(mocks.ClienteRepository))
	err := uc.SetEstado(context.Background(), superAdmin(), 3, "borrado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
