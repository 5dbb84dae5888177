package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/mocks"
)

type publicoFixture struct {
	microempresas *mocks.MicroempresaRepository
	productos     *mocks.ProductoRepository
	visitas       *mocks.VisitaRepository
	clientes      *mocks.ClienteRepository
	uc            *usecase.PublicoUseCase
}

func newPublicoFixture() *publicoFixture {
	f := &publicoFixture{
		microempresas: new(mocks.MicroempresaRepository),
		productos:     new(mocks.ProductoRepository),
		visitas:       new(mocks.VisitaRepository),
		clientes:      new(mocks.ClienteRepository),
	}
	tx := &mocks.TxRunner{Visitas: f.visitas, Clientes: f.clientes}
	f.uc = usecase.NewPublicoUseCase(f.microempresas, f.productos, tx)
	return f
}

func TestRegistrarVisita_PrimeraVisitaAsocia(t *testing.T) {
	f := newPublicoFixture()
	f.microempresas.On("GetByID", mock.Anything, int64(4)).Return(&entity.Microempresa{ID: 4, Estado: entity.EstadoActiva}, nil)
	f.clientes.On("GetByID", mock.Anything, int64(10)).Return(&entity.Cliente{ID: 10}, nil)
	f.visitas.On("Create", mock.Anything, &entity.Visita{ClienteID: 10, MicroempresaID: 4}).Return(nil)
	f.clientes.On("AssociateIfUnset", mock.Anything, int64(10), int64(4)).Return(true, nil)

	out, err := f.uc.RegistrarVisita(context.Background(), dto.VisitaRequest{ClienteID: 10, MicroempresaID: 4})
	require.NoError(t, err)
	assert.True(t, out.Asociado)
	f.visitas.AssertExpectations(t)
	f.clientes.AssertExpectations(t)
}

func TestRegistrarVisita_YaAsociadoNoCambia(t *testing.T) {
	f := newPublicoFixture()
	first := int64(2)
	f.microempresas.On("GetByID", mock.Anything, int64(4)).Return(&entity.Microempresa{ID: 4}, nil)
	f.clientes.On("GetByID", mock.Anything, int64(10)).Return(&entity.Cliente{ID: 10, MicroempresaID: &first}, nil)
	f.visitas.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.clientes.On("AssociateIfUnset", mock.Anything, int64(10), int64(4)).Return(false, nil)

	out, err := f.uc.RegistrarVisita(context.Background(), dto.VisitaRequest{ClienteID: 10, MicroempresaID: 4})
	require.NoError(t, err)
	assert.False(t, out.Asociado)
	f.visitas.AssertNumberOfCalls(t, "Create", 1)
}

func TestRegistrarVisita_ClienteInexistente(t *testing.T) {
	f := newPublicoFixture()
	f.microempresas.On("GetByID", mock.Anything, int64(4)).Return(&entity.Microempresa{ID: 4}, nil)
	f.clientes.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := f.uc.RegistrarVisita(context.Background(), dto.VisitaRequest{ClienteID: 99, MicroempresaID: 4})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.visitas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrarVisita_MicroempresaInexistente(t *testing.T) {
	f := newPublicoFixture()
	f.microempresas.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)

	_, err := f.uc.RegistrarVisita(context.Background(), dto.VisitaRequest{ClienteID: 10, MicroempresaID: 4})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.clientes.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRegistrarVisita_IdsObligatorios(t *testing.T) {
	f := newPublicoFixture()
	_, err := f.uc.RegistrarVisita(context.Background(), dto.VisitaRequest{ClienteID: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductos_MicroempresaInactiva(t *testing.T) {
	f := newPublicoFixture()
	f.microempresas.On("IsActiva", mock.Anything, int64(4)).Return(false, nil)

	_, err := f.uc.Productos(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.productos.AssertNotCalled(t, "ListEnStock", mock.Anything, mock.Anything)
}

func TestMicroempresa_DetalleCuentaProductos(t *testing.T) {
	f := newPublicoFixture()
	f.microempresas.On("GetByID", mock.Anything, int64(4)).
		Return(&entity.Microempresa{ID: 4, Nombre: "Panadería", Estado: entity.EstadoActiva}, nil)
	f.productos.On("ListEnStock", mock.Anything, int64(4)).Return([]*entity.Producto{
		{ID: 1, Nombre: "Pan", Precio: decimal.NewFromFloat(0.5)},
		{ID: 2, Nombre: "Torta", Precio: decimal.NewFromInt(80)},
	}, nil)

	out, err := f.uc.Microempresa(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 2, out.ProductosCount)
	assert.Equal(t, "Panadería", out.Nombre)
}
