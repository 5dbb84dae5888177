// Package mocks implementaciones testify/mock de los puertos de persistencia y de aplicación,
// compartidas por los tests de casos de uso y de handlers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/microempresas-api/internal/application/ports"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

var (
	_ repository.ClienteRepository      = (*ClienteRepository)(nil)
	_ repository.UsuarioRepository      = (*UsuarioRepository)(nil)
	_ repository.MicroempresaRepository = (*MicroempresaRepository)(nil)
	_ repository.ProductoRepository     = (*ProductoRepository)(nil)
	_ repository.VisitaRepository       = (*VisitaRepository)(nil)
	_ repository.PlanRepository         = (*PlanRepository)(nil)
	_ repository.EstadisticasRepository = (*EstadisticasRepository)(nil)
	_ ports.Cache                       = (*Cache)(nil)
	_ ports.VisitaTxRunner              = (*TxRunner)(nil)
)

// ClienteRepository mock de repository.ClienteRepository.
type ClienteRepository struct{ mock.Mock }

func (m *ClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClienteRepository) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *ClienteRepository) GetByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *ClienteRepository) List(ctx context.Context, f repository.ClienteFilter) ([]*entity.Cliente, int, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.Cliente)
	return list, args.Int(1), args.Error(2)
}

func (m *ClienteRepository) Update(ctx context.Context, id int64, tenant *int64, u repository.ClienteUpdate) (bool, error) {
	args := m.Called(ctx, id, tenant, u)
	return args.Bool(0), args.Error(1)
}

func (m *ClienteRepository) SetEstado(ctx context.Context, id int64, tenant *int64, from, to string) (bool, error) {
	args := m.Called(ctx, id, tenant, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *ClienteRepository) AssociateIfUnset(ctx context.Context, id, microempresaID int64) (bool, error) {
	args := m.Called(ctx, id, microempresaID)
	return args.Bool(0), args.Error(1)
}

// UsuarioRepository mock de repository.UsuarioRepository.
type UsuarioRepository struct{ mock.Mock }

func (m *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.Usuario)
	return u, args.Error(1)
}

func (m *UsuarioRepository) List(ctx context.Context) ([]*entity.Usuario, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Usuario)
	return list, args.Error(1)
}

func (m *UsuarioRepository) SetEstado(ctx context.Context, id int64, estado string) (bool, error) {
	args := m.Called(ctx, id, estado)
	return args.Bool(0), args.Error(1)
}

// MicroempresaRepository mock de repository.MicroempresaRepository.
type MicroempresaRepository struct{ mock.Mock }

func (m *MicroempresaRepository) GetByID(ctx context.Context, id int64) (*entity.Microempresa, error) {
	args := m.Called(ctx, id)
	me, _ := args.Get(0).(*entity.Microempresa)
	return me, args.Error(1)
}

func (m *MicroempresaRepository) IsActiva(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MicroempresaRepository) ListPublicas(ctx context.Context) ([]repository.MicroempresaPublica, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.MicroempresaPublica)
	return list, args.Error(1)
}

func (m *MicroempresaRepository) ListCompleto(ctx context.Context) ([]repository.MicroempresaCompleta, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.MicroempresaCompleta)
	return list, args.Error(1)
}

func (m *MicroempresaRepository) SetEstado(ctx context.Context, id int64, estado string) (bool, error) {
	args := m.Called(ctx, id, estado)
	return args.Bool(0), args.Error(1)
}

// ProductoRepository mock de repository.ProductoRepository.
type ProductoRepository struct{ mock.Mock }

func (m *ProductoRepository) ListEnStock(ctx context.Context, microempresaID int64) ([]*entity.Producto, error) {
	args := m.Called(ctx, microempresaID)
	list, _ := args.Get(0).([]*entity.Producto)
	return list, args.Error(1)
}

// VisitaRepository mock de repository.VisitaRepository.
type VisitaRepository struct{ mock.Mock }

func (m *VisitaRepository) Create(ctx context.Context, v *entity.Visita) error {
	return m.Called(ctx, v).Error(0)
}

// PlanRepository mock de repository.PlanRepository.
type PlanRepository struct{ mock.Mock }

func (m *PlanRepository) ListConEmpresas(ctx context.Context) ([]repository.PlanConEmpresas, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.PlanConEmpresas)
	return list, args.Error(1)
}

func (m *PlanRepository) Create(ctx context.Context, p *entity.PlanPago) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PlanRepository) Update(ctx context.Context, id int64, u repository.PlanUpdate) (bool, error) {
	args := m.Called(ctx, id, u)
	return args.Bool(0), args.Error(1)
}

func (m *PlanRepository) Desactivar(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PlanRepository) Distribucion(ctx context.Context) ([]repository.PlanDistribucion, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.PlanDistribucion)
	return list, args.Error(1)
}

func (m *PlanRepository) Ingresos(ctx context.Context) ([]repository.PlanIngresos, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.PlanIngresos)
	return list, args.Error(1)
}

// EstadisticasRepository mock de repository.EstadisticasRepository.
type EstadisticasRepository struct{ mock.Mock }

func (m *EstadisticasRepository) Resumen(ctx context.Context) (*repository.Estadisticas, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).(*repository.Estadisticas)
	return e, args.Error(1)
}

// Cache mock de ports.Cache.
type Cache struct{ mock.Mock }

func (m *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

func (m *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

// TxRunner ejecuta fn directamente con los repos dados, sin transacción real.
type TxRunner struct {
	Visitas  repository.VisitaRepository
	Clientes repository.ClienteRepository
}

func (r *TxRunner) RunVisita(ctx context.Context, fn func(repository.VisitaRepository, repository.ClienteRepository) error) error {
	return fn(r.Visitas, r.Clientes)
}
