package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// MicroempresaPublica microempresa activa con el número de productos publicados.
type MicroempresaPublica struct {
	entity.Microempresa
	ProductosCount int
}

// MicroempresaCompleta vista de super_admin: plan y conteos de usuarios y clientes.
type MicroempresaCompleta struct {
	entity.Microempresa
	NombrePlan    *string
	Precio        decimal.NullDecimal
	UsuariosCount int
	ClientesCount int
}

// MicroempresaRepository define el puerto de persistencia para Microempresa.
type MicroempresaRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Microempresa, error)
	IsActiva(ctx context.Context, id int64) (bool, error)
	ListPublicas(ctx context.Context) ([]MicroempresaPublica, error)
	ListCompleto(ctx context.Context) ([]MicroempresaCompleta, error)
	SetEstado(ctx context.Context, id int64, estado string) (bool, error)
}
