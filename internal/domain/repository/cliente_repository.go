package repository

import (
	"context"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

// Orden de los listados de clientes.
const (
	OrdenClienteReciente = iota // id_cliente DESC
	OrdenClienteRegistro        // fecha_registro DESC
	OrdenClienteNombre          // nombre_razon_social
)

// ClienteFilter filtro ya resuelto por rol: MicroempresaID nil significa todas las microempresas.
// Estado, Origen y Search vacíos no filtran.
type ClienteFilter struct {
	MicroempresaID *int64
	JoinEmpresa    bool
	Estado         string
	Origen         string
	Search         string
	Orden          int
	Page           predicate.Page
}

// ClienteUpdate campos modificables de un cliente; nil = no tocar.
type ClienteUpdate struct {
	NombreRazonSocial *string
	CINIT             *string
	Telefono          *string
	Email             *string
}

// Empty informa si no hay ningún campo para actualizar.
func (u ClienteUpdate) Empty() bool {
	return u.NombreRazonSocial == nil && u.CINIT == nil && u.Telefono == nil && u.Email == nil
}

// ClienteRepository define el puerto de persistencia para Cliente.
// En los métodos con tenant, nil significa sin restricción de microempresa (solo super_admin).
// Los métodos que devuelven bool informan si alguna fila fue afectada.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cliente, error)
	List(ctx context.Context, f ClienteFilter) ([]*entity.Cliente, int, error)
	Update(ctx context.Context, id int64, tenant *int64, u ClienteUpdate) (bool, error)
	// SetEstado cambia el estado solo si el actual es from (from vacío = cualquiera distinto de to).
	SetEstado(ctx context.Context, id int64, tenant *int64, from, to string) (bool, error)
	// AssociateIfUnset asigna la microempresa solo si el cliente aún no tiene una.
	AssociateIfUnset(ctx context.Context, id, microempresaID int64) (bool, error)
}
