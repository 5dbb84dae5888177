// Package access decide la visibilidad de filas según el rol del operador.
package access

import (
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// Scope filtro de microempresa efectivo para una consulta.
// JoinEmpresa es true cuando el operador ve varias microempresas y la respuesta incluye el nombre.
type Scope struct {
	MicroempresaID *int64
	JoinEmpresa    bool
}

// ForCaller resuelve el scope. super_admin puede filtrar por requested (o ver todo si es nil);
// cualquier otro rol queda fijado a su propia microempresa y requested se ignora.
func ForCaller(c entity.Caller, requested *int64) (Scope, error) {
	if c.IsSuperAdmin() {
		return Scope{MicroempresaID: requested, JoinEmpresa: true}, nil
	}
	if c.MicroempresaID == nil {
		return Scope{}, domain.ErrNoTenant
	}
	own := *c.MicroempresaID
	return Scope{MicroempresaID: &own}, nil
}

// RequireSuperAdmin devuelve domain.ErrForbidden para cualquier rol distinto de super_admin.
func RequireSuperAdmin(c entity.Caller) error {
	if !c.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
