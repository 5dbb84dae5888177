package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// UsuarioUseCase administración de operadores desde el panel de super_admin.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List todos los operadores con su rol y microempresa.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *UsuarioToResponse(u))
	}
	return items, nil
}

// SetEstado activa o desactiva un operador. Un super_admin no puede desactivarse a sí mismo.
func (uc *UsuarioUseCase) SetEstado(ctx context.Context, caller entity.Caller, id int64, estado string) error {
	if !entity.EstadoPersonaValido(estado) {
		return fmt.Errorf("%w: estado debe ser activo o inactivo", domain.ErrInvalidInput)
	}
	if id == caller.UsuarioID && estado == entity.EstadoInactivo {
		return fmt.Errorf("%w: no puede desactivar su propio usuario", domain.ErrInvalidInput)
	}
	ok, err := uc.repo.SetEstado(ctx, id, estado)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// UsuarioToResponse convierte la entidad a DTO; nunca expone el password.
func UsuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:             u.ID,
		Nombre:         u.Nombre,
		Email:          u.Email,
		Rol:            u.Rol,
		Estado:         u.Estado,
		MicroempresaID: u.MicroempresaID,
		EmpresaNombre:  u.EmpresaNombre,
		FechaRegistro:  u.FechaRegistro,
	}
}
