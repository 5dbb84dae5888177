package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
)

// MicroempresaService estado de las microempresas: el middleware de tenant consulta aquí si la
// microempresa del operador sigue activa, y super_admin la activa o desactiva.
type MicroempresaService struct {
	repo repository.MicroempresaRepository
}

// NewMicroempresaService construye el servicio de microempresas.
func NewMicroempresaService(repo repository.MicroempresaRepository) *MicroempresaService {
	return &MicroempresaService{repo: repo}
}

// IsActiva informa si la microempresa existe y está activa.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *MicroempresaService) IsActiva(ctx context.Context, microempresaID int64) (bool, error) {
	if microempresaID <= 0 {
		return false, fmt.Errorf("microempresa: id inválido")
	}
	return s.repo.IsActiva(ctx, microempresaID)
}

// SetEstado activa o desactiva una microempresa.
func (s *MicroempresaService) SetEstado(ctx context.Context, id int64, estado string) error {
	if !entity.EstadoMicroempresaValido(estado) {
		return fmt.Errorf("%w: estado debe ser activa o inactiva", domain.ErrInvalidInput)
	}
	ok, err := s.repo.SetEstado(ctx, id, estado)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
