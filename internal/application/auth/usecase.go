package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/application/usecase"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de operadores (tabla usuario).
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido o password incorrecto dan ErrUnauthorized; usuario inactivo o sin microempresa, ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Estado != entity.EstadoActivo {
		return nil, domain.ErrForbidden
	}
	if user.Rol != entity.RolSuperAdmin && user.MicroempresaID == nil {
		return nil, domain.ErrNoTenant
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Claims{
		SubjectID:      user.ID,
		Nombre:         user.Nombre,
		Email:          user.Email,
		Rol:            user.Rol,
		MicroempresaID: user.MicroempresaID,
		Tipo:           jwt.TipoUsuario,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *usecase.UsuarioToResponse(user),
	}, nil
}
