package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/jwt"
)

// PublicAuthUseCase registro, login y verificación de clientes públicos.
// Sus tokens llevan tipo cliente_publico y no sirven en rutas de operadores.
type PublicAuthUseCase struct {
	clientes repository.ClienteRepository
	jwtCfg   JWTConfig
}

// NewPublicAuthUseCase construye el caso de uso de auth pública.
func NewPublicAuthUseCase(clientes repository.ClienteRepository, jwtCfg JWTConfig) *PublicAuthUseCase {
	return &PublicAuthUseCase{clientes: clientes, jwtCfg: jwtCfg}
}

// Registrar crea un cliente de origen publico. El email duplicado (de cualquier origen) se rechaza
// antes de insertar con ErrEmailAlreadyExists.
func (uc *PublicAuthUseCase) Registrar(ctx context.Context, in dto.RegistroPublicoRequest) (*dto.AuthPublicoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	email := strings.TrimSpace(in.Email)
	if nombre == "" || email == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.clientes.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	c := &entity.Cliente{
		NombreRazonSocial: nombre,
		Email:             &email,
		Telefono:          in.Telefono,
		Origen:            entity.OrigenPublico,
		Estado:            entity.EstadoActivo,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		c.PasswordHash = &h
	}
	if err := uc.clientes.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.authResponse("Cliente registrado exitosamente", c)
}

// Login email desconocido, cliente sin password o password incorrecto dan ErrUnauthorized;
// cliente inactivo, ErrForbidden.
func (uc *PublicAuthUseCase) Login(ctx context.Context, in dto.LoginPublicoRequest) (*dto.AuthPublicoResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	c, err := uc.clientes.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil || c.PasswordHash == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*c.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if c.Estado != entity.EstadoActivo {
		return nil, domain.ErrForbidden
	}
	return uc.authResponse("Login exitoso", c)
}

// Verify valida un token de cliente público. Token ausente, inválido, expirado o de otro tipo da
// ErrUnauthorized; cliente inexistente, ErrNotFound.
func (uc *PublicAuthUseCase) Verify(ctx context.Context, token string) (*dto.VerifyResponse, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.ParseTipo(uc.jwtCfg.Secret, token, jwt.TipoClientePublico)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	c, err := uc.clientes.GetByID(ctx, claims.SubjectID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	cliente := clientePublico(c)
	return &dto.VerifyResponse{Valid: true, Cliente: &cliente}, nil
}

func (uc *PublicAuthUseCase) authResponse(msg string, c *entity.Cliente) (*dto.AuthPublicoResponse, error) {
	cliente := clientePublico(c)
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Claims{
		SubjectID: c.ID,
		Nombre:    cliente.Nombre,
		Email:     cliente.Email,
		Tipo:      jwt.TipoClientePublico,
	})
	if err != nil {
		return nil, err
	}
	return &dto.AuthPublicoResponse{Message: msg, Token: token, Cliente: cliente}, nil
}

func clientePublico(c *entity.Cliente) dto.ClientePublicoResponse {
	out := dto.ClientePublicoResponse{
		ID:             c.ID,
		Nombre:         c.NombreRazonSocial,
		Telefono:       c.Telefono,
		MicroempresaID: c.MicroempresaID,
	}
	if c.Email != nil {
		out.Email = *c.Email
	}
	return out
}
