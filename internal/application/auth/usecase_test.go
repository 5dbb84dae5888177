package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/microempresas-api/internal/application/auth"
	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
	"github.com/jhoicas/microempresas-api/internal/mocks"
	"github.com/jhoicas/microempresas-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "test"}

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Operador(t *testing.T) {
	repo := new(mocks.UsuarioRepository)
	tenant := int64(5)
	repo.On("GetByEmail", mock.Anything, "ana@empresa.bo").Return(&entity.Usuario{
		ID: 3, Email: "ana@empresa.bo", PasswordHash: hash(t, "secreto"), Rol: entity.RolAdministrador,
		Estado: entity.EstadoActivo, MicroempresaID: &tenant,
	}, nil)

	out, err := auth.NewAuthUseCase(repo, testJWT).Login(context.Background(),
		dto.LoginRequest{Email: "ana@empresa.bo", Password: "secreto"})
	require.NoError(t, err)

	claims, err := jwt.ParseTipo(testJWT.Secret, out.Token, jwt.TipoUsuario)
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdministrador, claims.Rol)
	assert.Equal(t, int64(5), *claims.MicroempresaID)
	assert.Equal(t, int64(3), out.Usuario.ID)
}

func TestLogin_Operador_Errores(t *testing.T) {
	tenant := int64(5)
	cases := []struct {
		name    string
		usuario *entity.Usuario
		pw      string
		want    error
	}{
		{"email desconocido", nil, "secreto", domain.ErrUnauthorized},
		{"password incorrecto", &entity.Usuario{ID: 1, PasswordHash: hash(t, "secreto"), Estado: entity.EstadoActivo, MicroempresaID: &tenant}, "otro", domain.ErrUnauthorized},
		{"inactivo", &entity.Usuario{ID: 1, PasswordHash: hash(t, "secreto"), Estado: entity.EstadoInactivo, MicroempresaID: &tenant}, "secreto", domain.ErrForbidden},
		{"sin microempresa", &entity.Usuario{ID: 1, PasswordHash: hash(t, "secreto"), Estado: entity.EstadoActivo, Rol: entity.RolVendedor}, "secreto", domain.ErrNoTenant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.UsuarioRepository)
			repo.On("GetByEmail", mock.Anything, "x@y.bo").Return(tc.usuario, nil)

			_, err := auth.NewAuthUseCase(repo, testJWT).Login(context.Background(), dto.LoginRequest{Email: "x@y.bo", Password: tc.pw})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegistrar_EmailDuplicadoNoInserta(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	email := "c@gmail.com"
	repo.On("GetByEmail", mock.Anything, email).Return(&entity.Cliente{ID: 1, Email: &email, Origen: entity.OrigenSistema}, nil)

	_, err := auth.NewPublicAuthUseCase(repo, testJWT).Registrar(context.Background(),
		dto.RegistroPublicoRequest{Nombre: "Carla", Email: email, Password: "x"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrar_CreaClientePublico(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	repo.On("GetByEmail", mock.Anything, "c@gmail.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Cliente) bool {
		return c.Origen == entity.OrigenPublico && c.Estado == entity.EstadoActivo &&
			c.PasswordHash != nil && bcrypt.CompareHashAndPassword([]byte(*c.PasswordHash), []byte("clave123")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Cliente).ID = 42
	}).Return(nil)

	out, err := auth.NewPublicAuthUseCase(repo, testJWT).Registrar(context.Background(),
		dto.RegistroPublicoRequest{Nombre: "Carla", Email: " c@gmail.com ", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.Cliente.ID)

	claims, err := jwt.ParseTipo(testJWT.Secret, out.Token, jwt.TipoClientePublico)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
}

func TestRegistrar_Obligatorios(t *testing.T) {
	_, err := auth.NewPublicAuthUseCase(new(mocks.ClienteRepository), testJWT).Registrar(context.Background(),
		dto.RegistroPublicoRequest{Nombre: "Carla"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginPublico(t *testing.T) {
	h := hash(t, "clave123")
	cases := []struct {
		name    string
		cliente *entity.Cliente
		pw      string
		want    error
	}{
		{"email desconocido", nil, "clave123", domain.ErrUnauthorized},
		{"sin password", &entity.Cliente{ID: 1, Estado: entity.EstadoActivo}, "clave123", domain.ErrUnauthorized},
		{"password incorrecto", &entity.Cliente{ID: 1, PasswordHash: &h, Estado: entity.EstadoActivo}, "otra", domain.ErrUnauthorized},
		{"inactivo", &entity.Cliente{ID: 1, PasswordHash: &h, Estado: entity.EstadoInactivo}, "clave123", domain.ErrForbidden},
		{"ok", &entity.Cliente{ID: 1, PasswordHash: &h, Estado: entity.EstadoActivo}, "clave123", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.ClienteRepository)
			repo.On("GetByEmail", mock.Anything, "c@gmail.com").Return(tc.cliente, nil)

			out, err := auth.NewPublicAuthUseCase(repo, testJWT).Login(context.Background(),
				dto.LoginPublicoRequest{Email: "c@gmail.com", Password: tc.pw})
			if tc.want == nil {
				require.NoError(t, err)
				assert.NotEmpty(t, out.Token)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify(t *testing.T) {
	repo := new(mocks.ClienteRepository)
	uc := auth.NewPublicAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.Verify(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Verify(ctx, "basura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	operador, err := jwt.Generate(testJWT.Secret, testJWT.Issuer, 60, jwt.Claims{SubjectID: 7, Tipo: jwt.TipoUsuario})
	require.NoError(t, err)
	_, err = uc.Verify(ctx, operador)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un token de operador no verifica como cliente")

	publico, err := jwt.Generate(testJWT.Secret, testJWT.Issuer, 60, jwt.Claims{SubjectID: 7, Tipo: jwt.TipoClientePublico})
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, nil).Once()
	_, err = uc.Verify(ctx, publico)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&entity.Cliente{ID: 7, NombreRazonSocial: "Carla"}, nil).Once()
	out, err := uc.Verify(ctx, publico)
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, "Carla", out.Cliente.Nombre)
}
