package jwt_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/microempresas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "microempresas-api-test"
)

func TestGenerateAndParse_Usuario(t *testing.T) {
	tenant := int64(7)
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, pkgjwt.Claims{
		SubjectID:      3,
		Email:          "ana@empresa.bo",
		Rol:            "vendedor",
		MicroempresaID: &tenant,
		Tipo:           pkgjwt.TipoUsuario,
	})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.SubjectID)
	assert.Equal(t, "3", claims.Subject)
	assert.Equal(t, "vendedor", claims.Rol)
	require.NotNil(t, claims.MicroempresaID)
	assert.Equal(t, int64(7), *claims.MicroempresaID)
	assert.Equal(t, testIssuer, claims.Issuer)

	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err, "jti debe ser un UUID")
}

func TestParseTipo_RechazaOtroTipo(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, pkgjwt.Claims{
		SubjectID: 10, Nombre: "Cliente", Email: "c@gmail.com", Tipo: pkgjwt.TipoClientePublico,
	})
	require.NoError(t, err)

	_, err = pkgjwt.ParseTipo(testSecret, tok, pkgjwt.TipoUsuario)
	assert.ErrorIs(t, err, pkgjwt.ErrTipoInvalido)

	claims, err := pkgjwt.ParseTipo(testSecret, tok, pkgjwt.TipoClientePublico)
	require.NoError(t, err)
	assert.Equal(t, "c@gmail.com", claims.Email)
	assert.Nil(t, claims.MicroempresaID)
}

func TestGenerate_SinTipo_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, testIssuer, 60, pkgjwt.Claims{SubjectID: 1})
	assert.Error(t, err)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, -1, pkgjwt.Claims{SubjectID: 1, Tipo: pkgjwt.TipoUsuario})
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 60, pkgjwt.Claims{SubjectID: 1, Tipo: pkgjwt.TipoUsuario})
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_Basura_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
