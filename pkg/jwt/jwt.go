package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de sujeto. Un token de cliente público nunca es válido en rutas de operadores y viceversa.
const (
	TipoUsuario        = "usuario"
	TipoClientePublico = "cliente_publico"
)

// ErrTipoInvalido el token es válido pero pertenece a otro tipo de sujeto.
var ErrTipoInvalido = errors.New("jwt: tipo de sujeto inválido")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Rol y MicroempresaID solo aplican a operadores; Nombre y Email a clientes públicos y operadores.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID      int64  `json:"id"`
	Nombre         string `json:"nombre,omitempty"`
	Email          string `json:"email,omitempty"`
	Rol            string `json:"rol,omitempty"`
	MicroempresaID *int64 `json:"microempresa_id,omitempty"`
	Tipo           string `json:"tipo"`
}

// Generate firma los claims con HS256. Completa issuer, subject, iat, exp y un jti aleatorio.
func Generate(secret, issuer string, expMinutes int, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if claims.Tipo == "" {
		return "", fmt.Errorf("jwt: tipo requerido")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(claims.SubjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseTipo como Parse, pero exige que el claim tipo coincida.
func ParseTipo(secret, tokenString, tipo string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Tipo != tipo {
		return nil, ErrTipoInvalido
	}
	return claims, nil
}
