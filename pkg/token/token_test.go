package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/pkg/token"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("cualquier-secret"))
	require.NoError(t, err)
	return raw
}

// Caso 1: exp legible sin validar la firma (el cliente no tiene el secret).
func TestExpiresAt_LeeExpSinValidarFirma(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok := token.ExpiresAt(raw)

	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

// Caso 2: token sin claim exp → no hay expiración que leer.
func TestExpiresAt_SinClaimExp(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{Subject: "ana@example.com"})

	_, ok := token.ExpiresAt(raw)

	assert.False(t, ok)
}

// Caso 3: un token ilegible no es expirado: la decisión queda en el servidor.
func TestExpired_TokenIlegibleNoExpira(t *testing.T) {
	assert.False(t, token.Expired("no-es-un-jwt", time.Now()))
	assert.False(t, token.Expired("", time.Now()))
}

func TestExpired_RespetaElReloj(t *testing.T) {
	exp := time.Now()
	raw := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	assert.False(t, token.Expired(raw, exp.Add(-time.Minute)))
	assert.True(t, token.Expired(raw, exp.Add(time.Minute)))
}
