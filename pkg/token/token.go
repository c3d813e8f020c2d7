package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// El cliente trata la credencial como opaca: nunca valida la firma (no tiene
// el secret). Solo inspecciona el claim exp para evitar una hidratación
// condenada a 401 cuando el token ya venció localmente.

// ExpiresAt devuelve la expiración del token y true si pudo extraerla.
// Un token ilegible o sin claim exp devuelve false: la decisión queda en
// manos del servidor.
func ExpiresAt(raw string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired true solo si el token declara una expiración ya pasada.
func Expired(raw string, now time.Time) bool {
	exp, ok := ExpiresAt(raw)
	if !ok {
		return false
	}
	return exp.Before(now)
}
