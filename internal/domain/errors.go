package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa REST traduce el
// estado HTTP a uno de estos centinelas; el resto del código decide con
// errors.Is sin mirar códigos de estado.
var (
	// ErrUnauthorized credencial ausente, inválida o expirada (401).
	// Es el único error que dispara la limpieza automática de la sesión.
	ErrUnauthorized = errors.New("no autorizado")

	// ErrForbidden la credencial es válida pero el rol no alcanza (403).
	ErrForbidden = errors.New("acceso denegado")

	// ErrNotFound recurso inexistente en el servidor (404).
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrValidation el servidor rechazó la entrada (4xx distinto de auth).
	ErrValidation = errors.New("entrada inválida")

	// ErrServer fallo del lado del servidor (5xx).
	ErrServer = errors.New("error del servidor")

	// ErrNetwork fallo de transporte: no hubo respuesta HTTP. Nunca debe
	// limpiar la sesión, ni siquiera durante la hidratación.
	ErrNetwork = errors.New("red no disponible")

	// ErrNotAuthenticated no hay credencial persistida ni usuario en memoria.
	ErrNotAuthenticated = errors.New("usuario no autenticado")
)
