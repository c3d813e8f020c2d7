package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. El backend puede añadir roles nuevos; el cliente
// solo interpreta estos cuatro y trata cualquier otro como sin privilegios.
const (
	RoleCliente    = "cliente"
	RoleVendedor   = "vendedor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User usuario autenticado. Es propiedad exclusiva de la sesión: los stores
// de recursos nunca guardan una copia.
type User struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Avatar    string          `json:"avatar,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
