package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income ingreso registrado por el usuario.
type Income struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	AccountID   *int64          `json:"account_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// NormalizeIncome normalización uniforme: fecha de calendario con hoy como
// valor por defecto.
func NormalizeIncome(i Income) Income {
	if i.Date.IsZero() {
		i.Date = Today()
	}
	return i
}
