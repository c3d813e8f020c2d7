package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados por el backend.
const (
	PaymentCash  = "CASH"
	PaymentPix   = "PIX"
	PaymentTed   = "TED"
	PaymentCard  = "CARD"
	PaymentOther = "OTHER"
)

// Expense gasto registrado por el usuario. El ID lo asigna el servidor y es
// inmutable una vez creado.
type Expense struct {
	ID            int64           `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Date          Date            `json:"date"`
	DueDate       *Date           `json:"due_date,omitempty"`
	Paid          bool            `json:"paid"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Recurring     bool            `json:"recurring"`
	Notes         string          `json:"notes,omitempty"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	AccountID     *int64          `json:"account_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// NormalizeExpense normalización uniforme: fecha de calendario (el tipo Date
// ya trunca el datetime) con hoy como valor por defecto, moneda BRL y método
// de pago CASH si el servidor los omite.
func NormalizeExpense(e Expense) Expense {
	if e.Date.IsZero() {
		e.Date = Today()
	}
	if e.Currency == "" {
		e.Currency = "BRL"
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentCash
	}
	return e
}
