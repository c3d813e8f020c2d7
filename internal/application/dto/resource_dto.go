package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// AccountPayload creación/edición de una cuenta.
type AccountPayload struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryPayload creación/edición de una categoría.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ExpensePayload creación/edición de un gasto.
type ExpensePayload struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Date          entity.Date     `json:"date"`
	DueDate       *entity.Date    `json:"due_date,omitempty"`
	Paid          bool            `json:"paid"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Recurring     bool            `json:"recurring"`
	Notes         string          `json:"notes,omitempty"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	AccountID     *int64          `json:"account_id,omitempty"`
}

// IncomePayload creación/edición de un ingreso.
type IncomePayload struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        entity.Date     `json:"date"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	AccountID   *int64          `json:"account_id,omitempty"`
}

// TransactionPayload mutación sobre la vista fusionada; Type decide a qué
// recurso subyacente se despacha.
type TransactionPayload struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        entity.Date     `json:"date"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	AccountID   *int64          `json:"account_id,omitempty"`
}

// AsExpense proyección del payload fusionado a gasto.
func (p TransactionPayload) AsExpense() ExpensePayload {
	return ExpensePayload{
		Description: p.Description,
		Amount:      p.Amount,
		Date:        p.Date,
		CategoryID:  p.CategoryID,
		AccountID:   p.AccountID,
	}
}

// AsIncome proyección del payload fusionado a ingreso.
func (p TransactionPayload) AsIncome() IncomePayload {
	return IncomePayload{
		Description: p.Description,
		Amount:      p.Amount,
		Date:        p.Date,
		CategoryID:  p.CategoryID,
		AccountID:   p.AccountID,
	}
}
