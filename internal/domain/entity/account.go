package entity

import "github.com/shopspring/decimal"

// Account cuenta financiera (banco, billetera, efectivo).
type Account struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// NormalizeAccount normalización aplicada a todo Account que llega del
// servidor, en fetch y en resultados de mutación por igual.
func NormalizeAccount(a Account) Account {
	return a
}
