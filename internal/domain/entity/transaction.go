package entity

import "github.com/shopspring/decimal"

// Discriminante de una transacción fusionada.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Transaction vista virtual: unión de Expense e Income etiquetada con el
// campo Type. No se persiste por separado; se reconstruye fusionando ambas
// colecciones.
type Transaction struct {
	Type        string          `json:"type"`
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	AccountID   *int64          `json:"account_id,omitempty"`
}

// TransactionFromExpense etiqueta un gasto como transacción.
func TransactionFromExpense(e Expense) Transaction {
	return Transaction{
		Type:        TypeExpense,
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		AccountID:   e.AccountID,
	}
}

// TransactionFromIncome etiqueta un ingreso como transacción.
func TransactionFromIncome(i Income) Transaction {
	return Transaction{
		Type:        TypeIncome,
		ID:          i.ID,
		Description: i.Description,
		Amount:      i.Amount,
		Date:        i.Date,
		CategoryID:  i.CategoryID,
		AccountID:   i.AccountID,
	}
}
