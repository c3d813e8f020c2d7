package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// Caso 1: parseo de fecha plana y de datetime ISO (se trunca a la fecha).
func TestParseDate_TruncaDatetime(t *testing.T) {
	plain, err := entity.ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", plain.String())

	dt, err := entity.ParseDate("2024-01-05T13:45:00")
	require.NoError(t, err)
	assert.True(t, dt.Equal(plain), "el componente horario se descarta")
}

func TestParseDate_Invalida(t *testing.T) {
	_, err := entity.ParseDate("05/01/2024")
	assert.Error(t, err)
}

// Caso 2: serialización siempre como fecha plana; la fecha cero va como null.
func TestDate_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(entity.NewDate(2024, time.March, 9))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(raw))

	raw, err = json.Marshal(entity.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

// Caso 3: deserialización acepta fecha, datetime y null.
func TestDate_UnmarshalJSON(t *testing.T) {
	var d entity.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09"`), &d))
	assert.Equal(t, "2024-03-09", d.String())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T23:59:59"`), &d))
	assert.Equal(t, "2024-03-09", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_Orden(t *testing.T) {
	a := entity.NewDate(2024, time.January, 15)
	b := entity.NewDate(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
}

// Normalización de gastos: fecha hoy, moneda BRL y método CASH por defecto;
// lo ya informado no se toca.
func TestNormalizeExpense_Defaults(t *testing.T) {
	e := entity.NormalizeExpense(entity.Expense{ID: 1})

	assert.False(t, e.Date.IsZero())
	assert.Equal(t, "BRL", e.Currency)
	assert.Equal(t, entity.PaymentCash, e.PaymentMethod)

	e = entity.NormalizeExpense(entity.Expense{
		Date:          entity.NewDate(2024, time.May, 2),
		Currency:      "EUR",
		PaymentMethod: entity.PaymentPix,
	})
	assert.Equal(t, "2024-05-02", e.Date.String())
	assert.Equal(t, "EUR", e.Currency)
	assert.Equal(t, entity.PaymentPix, e.PaymentMethod)
}

func TestNormalizeIncome_FechaPorDefecto(t *testing.T) {
	i := entity.NormalizeIncome(entity.Income{ID: 1})
	assert.False(t, i.Date.IsZero())
}

// El etiquetado conserva todos los campos comunes.
func TestTransactionFrom_ConservaCampos(t *testing.T) {
	catID := int64(3)
	e := entity.Expense{ID: 7, Description: "Luz", Date: entity.NewDate(2024, time.January, 5), CategoryID: &catID}

	tx := entity.TransactionFromExpense(e)

	assert.Equal(t, entity.TypeExpense, tx.Type)
	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, "Luz", tx.Description)
	require.NotNil(t, tx.CategoryID)
	assert.Equal(t, catID, *tx.CategoryID)

	in := entity.Income{ID: 7, Description: "Nómina"}
	assert.Equal(t, entity.TypeIncome, entity.TransactionFromIncome(in).Type)
}
