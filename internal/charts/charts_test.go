package charts_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/charts"
)

func punto(year, month int, income, expense int64) dto.MonthlyEvolutionItem {
	return dto.MonthlyEvolutionItem{
		Year:    year,
		Month:   month,
		Income:  decimal.NewFromInt(income),
		Expense: decimal.NewFromInt(expense),
		Balance: decimal.NewFromInt(income - expense),
	}
}

// Caso 1: una serie con datos produce un PNG válido.
func TestMonthlyEvolution_GeneraPNG(t *testing.T) {
	png, err := charts.MonthlyEvolution([]dto.MonthlyEvolutionItem{
		punto(2024, 1, 2000, 800),
		punto(2024, 2, 2100, 950),
		punto(2024, 3, 1900, 700),
	})

	require.NoError(t, err)
	require.NotEmpty(t, png)
	// Firma PNG: \x89PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

// Caso 2: sin datos no hay gráfico ni error.
func TestMonthlyEvolution_SinDatos(t *testing.T) {
	png, err := charts.MonthlyEvolution(nil)

	assert.NoError(t, err)
	assert.Nil(t, png)
}
