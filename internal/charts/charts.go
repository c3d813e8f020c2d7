package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
)

// MonthlyEvolution renderiza la serie mensual del dashboard (ingresos,
// gastos y balance) como PNG. Devuelve nil si no hay datos que graficar.
func MonthlyEvolution(items []dto.MonthlyEvolutionItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, len(items))
	incomeValues := make([]float64, len(items))
	expenseValues := make([]float64, len(items))
	balanceValues := make([]float64, len(items))
	for i, it := range items {
		xValues[i] = time.Date(it.Year, time.Month(it.Month), 1, 0, 0, 0, 0, time.UTC)
		incomeValues[i], _ = it.Income.Float64()
		expenseValues[i], _ = it.Expense.Float64()
		balanceValues[i], _ = it.Balance.Float64()
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01/2006"),
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Ingresos",
				XValues: xValues,
				YValues: incomeValues,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Gastos",
				XValues: xValues,
				YValues: expenseValues,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balanceValues,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2, StrokeDashArray: []float64{5, 5}},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("renderizar evolución mensual: %w", err)
	}
	return buf.Bytes(), nil
}
