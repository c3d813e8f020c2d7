package dto

import "github.com/shopspring/decimal"

// DTOs de los agregados de solo lectura bajo /dashboard. El núcleo nunca
// los muta; los consume la capa de vistas tal cual llegan.

// DashboardSummary respuesta de GET /dashboard/summary.
type DashboardSummary struct {
	Summary          SummaryTotals     `json:"summary"`
	CategoryExpenses []CategoryExpense `json:"category_expenses"`
	Alerts           []AlertItem       `json:"alerts"`
}

// SummaryTotals KPIs principales del período.
type SummaryTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Score        float64         `json:"score"`
}

// CategoryExpense gasto agregado por categoría.
type CategoryExpense struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Average      decimal.Decimal `json:"average"`
}

// AlertItem alerta reciente mostrada en el dashboard.
type AlertItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// MonthlyEvolutionItem un punto de GET /dashboard/monthly-evolution.
type MonthlyEvolutionItem struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyEvolutionResponse envoltorio {data: [...]} del backend.
type MonthlyEvolutionResponse struct {
	Data []MonthlyEvolutionItem `json:"data"`
}

// AccountSummary resumen por cuenta de GET /dashboard/by-account.
type AccountSummary struct {
	AccountID    int64           `json:"account_id"`
	AccountName  string          `json:"account_name"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategoryTotal entrada de los rankings top-expense/top-income-categories.
type CategoryTotal struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

// Anomaly gasto atípico detectado por el backend.
type Anomaly struct {
	ExpenseID   int64           `json:"expense_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Deviation   float64         `json:"deviation"`
}

// TrendItem tendencia de gasto por categoría.
type TrendItem struct {
	Category   string  `json:"category"`
	Direction  string  `json:"direction"` // up, down, stable
	Trend      float64 `json:"trend"`
	Projection float64 `json:"projection"`
}

// TrendsResponse envoltorio {trends: [...]}.
type TrendsResponse struct {
	Trends []TrendItem `json:"trends"`
}

// Insight observación generada por el backend.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// InsightsResponse envoltorio {insights: [...]}.
type InsightsResponse struct {
	Insights []Insight `json:"insights"`
}

// ForecastItem proyección de un mes futuro.
type ForecastItem struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	PredictedIncome    decimal.Decimal `json:"predicted_income"`
	PredictedExpense   decimal.Decimal `json:"predicted_expense"`
	PredictedBalance   decimal.Decimal `json:"predicted_balance"`
	AccumulatedBalance decimal.Decimal `json:"accumulated_balance"`
}

// ForecastResponse respuesta de GET /dashboard/forecast.
type ForecastResponse struct {
	StartBalance decimal.Decimal `json:"start_balance"`
	Forecast     []ForecastItem  `json:"forecast"`
}
