package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
)

// DashboardRepo agregados de solo lectura bajo /dashboard. El núcleo no los
// muta; la capa de vistas los consume directamente.
type DashboardRepo struct {
	c *Client
}

// NewDashboardRepo construye el adaptador del dashboard.
func NewDashboardRepo(c *Client) *DashboardRepo {
	return &DashboardRepo{c: c}
}

// Summary KPIs del período; month/year en cero piden el período actual.
func (r *DashboardRepo) Summary(ctx context.Context, month, year int) (dto.DashboardSummary, error) {
	q := url.Values{}
	if month > 0 {
		q.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var out dto.DashboardSummary
	err := r.c.do(ctx, http.MethodGet, "/dashboard/summary", q, nil, &out)
	return out, err
}

// MonthlyEvolution serie mensual de los últimos n meses.
func (r *DashboardRepo) MonthlyEvolution(ctx context.Context, months int) ([]dto.MonthlyEvolutionItem, error) {
	q := url.Values{"months": {strconv.Itoa(months)}}
	var out dto.MonthlyEvolutionResponse
	if err := r.c.do(ctx, http.MethodGet, "/dashboard/monthly-evolution", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ByAccount resumen por cuenta.
func (r *DashboardRepo) ByAccount(ctx context.Context) ([]dto.AccountSummary, error) {
	var out []dto.AccountSummary
	err := r.c.do(ctx, http.MethodGet, "/dashboard/by-account", nil, nil, &out)
	return out, err
}

// TopExpenseCategories ranking de categorías por gasto.
func (r *DashboardRepo) TopExpenseCategories(ctx context.Context, limit int) ([]dto.CategoryTotal, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var out []dto.CategoryTotal
	err := r.c.do(ctx, http.MethodGet, "/dashboard/top-expense-categories", q, nil, &out)
	return out, err
}

// TopIncomeCategories ranking de categorías por ingreso.
func (r *DashboardRepo) TopIncomeCategories(ctx context.Context, limit int) ([]dto.CategoryTotal, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var out []dto.CategoryTotal
	err := r.c.do(ctx, http.MethodGet, "/dashboard/top-income-categories", q, nil, &out)
	return out, err
}

// Anomalies gastos atípicos detectados por el backend.
func (r *DashboardRepo) Anomalies(ctx context.Context) ([]dto.Anomaly, error) {
	var out []dto.Anomaly
	err := r.c.do(ctx, http.MethodGet, "/dashboard/anomalies", nil, nil, &out)
	return out, err
}

// Trends tendencias de gasto por categoría.
func (r *DashboardRepo) Trends(ctx context.Context) ([]dto.TrendItem, error) {
	var out dto.TrendsResponse
	if err := r.c.do(ctx, http.MethodGet, "/dashboard/trends", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Trends, nil
}

// Insights observaciones generadas por el backend.
func (r *DashboardRepo) Insights(ctx context.Context) ([]dto.Insight, error) {
	var out dto.InsightsResponse
	if err := r.c.do(ctx, http.MethodGet, "/dashboard/insights", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Insights, nil
}

// Forecast proyección a n meses.
func (r *DashboardRepo) Forecast(ctx context.Context, months int) (dto.ForecastResponse, error) {
	q := url.Values{"months": {strconv.Itoa(months)}}
	var out dto.ForecastResponse
	err := r.c.do(ctx, http.MethodGet, "/dashboard/forecast", q, nil, &out)
	return out, err
}
