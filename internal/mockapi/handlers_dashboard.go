package mockapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
)

// dashboardSummary GET /dashboard/summary — totales calculados sobre lo
// registrado por el usuario.
func (s *Server) dashboardSummary(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))

	totalIncome := decimal.Zero
	for _, in := range d.incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	totalExpense := decimal.Zero
	byCategory := map[int64]*dto.CategoryExpense{}
	counts := map[int64]int64{}
	for _, e := range d.expenses {
		totalExpense = totalExpense.Add(e.Amount)
		if e.CategoryID == nil {
			continue
		}
		agg, ok := byCategory[*e.CategoryID]
		if !ok {
			agg = &dto.CategoryExpense{CategoryID: *e.CategoryID}
			for _, cat := range d.categories {
				if cat.ID == *e.CategoryID {
					agg.CategoryName = cat.Name
				}
			}
			byCategory[*e.CategoryID] = agg
		}
		agg.Total = agg.Total.Add(e.Amount)
		counts[*e.CategoryID]++
	}

	out := dto.DashboardSummary{
		Summary: dto.SummaryTotals{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			Balance:      totalIncome.Sub(totalExpense),
		},
		CategoryExpenses: make([]dto.CategoryExpense, 0, len(byCategory)),
		Alerts:           []dto.AlertItem{},
	}
	for id, agg := range byCategory {
		agg.Average = agg.Total.Div(decimal.NewFromInt(counts[id]))
		out.CategoryExpenses = append(out.CategoryExpenses, *agg)
	}
	return c.JSON(out)
}

// dashboardMonthlyEvolution GET /dashboard/monthly-evolution — serie de los
// últimos n meses terminando en el mes actual.
func (s *Server) dashboardMonthlyEvolution(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "12"))
	if err != nil || months < 1 {
		months = 12
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	items := make([]dto.MonthlyEvolutionItem, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := first.AddDate(0, -i, 0)
		item := dto.MonthlyEvolutionItem{Year: ref.Year(), Month: int(ref.Month())}
		for _, e := range d.expenses {
			if e.Date.Year() == item.Year && int(e.Date.Month()) == item.Month {
				item.Expense = item.Expense.Add(e.Amount)
			}
		}
		for _, in := range d.incomes {
			if in.Date.Year() == item.Year && int(in.Date.Month()) == item.Month {
				item.Income = item.Income.Add(in.Amount)
			}
		}
		item.Balance = item.Income.Sub(item.Expense)
		items = append(items, item)
	}
	return c.JSON(dto.MonthlyEvolutionResponse{Data: items})
}
