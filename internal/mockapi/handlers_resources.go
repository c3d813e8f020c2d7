package mockapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
}

// ── Accounts ────────────────────────────────────────────────────────────────

func (s *Server) listAccounts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	out := make([]entity.Account, len(d.accounts))
	copy(out, d.accounts)
	return c.JSON(out)
}

func (s *Server) createAccount(c *fiber.Ctx) error {
	var in dto.AccountPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	acc := entity.Account{ID: s.allocID(), Name: in.Name, Balance: in.Balance}
	d.accounts = append(d.accounts, acc)
	return c.Status(fiber.StatusCreated).JSON(acc)
}

func (s *Server) updateAccount(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var in dto.AccountPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.accounts {
		if d.accounts[i].ID == id {
			d.accounts[i].Name = in.Name
			d.accounts[i].Balance = in.Balance
			return c.JSON(d.accounts[i])
		}
	}
	return notFound(c)
}

func (s *Server) deleteAccount(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.accounts {
		if d.accounts[i].ID == id {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

// ── Categories ──────────────────────────────────────────────────────────────

func (s *Server) listCategories(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	out := make([]entity.Category, len(d.categories))
	copy(out, d.categories)
	return c.JSON(out)
}

func (s *Server) createCategory(c *fiber.Ctx) error {
	var in dto.CategoryPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	cat := entity.Category{ID: s.allocID(), Name: in.Name, Description: in.Description, IsActive: in.IsActive}
	d.categories = append(d.categories, cat)
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (s *Server) updateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var in dto.CategoryPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.categories {
		if d.categories[i].ID == id {
			d.categories[i].Name = in.Name
			d.categories[i].Description = in.Description
			d.categories[i].IsActive = in.IsActive
			return c.JSON(d.categories[i])
		}
	}
	return notFound(c)
}

func (s *Server) deleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.categories {
		if d.categories[i].ID == id {
			d.categories = append(d.categories[:i], d.categories[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

// ── Expenses ────────────────────────────────────────────────────────────────

// matchesFilter filtros de query soportados en gastos e ingresos.
func matchesFilter(c *fiber.Ctx, date entity.Date, categoryID *int64) bool {
	if raw := c.Query("start_date"); raw != "" {
		if from, err := entity.ParseDate(raw); err == nil && date.Before(from) {
			return false
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if to, err := entity.ParseDate(raw); err == nil && date.After(to) {
			return false
		}
	}
	if raw := c.Query("category_id"); raw != "" {
		want, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && (categoryID == nil || *categoryID != want) {
			return false
		}
	}
	return true
}

func (s *Server) listExpenses(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	out := make([]entity.Expense, 0, len(d.expenses))
	for _, e := range d.expenses {
		if matchesFilter(c, e.Date, e.CategoryID) {
			out = append(out, e)
		}
	}
	return c.JSON(out)
}

func (s *Server) createExpense(c *fiber.Ctx) error {
	var in dto.ExpensePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Description == "" || !in.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description y amount > 0 son requeridos"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	e := entity.Expense{
		ID:            s.allocID(),
		Description:   in.Description,
		Amount:        in.Amount,
		Currency:      in.Currency,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Paid:          in.Paid,
		PaymentMethod: in.PaymentMethod,
		Supplier:      in.Supplier,
		Recurring:     in.Recurring,
		Notes:         in.Notes,
		CategoryID:    in.CategoryID,
		AccountID:     in.AccountID,
		CreatedAt:     time.Now().UTC(),
	}
	d.expenses = append(d.expenses, e)
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (s *Server) updateExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var in dto.ExpensePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.expenses {
		if d.expenses[i].ID == id {
			now := time.Now().UTC()
			e := &d.expenses[i]
			e.Description = in.Description
			e.Amount = in.Amount
			e.Currency = in.Currency
			e.Date = in.Date
			e.DueDate = in.DueDate
			e.Paid = in.Paid
			e.PaymentMethod = in.PaymentMethod
			e.Supplier = in.Supplier
			e.Recurring = in.Recurring
			e.Notes = in.Notes
			e.CategoryID = in.CategoryID
			e.AccountID = in.AccountID
			e.UpdatedAt = &now
			return c.JSON(*e)
		}
	}
	return notFound(c)
}

func (s *Server) deleteExpense(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.expenses {
		if d.expenses[i].ID == id {
			d.expenses = append(d.expenses[:i], d.expenses[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

// ── Incomes ─────────────────────────────────────────────────────────────────

func (s *Server) listIncomes(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	out := make([]entity.Income, 0, len(d.incomes))
	for _, in := range d.incomes {
		if matchesFilter(c, in.Date, in.CategoryID) {
			out = append(out, in)
		}
	}
	return c.JSON(out)
}

func (s *Server) createIncome(c *fiber.Ctx) error {
	var in dto.IncomePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Description == "" || !in.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description y amount > 0 son requeridos"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	inc := entity.Income{
		ID:          s.allocID(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CategoryID:  in.CategoryID,
		AccountID:   in.AccountID,
		CreatedAt:   time.Now().UTC(),
	}
	d.incomes = append(d.incomes, inc)
	return c.Status(fiber.StatusCreated).JSON(inc)
}

func (s *Server) updateIncome(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var in dto.IncomePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.incomes {
		if d.incomes[i].ID == id {
			now := time.Now().UTC()
			inc := &d.incomes[i]
			inc.Description = in.Description
			inc.Amount = in.Amount
			inc.Date = in.Date
			inc.CategoryID = in.CategoryID
			inc.AccountID = in.AccountID
			inc.UpdatedAt = &now
			return c.JSON(*inc)
		}
	}
	return notFound(c)
}

func (s *Server) deleteIncome(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data(s.currentUID(c))
	for i := range d.incomes {
		if d.incomes[i].ID == id {
			d.incomes = append(d.incomes[:i], d.incomes[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}
