package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// collection cliente CRUD genérico sobre una colección REST con rutas
// /{path} y /{path}/{id}. Cada recurso expone un wrapper tipado.
type collection[T any, P any] struct {
	c    *Client
	path string
}

// List colección completa, opcionalmente filtrada.
func (r collection[T, P]) List(ctx context.Context, f dto.ListFilter) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create alta; devuelve el registro con el ID asignado por el servidor.
func (r collection[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, nil, payload, &out)
	return out, err
}

// Update edición por id; devuelve el registro actualizado.
func (r collection[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), nil, payload, &out)
	return out, err
}

// Delete baja por id.
func (r collection[T, P]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil, nil)
}

// AccountRepo CRUD de /accounts.
type AccountRepo struct {
	collection[entity.Account, dto.AccountPayload]
}

// NewAccountRepo construye el adaptador de cuentas.
func NewAccountRepo(c *Client) *AccountRepo {
	return &AccountRepo{collection[entity.Account, dto.AccountPayload]{c: c, path: "/accounts"}}
}

// CategoryRepo CRUD de /categories.
type CategoryRepo struct {
	collection[entity.Category, dto.CategoryPayload]
}

// NewCategoryRepo construye el adaptador de categorías.
func NewCategoryRepo(c *Client) *CategoryRepo {
	return &CategoryRepo{collection[entity.Category, dto.CategoryPayload]{c: c, path: "/categories"}}
}

// ExpenseRepo CRUD de /expenses.
type ExpenseRepo struct {
	collection[entity.Expense, dto.ExpensePayload]
}

// NewExpenseRepo construye el adaptador de gastos.
func NewExpenseRepo(c *Client) *ExpenseRepo {
	return &ExpenseRepo{collection[entity.Expense, dto.ExpensePayload]{c: c, path: "/expenses"}}
}

// IncomeRepo CRUD de /incomes.
type IncomeRepo struct {
	collection[entity.Income, dto.IncomePayload]
}

// NewIncomeRepo construye el adaptador de ingresos.
func NewIncomeRepo(c *Client) *IncomeRepo {
	return &IncomeRepo{collection[entity.Income, dto.IncomePayload]{c: c, path: "/incomes"}}
}
