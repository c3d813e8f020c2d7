package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/application/guard"
	"github.com/jhoicas/finanzas-app/internal/charts"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("sesión cerrada; de vuelta en", guard.RouteWelcome.Path)
		return nil
	case "me":
		return a.me(ctx)
	case "accounts":
		return a.accountsCmd(ctx, args)
	case "categories":
		return a.categoriesCmd(ctx, args)
	case "expenses":
		return a.expensesCmd(ctx, args)
	case "incomes":
		return a.incomesCmd(ctx, args)
	case "tx":
		return a.txCmd(ctx)
	case "dashboard":
		return a.dashboardCmd(ctx, args)
	case "chart":
		return a.chartCmd(ctx, args)
	default:
		usage()
		return fmt.Errorf("comando desconocido %q", cmd)
	}
}

// navigate pasa la ruta por el guard; una redirección aborta el comando.
func (a *app) navigate(ctx context.Context, route guard.Route) error {
	switch a.guard.Resolve(ctx, route) {
	case guard.DecisionRedirectLogin:
		return fmt.Errorf("sesión requerida: inicia sesión con `finanzas login <email> <password>`")
	case guard.DecisionRedirectDashboard:
		return fmt.Errorf("ya hay una sesión activa; destino %s", guard.RouteDashboard.Path)
	default:
		return nil
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("uso: register <nombre> <email> <password>")
	}
	if err := a.navigate(ctx, guard.RouteRegister); err != nil {
		return err
	}
	user, err := a.auth.Register(ctx, dto.RegisterRequest{
		Name:            args[0],
		Email:           args[1],
		Password:        args[2],
		ConfirmPassword: args[2],
	})
	if err != nil {
		return err
	}
	fmt.Printf("usuario %d (%s) registrado\n", user.ID, user.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: login <email> <password>")
	}
	if err := a.navigate(ctx, guard.RouteLogin); err != nil {
		return err
	}
	if !a.session.Login(ctx, args[0], args[1]) {
		return fmt.Errorf("credenciales inválidas o backend inaccesible")
	}
	u := a.session.User()
	fmt.Printf("hola %s (rol %s)\n", u.Name, a.session.Role())
	return nil
}

func (a *app) me(ctx context.Context) error {
	if err := a.navigate(ctx, guard.RouteProfile); err != nil {
		return err
	}
	u := a.session.User()
	fmt.Printf("id:      %d\n", u.ID)
	fmt.Printf("nombre:  %s\n", u.Name)
	fmt.Printf("email:   %s\n", u.Email)
	fmt.Printf("rol:     %s (admin: %t)\n", a.session.Role(), a.session.IsAdmin())
	return nil
}

func (a *app) accountsCmd(ctx context.Context, args []string) error {
	if err := a.navigate(ctx, guard.RouteAccounts); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.accounts.FetchAll(ctx, dto.ListFilter{}); err != nil {
			return err
		}
		for _, acc := range a.accounts.Items() {
			fmt.Printf("%4d  %-30s %s\n", acc.ID, acc.Name, a.amount(acc.Balance))
		}
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("uso: accounts add <nombre> [saldo]")
		}
		payload := dto.AccountPayload{Name: args[1]}
		if len(args) > 2 {
			balance, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("saldo inválido %q: %w", args[2], err)
			}
			payload.Balance = balance
		}
		acc, err := a.accounts.Add(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Printf("cuenta %d creada\n", acc.ID)
		return nil
	case "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return a.accounts.Remove(ctx, id)
	default:
		return fmt.Errorf("uso: accounts list|add|rm")
	}
}

func (a *app) categoriesCmd(ctx context.Context, args []string) error {
	if err := a.navigate(ctx, guard.RouteCategories); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.categories.FetchAll(ctx, dto.ListFilter{}); err != nil {
			return err
		}
		for _, cat := range a.categories.Items() {
			fmt.Printf("%4d  %-30s %s\n", cat.ID, cat.Name, cat.Description)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("uso: categories add <nombre> [descripción]")
		}
		payload := dto.CategoryPayload{Name: args[1], IsActive: true}
		if len(args) > 2 {
			payload.Description = args[2]
		}
		cat, err := a.categories.Add(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Printf("categoría %d creada\n", cat.ID)
		return nil
	case "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return a.categories.Remove(ctx, id)
	default:
		return fmt.Errorf("uso: categories list|add|rm")
	}
}

func (a *app) expensesCmd(ctx context.Context, args []string) error {
	if err := a.navigate(ctx, guard.RouteExpenses); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.expenses.FetchAll(ctx, dto.ListFilter{}); err != nil {
			return err
		}
		for _, e := range a.expenses.Items() {
			fmt.Printf("%4d  %s  %-30s %s\n", e.ID, e.Date, e.Description, a.amount(e.Amount))
		}
		return nil
	case "add":
		description, amount, date, err := parseMovement(args)
		if err != nil {
			return err
		}
		e, err := a.expenses.Add(ctx, dto.ExpensePayload{Description: description, Amount: amount, Date: date})
		if err != nil {
			return err
		}
		fmt.Printf("gasto %d creado\n", e.ID)
		return nil
	case "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return a.expenses.Remove(ctx, id)
	default:
		return fmt.Errorf("uso: expenses list|add|rm")
	}
}

func (a *app) incomesCmd(ctx context.Context, args []string) error {
	if err := a.navigate(ctx, guard.RouteIncomes); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.incomes.FetchAll(ctx, dto.ListFilter{}); err != nil {
			return err
		}
		for _, in := range a.incomes.Items() {
			fmt.Printf("%4d  %s  %-30s %s\n", in.ID, in.Date, in.Description, a.amount(in.Amount))
		}
		return nil
	case "add":
		description, amount, date, err := parseMovement(args)
		if err != nil {
			return err
		}
		in, err := a.incomes.Add(ctx, dto.IncomePayload{Description: description, Amount: amount, Date: date})
		if err != nil {
			return err
		}
		fmt.Printf("ingreso %d creado\n", in.ID)
		return nil
	case "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return a.incomes.Remove(ctx, id)
	default:
		return fmt.Errorf("uso: incomes list|add|rm")
	}
}

func (a *app) txCmd(ctx context.Context) error {
	if err := a.navigate(ctx, guard.RouteDashboard); err != nil {
		return err
	}
	if err := a.transactions.FetchAll(ctx, dto.ListFilter{}); err != nil {
		return err
	}
	for _, tx := range a.transactions.Items() {
		sign := "-"
		if tx.Type == entity.TypeIncome {
			sign = "+"
		}
		fmt.Printf("%4d  %s  %-8s %-30s %s%s\n", tx.ID, tx.Date, tx.Type, tx.Description, sign, a.amount(tx.Amount))
	}
	return nil
}

func (a *app) dashboardCmd(ctx context.Context, args []string) error {
	if err := a.navigate(ctx, guard.RouteDashboard); err != nil {
		return err
	}
	summary, err := a.dashboard.Summary(ctx, 0, 0)
	if err != nil {
		return err
	}
	fmt.Printf("ingresos: %s\n", a.amount(summary.Summary.TotalIncome))
	fmt.Printf("gastos:   %s\n", a.amount(summary.Summary.TotalExpense))
	fmt.Printf("balance:  %s\n", a.amount(summary.Summary.Balance))
	for _, ce := range summary.CategoryExpenses {
		fmt.Printf("  %-30s %s\n", ce.CategoryName, a.amount(ce.Total))
	}

	months := 12
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			months = n
		}
	}
	evolution, err := a.dashboard.MonthlyEvolution(ctx, months)
	if err != nil {
		return err
	}
	for _, item := range evolution {
		fmt.Printf("%04d-%02d  +%s  -%s  =%s\n", item.Year, item.Month,
			a.amount(item.Income), a.amount(item.Expense), a.amount(item.Balance))
	}
	return nil
}

func (a *app) chartCmd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: chart <salida.png> [meses]")
	}
	if err := a.navigate(ctx, guard.RouteDashboard); err != nil {
		return err
	}
	months := 12
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			months = n
		}
	}
	evolution, err := a.dashboard.MonthlyEvolution(ctx, months)
	if err != nil {
		return err
	}
	png, err := charts.MonthlyEvolution(evolution)
	if err != nil {
		return err
	}
	if png == nil {
		fmt.Println("sin datos para graficar")
		return nil
	}
	if err := os.WriteFile(args[0], png, 0o644); err != nil {
		return fmt.Errorf("guardar gráfico: %w", err)
	}
	fmt.Println("gráfico guardado en", args[0])
	return nil
}

// amount formatea un importe según la localización configurada.
func (a *app) amount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return a.printer.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func parseID(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("falta el id")
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id inválido %q: %w", args[1], err)
	}
	return id, nil
}

// parseMovement argumentos comunes de expenses/incomes add:
// <descripción> <importe> [fecha YYYY-MM-DD].
func parseMovement(args []string) (string, decimal.Decimal, entity.Date, error) {
	if len(args) < 3 {
		return "", decimal.Zero, entity.Date{}, fmt.Errorf("uso: add <descripción> <importe> [fecha]")
	}
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return "", decimal.Zero, entity.Date{}, fmt.Errorf("importe inválido %q: %w", args[2], err)
	}
	date := entity.Today()
	if len(args) > 3 {
		date, err = entity.ParseDate(args[3])
		if err != nil {
			return "", decimal.Zero, entity.Date{}, fmt.Errorf("fecha inválida %q: %w", args[3], err)
		}
	}
	return args[1], amount, date, nil
}
