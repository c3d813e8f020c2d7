package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/application/guard"
	"github.com/jhoicas/finanzas-app/internal/application/session"
	"github.com/jhoicas/finanzas-app/internal/application/store"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/internal/infrastructure/rest"
	"github.com/jhoicas/finanzas-app/pkg/config"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// app la capa de vistas: cada subcomando está ligado a una ruta y pasa por
// el guard antes de ejecutarse.
type app struct {
	session      *session.Session
	guard        *guard.Guard
	auth         *rest.AuthRepo
	dashboard    *rest.DashboardRepo
	accounts     *store.Store[entity.Account, dto.AccountPayload]
	categories   *store.Store[entity.Category, dto.CategoryPayload]
	expenses     *store.Store[entity.Expense, dto.ExpensePayload]
	incomes      *store.Store[entity.Income, dto.IncomePayload]
	transactions *store.Transactions
	log          *logger.Logger
	printer      *message.Printer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	var storage session.Storage
	if cfg.Session.File != "" {
		storage = session.NewFileStorage(cfg.Session.File)
	} else {
		storage = session.NewMemoryStorage()
	}

	client, err := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("adaptador HTTP")
	}

	authRepo := rest.NewAuthRepo(client)
	expenseRepo := rest.NewExpenseRepo(client)
	incomeRepo := rest.NewIncomeRepo(client)
	sess := session.New(authRepo, storage, log)

	a := &app{
		session:      sess,
		guard:        guard.New(sess, log),
		auth:         authRepo,
		dashboard:    rest.NewDashboardRepo(client),
		accounts:     store.NewAccounts(rest.NewAccountRepo(client), log),
		categories:   store.NewCategories(rest.NewCategoryRepo(client), log),
		expenses:     store.NewExpenses(expenseRepo, log),
		incomes:      store.NewIncomes(incomeRepo, log),
		transactions: store.NewTransactions(expenseRepo, incomeRepo, log),
		log:          log,
		printer:      message.NewPrinter(language.Spanish),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := a.dispatch(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `uso: finanzas <comando> [args]

comandos:
  register <nombre> <email> <password>   alta de usuario
  login <email> <password>               iniciar sesión
  logout                                 cerrar sesión
  me                                     perfil actual
  accounts list|add <nombre> [saldo]|rm <id>
  categories list|add <nombre> [descripción]|rm <id>
  expenses list|add <descripción> <importe> [fecha]|rm <id>
  incomes list|add <descripción> <importe> [fecha]|rm <id>
  tx list                                movimientos fusionados
  dashboard [meses]                      resumen y evolución
  chart <salida.png> [meses]             exportar evolución mensual
`)
}
