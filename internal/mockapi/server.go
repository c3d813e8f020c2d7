// Package mockapi implementa un doble del backend REST consumido por la
// aplicación: suficiente para desarrollo sin backend real y para los tests
// de integración del cliente. No es un diseño de servidor; solo refleja el
// contrato que el cliente espera.
package mockapi

import (
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// userRecord usuario registrado con su hash bcrypt.
type userRecord struct {
	user entity.User
	hash []byte
}

// userData colecciones por usuario; el servidor acota por la credencial.
type userData struct {
	accounts   []entity.Account
	categories []entity.Category
	expenses   []entity.Expense
	incomes    []entity.Income
}

// Server backend simulado en memoria.
type Server struct {
	app    *fiber.App
	secret string
	tokTTL time.Duration
	log    *logger.Logger

	mu        sync.Mutex
	nextID    int64
	byEmail   map[string]*userRecord
	byID      map[int64]*userRecord
	dataByUID map[int64]*userData
}

// New construye el servidor simulado. secret firma los tokens HS256.
func New(secret string, log *logger.Logger) *Server {
	s := &Server{
		secret:    secret,
		tokTTL:    time.Hour,
		log:       log,
		nextID:    1,
		byEmail:   make(map[string]*userRecord),
		byID:      make(map[int64]*userRecord),
		dataByUID: make(map[int64]*userData),
	}
	s.app = fiber.New(fiber.Config{DisableStartupMessage: true})
	s.app.Use(recover.New())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Post("/users", s.register)
	s.app.Post("/users/login", s.login)

	auth := s.app.Group("/", s.authMiddleware)
	auth.Get("/users/me", s.me)
	auth.Put("/users/me", s.updateMe)
	auth.Post("/users/logout", s.logout)

	auth.Get("/accounts", s.listAccounts)
	auth.Post("/accounts", s.createAccount)
	auth.Put("/accounts/:id", s.updateAccount)
	auth.Delete("/accounts/:id", s.deleteAccount)

	auth.Get("/categories", s.listCategories)
	auth.Post("/categories", s.createCategory)
	auth.Put("/categories/:id", s.updateCategory)
	auth.Delete("/categories/:id", s.deleteCategory)

	auth.Get("/expenses", s.listExpenses)
	auth.Post("/expenses", s.createExpense)
	auth.Put("/expenses/:id", s.updateExpense)
	auth.Delete("/expenses/:id", s.deleteExpense)

	auth.Get("/incomes", s.listIncomes)
	auth.Post("/incomes", s.createIncome)
	auth.Put("/incomes/:id", s.updateIncome)
	auth.Delete("/incomes/:id", s.deleteIncome)

	auth.Get("/dashboard/summary", s.dashboardSummary)
	auth.Get("/dashboard/monthly-evolution", s.dashboardMonthlyEvolution)
}

// Serve atiende sobre el listener dado (bloqueante).
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Listen atiende en la dirección dada (bloqueante).
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("backend simulado escuchando")
	return s.app.Listen(addr)
}

// Shutdown apaga el servidor.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Server) data(uid int64) *userData {
	d, ok := s.dataByUID[uid]
	if !ok {
		d = &userData{}
		s.dataByUID[uid] = d
	}
	return d
}
