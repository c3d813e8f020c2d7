package store

import (
	"context"
	"sync"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// Collection puerto CRUD hacia una colección remota (lo implementan los
// adaptadores de internal/infrastructure/rest).
type Collection[T any, P any] interface {
	List(ctx context.Context, f dto.ListFilter) ([]T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id int64, payload P) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Store espejo local de una colección del servidor. La colección local es un
// caché, no fuente de verdad: toda mutación viaja primero al servidor y el
// estado local solo cambia tras la confirmación. Cada store es el único
// escritor de su colección.
type Store[T any, P any] struct {
	mu        sync.RWMutex
	name      string
	api       Collection[T, P]
	normalize func(T) T
	id        func(T) int64
	items     []T
	log       *logger.Logger
}

func newStore[T any, P any](name string, api Collection[T, P], normalize func(T) T, id func(T) int64, log *logger.Logger) *Store[T, P] {
	return &Store[T, P]{name: name, api: api, normalize: normalize, id: id, log: log}
}

// FetchAll pide la colección (filtrada) al servidor y reemplaza la local por
// completo, normalizando cada registro. Ante un fallo la colección local
// queda intacta (política uniforme: dejar lo último conocido) y el error se
// registra y se devuelve; los callers de vistas pueden ignorarlo.
func (s *Store[T, P]) FetchAll(ctx context.Context, f dto.ListFilter) error {
	list, err := s.api.List(ctx, f)
	if err != nil {
		s.log.Error().Err(err).Str("store", s.name).Msg("fallo al listar; colección local intacta")
		return err
	}
	normalized := make([]T, len(list))
	for i, item := range list {
		normalized[i] = s.normalize(item)
	}
	s.mu.Lock()
	s.items = normalized
	s.mu.Unlock()
	return nil
}

// Add crea en el servidor y, solo si confirma, añade al final de la
// colección local el registro devuelto (normalizado).
func (s *Store[T, P]) Add(ctx context.Context, payload P) (T, error) {
	created, err := s.api.Create(ctx, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	created = s.normalize(created)
	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

// Edit actualiza en el servidor y reemplaza el registro local en su misma
// posición. Si el id no está en la colección local, el resultado se descarta
// en silencio aunque la llamada haya tenido éxito.
func (s *Store[T, P]) Edit(ctx context.Context, id int64, payload P) (T, error) {
	updated, err := s.api.Update(ctx, id, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	updated = s.normalize(updated)
	s.mu.Lock()
	for i, item := range s.items {
		if s.id(item) == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Remove borra en el servidor y, solo si confirma, quita el registro local.
// Para ids ya ausentes localmente la colección queda igual.
func (s *Store[T, P]) Remove(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i, item := range s.items {
		if s.id(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Items copia defensiva de la colección local.
func (s *Store[T, P]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len tamaño de la colección local.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// NewAccounts store de cuentas.
func NewAccounts(api Collection[entity.Account, dto.AccountPayload], log *logger.Logger) *Store[entity.Account, dto.AccountPayload] {
	return newStore("accounts", api, entity.NormalizeAccount, func(a entity.Account) int64 { return a.ID }, log)
}

// NewCategories store de categorías.
func NewCategories(api Collection[entity.Category, dto.CategoryPayload], log *logger.Logger) *Store[entity.Category, dto.CategoryPayload] {
	return newStore("categories", api, entity.NormalizeCategory, func(c entity.Category) int64 { return c.ID }, log)
}

// NewExpenses store de gastos.
func NewExpenses(api Collection[entity.Expense, dto.ExpensePayload], log *logger.Logger) *Store[entity.Expense, dto.ExpensePayload] {
	return newStore("expenses", api, entity.NormalizeExpense, func(e entity.Expense) int64 { return e.ID }, log)
}

// NewIncomes store de ingresos.
func NewIncomes(api Collection[entity.Income, dto.IncomePayload], log *logger.Logger) *Store[entity.Income, dto.IncomePayload] {
	return newStore("incomes", api, entity.NormalizeIncome, func(i entity.Income) int64 { return i.ID }, log)
}
