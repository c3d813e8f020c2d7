package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// Transactions vista fusionada de gastos e ingresos, ordenada por fecha
// descendente. No tiene colección propia en el servidor: compone los dos
// recursos subyacentes y despacha cada mutación según el discriminante Type.
type Transactions struct {
	mu       sync.RWMutex
	expenses Collection[entity.Expense, dto.ExpensePayload]
	incomes  Collection[entity.Income, dto.IncomePayload]
	items    []entity.Transaction
	log      *logger.Logger
}

// NewTransactions construye la vista fusionada sobre ambos puertos.
func NewTransactions(expenses Collection[entity.Expense, dto.ExpensePayload], incomes Collection[entity.Income, dto.IncomePayload], log *logger.Logger) *Transactions {
	return &Transactions{expenses: expenses, incomes: incomes, log: log}
}

// FetchAll trae ambas colecciones (en paralelo), etiqueta cada registro con
// su tipo, concatena y ordena por fecha descendente. El orden es estable: a
// fecha igual se conserva el orden de llegada (gastos antes que ingresos).
// Ante cualquier fallo la colección fusionada queda intacta.
func (t *Transactions) FetchAll(ctx context.Context, f dto.ListFilter) error {
	var (
		exps []entity.Expense
		incs []entity.Income
	)
	g, gctx := errgroup.WithContext(ctx)
	if f.Type == "" || f.Type == entity.TypeExpense {
		g.Go(func() error {
			var err error
			exps, err = t.expenses.List(gctx, f)
			return err
		})
	}
	if f.Type == "" || f.Type == entity.TypeIncome {
		g.Go(func() error {
			var err error
			incs, err = t.incomes.List(gctx, f)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.log.Error().Err(err).Str("store", "transactions").Msg("fallo al listar; colección local intacta")
		return err
	}

	merged := make([]entity.Transaction, 0, len(exps)+len(incs))
	for _, e := range exps {
		merged = append(merged, entity.TransactionFromExpense(entity.NormalizeExpense(e)))
	}
	for _, i := range incs {
		merged = append(merged, entity.TransactionFromIncome(entity.NormalizeIncome(i)))
	}
	slices.SortStableFunc(merged, func(a, b entity.Transaction) int {
		return b.Date.Time.Compare(a.Date.Time)
	})

	t.mu.Lock()
	t.items = merged
	t.mu.Unlock()
	return nil
}

// Add crea el gasto o ingreso subyacente según payload.Type y añade la
// transacción etiquetada solo tras la confirmación del servidor.
func (t *Transactions) Add(ctx context.Context, payload dto.TransactionPayload) (entity.Transaction, error) {
	tx, err := t.roundTrip(ctx, payload, 0)
	if err != nil {
		return entity.Transaction{}, err
	}
	t.mu.Lock()
	t.items = append(t.items, tx)
	t.mu.Unlock()
	return tx, nil
}

// Edit actualiza el recurso subyacente y reemplaza la transacción local en
// su posición; si el id no está localmente, el resultado se descarta.
func (t *Transactions) Edit(ctx context.Context, id int64, payload dto.TransactionPayload) (entity.Transaction, error) {
	tx, err := t.roundTrip(ctx, payload, id)
	if err != nil {
		return entity.Transaction{}, err
	}
	t.mu.Lock()
	for i, item := range t.items {
		if item.ID == id && item.Type == tx.Type {
			t.items[i] = tx
			break
		}
	}
	t.mu.Unlock()
	return tx, nil
}

// Remove busca la transacción local para saber a qué recurso despachar. Un
// id ausente es un no-op silencioso: sin el discriminante no hay a quién
// pedirle el borrado.
func (t *Transactions) Remove(ctx context.Context, id int64) error {
	t.mu.RLock()
	var found *entity.Transaction
	for i := range t.items {
		if t.items[i].ID == id {
			found = &t.items[i]
			break
		}
	}
	t.mu.RUnlock()
	if found == nil {
		return nil
	}

	var err error
	switch found.Type {
	case entity.TypeExpense:
		err = t.expenses.Delete(ctx, id)
	case entity.TypeIncome:
		err = t.incomes.Delete(ctx, id)
	}
	if err != nil {
		return err
	}

	t.mu.Lock()
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			break
		}
	}
	t.mu.Unlock()
	return nil
}

// Items copia defensiva de la colección fusionada.
func (t *Transactions) Items() []entity.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]entity.Transaction, len(t.items))
	copy(out, t.items)
	return out
}

// Len tamaño de la colección fusionada.
func (t *Transactions) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// roundTrip despacha la mutación al recurso que indica el discriminante.
// id en cero crea; distinto de cero edita.
func (t *Transactions) roundTrip(ctx context.Context, payload dto.TransactionPayload, id int64) (entity.Transaction, error) {
	switch payload.Type {
	case entity.TypeExpense:
		var (
			e   entity.Expense
			err error
		)
		if id == 0 {
			e, err = t.expenses.Create(ctx, payload.AsExpense())
		} else {
			e, err = t.expenses.Update(ctx, id, payload.AsExpense())
		}
		if err != nil {
			return entity.Transaction{}, err
		}
		return entity.TransactionFromExpense(entity.NormalizeExpense(e)), nil
	case entity.TypeIncome:
		var (
			i   entity.Income
			err error
		)
		if id == 0 {
			i, err = t.incomes.Create(ctx, payload.AsIncome())
		} else {
			i, err = t.incomes.Update(ctx, id, payload.AsIncome())
		}
		if err != nil {
			return entity.Transaction{}, err
		}
		return entity.TransactionFromIncome(entity.NormalizeIncome(i)), nil
	default:
		return entity.Transaction{}, fmt.Errorf("%w: tipo de transacción %q", domain.ErrValidation, payload.Type)
	}
}
