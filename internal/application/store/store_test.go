package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/application/store"
	"github.com/jhoicas/finanzas-app/internal/domain"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCollection puerto CRUD en memoria, con errores inyectables.
type fakeCollection[T any, P any] struct {
	list      []T
	listErr   error
	created   T
	createErr error
	updated   T
	updateErr error
	deleteErr error
	deletes   []int64
	lastList  dto.ListFilter
}

func (f *fakeCollection[T, P]) List(ctx context.Context, filter dto.ListFilter) ([]T, error) {
	f.lastList = filter
	return f.list, f.listErr
}

func (f *fakeCollection[T, P]) Create(ctx context.Context, payload P) (T, error) {
	return f.created, f.createErr
}

func (f *fakeCollection[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	return f.updated, f.updateErr
}

func (f *fakeCollection[T, P]) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeAccounts = fakeCollection[entity.Account, dto.AccountPayload]
type fakeExpenses = fakeCollection[entity.Expense, dto.ExpensePayload]

func cuenta(id int64, name string) entity.Account {
	return entity.Account{ID: id, Name: name, Balance: decimal.NewFromInt(100)}
}

// ──────────────────────────────────────────────────────────────────────────────
// FetchAll
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: FetchAll reemplaza la colección local entera, no la fusiona.
func TestStore_FetchAll_ReemplazaColeccion(t *testing.T) {
	api := &fakeAccounts{list: []entity.Account{cuenta(1, "Nómina"), cuenta(2, "Ahorro")}}
	s := store.NewAccounts(api, logger.Nop())

	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))
	require.Equal(t, 2, s.Len())

	// Una segunda carga con menos elementos no deja restos de la primera.
	api.list = []entity.Account{cuenta(3, "Inversión")}
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
}

// Caso 2: si la carga falla, la colección local queda exactamente como estaba.
func TestStore_FetchAll_FalloDejaLoUltimoConocido(t *testing.T) {
	api := &fakeAccounts{list: []entity.Account{cuenta(1, "Nómina")}}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	api.listErr = domain.ErrNetwork
	err := s.FetchAll(context.Background(), dto.ListFilter{})

	assert.ErrorIs(t, err, domain.ErrNetwork, "el error se devuelve para quien quiera tratarlo")
	require.Equal(t, 1, s.Len(), "la colección local debe quedar intacta")
	assert.Equal(t, "Nómina", s.Items()[0].Name)
}

// Caso 3: cada registro entra normalizado: fecha por defecto, moneda y método
// de pago rellenados.
func TestStore_FetchAll_NormalizaGastos(t *testing.T) {
	api := &fakeExpenses{list: []entity.Expense{
		{ID: 1, Description: "Luz", Amount: decimal.NewFromInt(80)}, // sin fecha ni moneda
	}}
	s := store.NewExpenses(api, logger.Nop())

	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	e := s.Items()[0]
	assert.False(t, e.Date.IsZero(), "una fecha ausente se rellena con hoy")
	assert.Equal(t, "BRL", e.Currency)
	assert.Equal(t, entity.PaymentCash, e.PaymentMethod)
}

// Caso 4: el filtro llega intacto al puerto.
func TestStore_FetchAll_PropagaFiltro(t *testing.T) {
	api := &fakeExpenses{}
	s := store.NewExpenses(api, logger.Nop())
	desde := entity.NewDate(2024, 1, 1)
	catID := int64(4)

	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{StartDate: &desde, CategoryID: &catID}))

	require.NotNil(t, api.lastList.StartDate)
	assert.True(t, api.lastList.StartDate.Equal(desde))
	require.NotNil(t, api.lastList.CategoryID)
	assert.Equal(t, catID, *api.lastList.CategoryID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add / Edit / Remove — el servidor confirma antes de tocar lo local
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: Add añade al final exactamente lo que el servidor devolvió.
func TestStore_Add_AnadeTrasConfirmacion(t *testing.T) {
	api := &fakeAccounts{
		list:    []entity.Account{cuenta(1, "Nómina")},
		created: cuenta(9, "Viajes"),
	}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	created, err := s.Add(context.Background(), dto.AccountPayload{Name: "Viajes"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	items := s.Items()
	require.Len(t, items, 2, "la colección crece exactamente en uno")
	assert.Equal(t, "Viajes", items[len(items)-1].Name, "el registro nuevo va al final")
}

// Caso 6: si el servidor rechaza la creación, lo local no cambia.
func TestStore_Add_FalloNoTocaLoLocal(t *testing.T) {
	api := &fakeAccounts{createErr: domain.ErrValidation}
	s := store.NewAccounts(api, logger.Nop())

	_, err := s.Add(context.Background(), dto.AccountPayload{})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, s.Len())
}

// Caso 7: Edit reemplaza el registro en su misma posición.
func TestStore_Edit_ReemplazaEnPosicion(t *testing.T) {
	api := &fakeAccounts{
		list:    []entity.Account{cuenta(1, "Nómina"), cuenta(2, "Ahorro"), cuenta(3, "Viajes")},
		updated: cuenta(2, "Ahorro Plus"),
	}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	updated, err := s.Edit(context.Background(), 2, dto.AccountPayload{Name: "Ahorro Plus"})

	require.NoError(t, err)
	assert.Equal(t, "Ahorro Plus", updated.Name)
	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Ahorro Plus", items[1].Name, "el registro editado conserva su posición")
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

// Caso 8: editar un id que no está localmente devuelve el registro pero no
// inserta nada; la colección queda tal cual.
func TestStore_Edit_IdAusenteSeDescarta(t *testing.T) {
	api := &fakeAccounts{
		list:    []entity.Account{cuenta(1, "Nómina")},
		updated: cuenta(99, "Fantasma"),
	}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	updated, err := s.Edit(context.Background(), 99, dto.AccountPayload{Name: "Fantasma"})

	require.NoError(t, err)
	assert.Equal(t, int64(99), updated.ID, "el resultado de la llamada sí se devuelve")
	items := s.Items()
	require.Len(t, items, 1, "nada entra en la colección")
	assert.Equal(t, int64(1), items[0].ID)
}

// Caso 9: Remove quita el registro confirmado; un id ausente deja todo igual.
func TestStore_Remove_ConfirmadoEIdempotente(t *testing.T) {
	api := &fakeAccounts{list: []entity.Account{cuenta(1, "Nómina"), cuenta(2, "Ahorro")}}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	require.NoError(t, s.Remove(context.Background(), 1))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, int64(2), s.Items()[0].ID)

	// Id ya ausente: la llamada remota ocurre, lo local no cambia.
	require.NoError(t, s.Remove(context.Background(), 1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int64{1, 1}, api.deletes)
}

// Caso 10: si el borrado remoto falla, el registro sigue localmente.
func TestStore_Remove_FalloConservaRegistro(t *testing.T) {
	api := &fakeAccounts{list: []entity.Account{cuenta(1, "Nómina")}}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	api.deleteErr = domain.ErrServer
	err := s.Remove(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, 1, s.Len())
}

// Items devuelve una copia: mutarla no afecta al store.
func TestStore_Items_CopiaDefensiva(t *testing.T) {
	api := &fakeAccounts{list: []entity.Account{cuenta(1, "Nómina")}}
	s := store.NewAccounts(api, logger.Nop())
	require.NoError(t, s.FetchAll(context.Background(), dto.ListFilter{}))

	items := s.Items()
	items[0].Name = "Mutada"

	assert.Equal(t, "Nómina", s.Items()[0].Name)
}
