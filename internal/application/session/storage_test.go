package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/internal/application/session"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

func tempSessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "finanzas", "session.json")
}

// Caso 1: ida y vuelta de credencial y usuario por archivo.
func TestFileStorage_RoundTrip(t *testing.T) {
	s := session.NewFileStorage(tempSessionFile(t))

	require.NoError(t, s.SetToken("tok-abc"))
	u := entity.User{ID: 1, Name: "Ana", Email: "ana@example.com", Role: entity.RoleCliente}
	require.NoError(t, s.SetUser(&u))

	assert.Equal(t, "tok-abc", s.Token())
	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, entity.RoleCliente, got.Role)
}

// Caso 2: Clear elimina el archivo completo; credencial y usuario caen juntos.
func TestFileStorage_ClearEliminaTodo(t *testing.T) {
	path := tempSessionFile(t)
	s := session.NewFileStorage(path)
	require.NoError(t, s.SetToken("tok-abc"))

	require.NoError(t, s.Clear())

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el archivo de sesión debe desaparecer")

	// Clear sobre sesión ya limpia es idempotente.
	assert.NoError(t, s.Clear())
}

// Caso 3: archivos legacy guardaban los centinelas "undefined"/"null" como
// usuario; deben contar como usuario ausente, no como corrupción.
func TestFileStorage_CentinelasLegacyComoAusente(t *testing.T) {
	for _, raw := range []string{
		`{"token":"tok-abc","user":"undefined"}`,
		`{"token":"tok-abc","user":"null"}`,
		`{"token":"tok-abc","user":null}`,
		`{"token":"tok-abc"}`,
	} {
		path := tempSessionFile(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

		s := session.NewFileStorage(path)
		assert.Nil(t, s.User(), "entrada %s debe leerse como usuario ausente", raw)
		assert.Equal(t, "tok-abc", s.Token(), "la credencial del mismo archivo sigue siendo válida")
	}
}

// Caso 4: un usuario corrupto equivale a ausente; no rompe la lectura.
func TestFileStorage_UsuarioCorrupto(t *testing.T) {
	path := tempSessionFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok-abc","user":{"id":"no-numérico"}}`), 0o600))

	s := session.NewFileStorage(path)
	assert.Nil(t, s.User())
	assert.Equal(t, "tok-abc", s.Token())
}

// Caso 5: archivo inexistente se comporta como sesión vacía.
func TestFileStorage_ArchivoInexistente(t *testing.T) {
	s := session.NewFileStorage(tempSessionFile(t))

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

// MemoryStorage entrega copias: mutar lo devuelto no toca lo guardado.
func TestMemoryStorage_DevuelveCopias(t *testing.T) {
	s := session.NewMemoryStorage()
	u := entity.User{ID: 1, Name: "Ana"}
	require.NoError(t, s.SetUser(&u))

	got := s.User()
	got.Name = "Mutada"

	assert.Equal(t, "Ana", s.User().Name)
}
