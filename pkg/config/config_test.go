package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-app/pkg/config"
)

// Caso 1: sin nada configurado se aplican los valores por defecto.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "finanzas", cfg.App.Name)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

// Caso 2: las variables de entorno tienen prioridad sobre los defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.finanzas.example.com")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_FILE", "/tmp/sesion-de-test.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.finanzas.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/sesion-de-test.json", cfg.Session.File)
}

// Caso 3: una URL base que no sea http(s) se rechaza al cargar.
func TestLoad_BaseURLInvalida(t *testing.T) {
	t.Setenv("API_BASE_URL", "ftp://backend")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestAPIConfig_Validate(t *testing.T) {
	assert.NoError(t, config.APIConfig{BaseURL: "http://localhost:8000"}.Validate())
	assert.NoError(t, config.APIConfig{BaseURL: "https://api.example.com"}.Validate())
	assert.Error(t, config.APIConfig{BaseURL: "localhost:8000"}.Validate())
	assert.Error(t, config.APIConfig{BaseURL: ""}.Validate())
}
