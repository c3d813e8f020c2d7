package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST consumido.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig dónde persiste la credencial entre ejecuciones. Un valor
// vacío en File desactiva la persistencia (sesión solo en memoria).
type SessionConfig struct {
	File string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Validate comprueba que la URL base sea absoluta.
func (c APIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL inválida: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL debe ser http(s), recibido %q", c.BaseURL)
	}
	return nil
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env en el directorio actual). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "finanzas"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:8000"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Session: SessionConfig{
			File: getString(v, "SESSION_FILE", defaultSessionFile()),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if err := cfg.API.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultSessionFile ruta por defecto bajo el directorio de configuración
// del usuario; vacío si el sistema no expone uno.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "finanzas", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
