package main

import (
	"os"

	"github.com/jhoicas/finanzas-app/internal/mockapi"
	"github.com/jhoicas/finanzas-app/pkg/config"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// Backend simulado para desarrollo sin servidor real: expone el mismo
// contrato REST que consume el cliente, con estado en memoria.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	secret := os.Getenv("MOCKAPI_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}

	srv := mockapi.New(secret, log)
	if err := srv.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor simulado")
	}
}
