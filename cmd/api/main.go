package main

import (
	"context"
	"os"

	"lesson_billing/internal/adapter/http/routes"
	"lesson_billing/internal/config"
	"lesson_billing/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Lesson Billing API
// @version         1.0
// @description     Contracts, attendance and invoices for session and balance passes.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ProviderID
// @in header
// @name X-Provider-ID
// @description Id of the provider the request acts for.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logger")
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
