package routes

import (
	"context"
	"net/http"

	_ "lesson_billing/docs"
	"lesson_billing/internal/adapter/http/handlers"
	"lesson_billing/internal/app"
	"lesson_billing/internal/config"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the application and serves it on cfg.Port until the server
// fails.
func Run(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	router := NewRouter(a)

	log := logger.WithComponent("http")
	log.Info().Str("port", cfg.Port).Msg("starting server")
	return router.Run(":" + cfg.Port)
}

func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler(a.Registry)))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, billingHandlers{
		contracts:     handlers.NewContractHandler(a.Contracts),
		attendance:    handlers.NewAttendanceHandler(a.Attendance),
		invoices:      handlers.NewInvoiceHandler(a.Invoices),
		payoutAccount: handlers.NewPayoutAccountHandler(a.PayoutAccounts),
	})
	return router
}

func setMiddlewares(router *gin.Engine) {
	log := logger.WithComponent("http")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
