// Package app wires repositories, collaborators and use cases from the
// service configuration. Both the HTTP server and the billing worker start
// from here.
package app

import (
	"context"
	"fmt"

	"lesson_billing/internal/adapter/persistence/memory"
	"lesson_billing/internal/adapter/persistence/repository"
	"lesson_billing/internal/config"
	"lesson_billing/internal/infrastructure/database"
	"lesson_billing/internal/infrastructure/notification"
	"lesson_billing/internal/infrastructure/payments"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Repositories struct {
	Contracts      interfaces.IContractRepository
	Attendance     interfaces.IAttendanceRepository
	Invoices       interfaces.IInvoiceRepository
	PayoutAccounts interfaces.IPayoutAccountRepository
}

type App struct {
	Config   *config.Config
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Repos    Repositories

	Contracts      usecase.IContractUseCase
	Attendance     usecase.IAttendanceUseCase
	Invoices       usecase.IInvoiceLifecycleUseCase
	PayoutAccounts usecase.IPayoutAccountUseCase
	Trigger        usecase.IBillingTriggerUseCase
}

// New builds the application for cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	repos, err := NewRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithRepositories(cfg, repos)
}

func NewRepositories(ctx context.Context, cfg *config.Config) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return Repositories{
			Contracts:      memory.NewContractRepository(),
			Attendance:     memory.NewAttendanceRepository(),
			Invoices:       memory.NewInvoiceRepository(),
			PayoutAccounts: memory.NewPayoutAccountRepository(),
		}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		return Repositories{
			Contracts:      repository.NewContractDynamoRepository(ddb, cfg.ContractsTable),
			Attendance:     repository.NewAttendanceDynamoRepository(ddb, cfg.AttendanceTable),
			Invoices:       repository.NewInvoiceDynamoRepository(ddb, cfg.InvoicesTable),
			PayoutAccounts: repository.NewPayoutAccountDynamoRepository(ddb, cfg.PayoutAccountsTable),
		}, nil
	}
	return Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func NewWithRepositories(cfg *config.Config, repos Repositories) (*App, error) {
	log := logger.WithComponent("app")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)
	loc := cfg.Location()

	sms, err := notification.NewSmsSender(cfg.SmsDriver)
	if err != nil {
		return nil, err
	}
	notifier := notification.NewLogNotifier()

	var links interfaces.IPaymentLinkProvider
	provider, err := payments.NewMercadoPagoLinkProvider(cfg.MercadoPagoAccessToken, cfg.PaymentLinkMock, cfg.InvoiceViewBaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("payment links disabled, link sends fall back to the invoice view")
	} else {
		links = provider
	}

	assembler := usecase.NewInvoiceAssembler(repos.Invoices, repos.PayoutAccounts, m, loc)
	trigger := usecase.NewBillingTriggerUseCase(repos.Contracts, repos.Attendance, repos.Invoices, assembler, notifier, m, loc, cfg.SweepConcurrency)

	log.Info().Str("storage", cfg.StorageDriver).Str("sms", cfg.SmsDriver).Str("timezone", loc.String()).Msg("application wired")

	return &App{
		Config:         cfg,
		Registry:       registry,
		Metrics:        m,
		Repos:          repos,
		Contracts:      usecase.NewContractUseCase(repos.Contracts, trigger, m, loc),
		Attendance:     usecase.NewAttendanceUseCase(repos.Contracts, repos.Attendance, trigger, m),
		Invoices:       usecase.NewInvoiceLifecycleUseCase(repos.Contracts, repos.Invoices, notifier, sms, links, cfg.InvoiceViewBaseURL, m, loc),
		PayoutAccounts: usecase.NewPayoutAccountUseCase(repos.PayoutAccounts),
		Trigger:        trigger,
	}, nil
}
