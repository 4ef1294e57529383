package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"lesson_billing/internal/logger"

	"github.com/robfig/cron/v3"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	SmsDriverLog      = "log"
	SmsDriverDisabled = "disabled"
)

type Config struct {
	Port          string
	StorageDriver string

	// AWS / DynamoDB
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	DynamoDBEndpoint    string
	ContractsTable      string
	AttendanceTable     string
	InvoicesTable       string
	PayoutAccountsTable string

	// Billing
	BillingTimezone  string
	SweepCron        string
	SweepConcurrency int

	// Delivery
	MercadoPagoAccessToken string
	PaymentLinkMock        bool
	InvoiceViewBaseURL     string
	SmsDriver              string

	// Logging
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	c := &Config{
		Port:                   getEnv("PORT", "8080"),
		StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageDynamoDB)),
		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		ContractsTable:         getEnv("CONTRACTS_TABLE", "contracts"),
		AttendanceTable:        getEnv("ATTENDANCE_TABLE", "attendance_records"),
		InvoicesTable:          getEnv("INVOICES_TABLE", "invoices"),
		PayoutAccountsTable:    getEnv("PAYOUT_ACCOUNTS_TABLE", "payout_accounts"),
		BillingTimezone:        getEnv("BILLING_TIMEZONE", "Asia/Seoul"),
		SweepCron:              getEnv("SWEEP_CRON", "0 */1 * * *"),
		SweepConcurrency:       getEnvInt("SWEEP_CONCURRENCY", 4),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentLinkMock:        getEnvBool("PAYMENT_LINK_MOCK"),
		InvoiceViewBaseURL:     getEnv("INVOICE_VIEW_BASE_URL", "http://localhost:8080/v1/invoices"),
		SmsDriver:              strings.ToLower(getEnv("SMS_DRIVER", SmsDriverLog)),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		LogTimeFormat:          getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:              getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDynamoDB, StorageMemory, c.StorageDriver)
	}
	switch c.SmsDriver {
	case SmsDriverLog, SmsDriverDisabled:
	default:
		return fmt.Errorf("SMS_DRIVER must be %q or %q, got %q", SmsDriverLog, SmsDriverDisabled, c.SmsDriver)
	}
	if c.SweepConcurrency <= 0 {
		return fmt.Errorf("SWEEP_CONCURRENCY must be positive")
	}
	if _, err := time.LoadLocation(c.BillingTimezone); err != nil {
		return fmt.Errorf("BILLING_TIMEZONE: %w", err)
	}
	if _, err := cron.ParseStandard(c.SweepCron); err != nil {
		return fmt.Errorf("SWEEP_CRON: %w", err)
	}
	return nil
}

// Location is the time zone calendar dates are computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BillingTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
