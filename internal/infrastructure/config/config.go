package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	LedgerBackendDynamoDB = "dynamodb"
	LedgerBackendPostgres = "postgres"
	LedgerBackendSQLite   = "sqlite"
)

// Config is read once from the environment at startup.
//
// Supported env vars (local-friendly):
//   - PORT (default: 8080)
//   - LEDGER_BACKEND (dynamodb | postgres | sqlite, default: dynamodb)
//   - LEDGER_DSN (default: file:ledger.db)
//   - TRANSACTIONS_TABLE, BALANCES_TABLE
//   - ALERTS_QUEUE_URL (optional; SQS queue for persistence alerts)
//   - MERCADOPAGO_ACCESS_TOKEN, PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK
//   - GATEWAY_TIMEOUT (default: 30s)
type Config struct {
	Port              int
	LedgerBackend     string
	LedgerDSN         string
	TransactionsTable string
	BalancesTable     string
	AlertsQueueURL    string

	MercadoPagoAccessToken string
	GatewayMock            bool
	GatewayTimeout         time.Duration
}

func Load() Config {
	return Config{
		Port:                   cast.ToInt(getenvDefault("PORT", "8080")),
		LedgerBackend:          strings.ToLower(getenvDefault("LEDGER_BACKEND", LedgerBackendDynamoDB)),
		LedgerDSN:              getenvDefault("LEDGER_DSN", "file:ledger.db"),
		TransactionsTable:      getenvDefault("TRANSACTIONS_TABLE", "financial_transactions"),
		BalancesTable:          getenvDefault("BALANCES_TABLE", "balance_accounts"),
		AlertsQueueURL:         strings.TrimSpace(os.Getenv("ALERTS_QUEUE_URL")),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		GatewayMock:            IsPaymentGatewayMockEnabled(),
		GatewayTimeout:         cast.ToDuration(getenvDefault("GATEWAY_TIMEOUT", "30s")),
	}
}

// IsPaymentGatewayMockEnabled reports whether external gateways should
// approve locally instead of calling their provider.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		if v == "mock" || v == "yes" || v == "on" {
			return true
		}
		if cast.ToBool(v) {
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
