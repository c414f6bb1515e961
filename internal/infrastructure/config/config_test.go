package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "LEDGER_BACKEND", "LEDGER_DSN", "TRANSACTIONS_TABLE", "BALANCES_TABLE", "ALERTS_QUEUE_URL", "GATEWAY_TIMEOUT", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		if cfg.Port != 8080 || cfg.LedgerBackend != LedgerBackendDynamoDB || cfg.TransactionsTable != "financial_transactions" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.GatewayTimeout != 30*time.Second || cfg.GatewayMock {
			t.Fatalf("unexpected gateway defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LEDGER_BACKEND", "SQLite")
		t.Setenv("GATEWAY_TIMEOUT", "1500ms")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		cfg := Load()
		if cfg.Port != 9090 || cfg.LedgerBackend != LedgerBackendSQLite || cfg.GatewayTimeout != 1500*time.Millisecond || !cfg.GatewayMock {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "yes": true, "on": true, "mock": true, "": false, "0": false, "false": false, "nope": false}
	for v, want := range cases {
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		t.Setenv("MERCADOPAGO_MOCK", "")
		if got := IsPaymentGatewayMockEnabled(); got != want {
			t.Fatalf("value %q: expected %v, got %v", v, want, got)
		}
	}
}
