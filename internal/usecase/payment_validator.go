package usecase

import (
	"strings"

	"splitpay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ValidateEntries checks the whole sequence before any gateway is touched.
// It never mutates the entries, so calling it twice yields the same result.
func ValidateEntries(entries []entities.PaymentMethodEntry) error {
	if len(entries) == 0 {
		return &InvalidEntryError{Index: -1, Reason: "no payment methods"}
	}
	for i, e := range entries {
		if err := validateInstrument(i, e.Type, e.Amount); err != nil {
			return err
		}
	}
	return nil
}

func validateInstrument(index int, t entities.InstrumentType, amount decimal.Decimal) error {
	if strings.TrimSpace(string(t)) == "" {
		return &InvalidEntryError{Index: index, Reason: "malformed method, missing type"}
	}
	if !t.IsValid() {
		return &InvalidEntryError{Index: index, Type: t, Reason: "unknown payment method type"}
	}
	if !amount.IsPositive() {
		return &InvalidEntryError{Index: index, Type: t, Reason: "payment method has no amount"}
	}
	return nil
}
