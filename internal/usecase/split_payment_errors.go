package usecase

import (
	"errors"
	"fmt"

	"splitpay/internal/domain/entities"
)

var (
	ErrInvalidInput         = errors.New("invalid payment input")
	ErrInvalidOrderID       = fmt.Errorf("%w: missing order_id", ErrInvalidInput)
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrAuthorizationFailed  = errors.New("payment authorization failed")
	ErrChargeFailed         = errors.New("payment charge failed")
	ErrPersistenceFailed    = errors.New("ledger persistence failed after charge")
	ErrRefundFailed         = errors.New("refund failed")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

// InvalidEntryError names the payment method entry that failed validation.
// Index is -1 when the problem is not tied to a single entry.
type InvalidEntryError struct {
	Index  int
	Type   entities.InstrumentType
	Reason string
	Kind   error
}

func (e *InvalidEntryError) Error() string {
	if e.Index < 0 {
		if e.Type != "" {
			return fmt.Sprintf("%s: %q: %s", e.kind(), e.Type, e.Reason)
		}
		return fmt.Sprintf("%s: %s", e.kind(), e.Reason)
	}
	return fmt.Sprintf("%s: entry %d (%q): %s", e.kind(), e.Index, e.Type, e.Reason)
}

func (e *InvalidEntryError) Unwrap() error { return e.kind() }

func (e *InvalidEntryError) kind() error {
	if e.Kind != nil {
		return e.Kind
	}
	return ErrInvalidInput
}

// PaymentFailureError is returned once an operation aborted after touching a
// gateway. Index is -1 for refunds. Response is the captured payload of the
// failing instrument; Cause holds rollback or ledger errors, if any.
type PaymentFailureError struct {
	Kind     error
	Index    int
	Type     entities.InstrumentType
	Response entities.GatewayResponse
	Cause    error
}

func (e *PaymentFailureError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Type)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: entry %d (%s)", e.Kind, e.Index, e.Type)
	}
	if reason := e.Response.String(entities.ResponseKeyError); reason != "" {
		msg += ": " + reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *PaymentFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
