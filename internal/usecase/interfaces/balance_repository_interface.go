package interfaces

import (
	"context"
	"errors"

	"splitpay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountKindMismatch = errors.New("balance account belongs to another instrument")
)

// IBalanceRepository abstracts stored-value accounts (store credit, gift cards).
//
// Debit and Credit are conditional on the account kind and fail with
// ErrAccountKindMismatch when it differs. Debit fails with
// ErrInsufficientBalance instead of letting the balance go negative. Credit
// creates the account when missing.
type IBalanceRepository interface {
	Get(ctx context.Context, id string) (entities.BalanceAccount, error)
	Debit(ctx context.Context, id string, kind entities.InstrumentType, amount decimal.Decimal) (entities.BalanceAccount, error)
	Credit(ctx context.Context, id string, kind entities.InstrumentType, amount decimal.Decimal) (entities.BalanceAccount, error)
}
