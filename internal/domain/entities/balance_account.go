package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceAccount is a stored-value account backing store credit and gift
// card payments.
type BalanceAccount struct {
	ID        string          `json:"id"`
	Kind      InstrumentType  `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}
