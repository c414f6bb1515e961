package interfaces

import (
	"context"

	"splitpay/internal/domain/entities"
)

// ILedgerRepository is the append-only store of transaction records.
//
// Append must never overwrite an existing id. GetByID returns a zero record
// and a nil error when nothing matches.
type ILedgerRepository interface {
	Append(ctx context.Context, r entities.TransactionRecord) (entities.TransactionRecord, error)
	GetByID(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.TransactionRecord, error)
}
