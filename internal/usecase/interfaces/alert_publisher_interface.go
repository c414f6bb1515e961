package interfaces

import (
	"context"
	"time"

	"splitpay/internal/domain/entities"
)

// PersistenceAlert describes money that moved at a gateway without a
// matching ledger record.
type PersistenceAlert struct {
	OrderID  string                     `json:"order_id"`
	Index    int                        `json:"index"`
	Record   entities.TransactionRecord `json:"record"`
	Error    string                     `json:"error"`
	RaisedAt time.Time                  `json:"raised_at"`
}

type IAlertPublisher interface {
	PublishPersistenceFailure(ctx context.Context, alert PersistenceAlert) error
}
