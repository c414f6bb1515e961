package response

import (
	"time"

	"splitpay/internal/domain/entities"
)

type TransactionResponse struct {
	ID                   string         `json:"id"`
	OrderID              string         `json:"order_id"`
	Description          string         `json:"description"`
	LocationID           string         `json:"location_id"`
	CustomerID           string         `json:"customer_id"`
	OperatorID           string         `json:"operator_id,omitempty"`
	PaymentMethod        string         `json:"payment_method"`
	Type                 string         `json:"type"`
	Amount               string         `json:"amount"`
	Revenue              string         `json:"revenue"`
	GatewayTransactionID string         `json:"gateway_transaction_id,omitempty"`
	RefundMethod         string         `json:"refund_method,omitempty"`
	RefundGiftcardID     string         `json:"refund_giftcard_id,omitempty"`
	RefundStorecreditID  string         `json:"refund_storecredit_id,omitempty"`
	Response             map[string]any `json:"response,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
}

func FromTransaction(r entities.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:                   r.ID,
		OrderID:              r.OrderID,
		Description:          r.Description,
		LocationID:           r.LocationID,
		CustomerID:           r.CustomerID,
		OperatorID:           r.OperatorID,
		PaymentMethod:        string(r.PaymentMethod),
		Type:                 string(r.TransactionType),
		Amount:               r.Amount.StringFixed(2),
		Revenue:              r.Revenue.StringFixed(2),
		GatewayTransactionID: r.GatewayTransactionID,
		RefundMethod:         string(r.RefundMethod),
		RefundGiftcardID:     r.RefundGiftcardID,
		RefundStorecreditID:  r.RefundStorecreditID,
		Response:             r.Response,
		CreatedAt:            r.CreatedAt,
	}
}

func FromTransactions(records []entities.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromTransaction(r))
	}
	return out
}
