package response

import "splitpay/internal/domain/entities"

type PaymentMethodResponse struct {
	Type          string         `json:"type"`
	Amount        string         `json:"amount"`
	Reference     string         `json:"reference,omitempty"`
	Result        string         `json:"result"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Response      map[string]any `json:"response,omitempty"`
}

// SplitPaymentResponse is the body of a successful payment. Failures use the
// error envelope with the failing response as details.
type SplitPaymentResponse struct {
	OrderID      string                  `json:"order_id"`
	Success      bool                    `json:"success"`
	Methods      []PaymentMethodResponse `json:"methods"`
	Transactions []TransactionResponse   `json:"transactions"`
}

func FromPaymentResult(orderID string, success bool, entries []entities.PaymentMethodEntry, records []entities.TransactionRecord) SplitPaymentResponse {
	methods := make([]PaymentMethodResponse, 0, len(entries))
	for _, e := range entries {
		methods = append(methods, PaymentMethodResponse{
			Type:          string(e.Type),
			Amount:        e.Amount.StringFixed(2),
			Reference:     e.Reference,
			Result:        string(e.Result),
			TransactionID: e.TransactionID,
			Response:      e.Response,
		})
	}
	return SplitPaymentResponse{
		OrderID:      orderID,
		Success:      success,
		Methods:      methods,
		Transactions: FromTransactions(records),
	}
}
