package report

import (
	"io"
	"time"

	"splitpay/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const TransactionsSheet = "Transactions"

var transactionHeader = []any{
	"id", "order_id", "type", "payment_method", "amount", "revenue",
	"gateway_transaction_id", "refund_method", "refund_giftcard_id", "refund_storecredit_id", "created_at",
}

// WriteTransactionsXLSX writes one row per ledger record, in the given order,
// below a header row. Amounts are written as numbers.
func WriteTransactionsXLSX(w io.Writer, records []entities.TransactionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(TransactionsSheet, "A1", &transactionHeader); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.ID,
			r.OrderID,
			string(r.TransactionType),
			string(r.PaymentMethod),
			r.Amount.InexactFloat64(),
			r.Revenue.InexactFloat64(),
			r.GatewayTransactionID,
			string(r.RefundMethod),
			r.RefundGiftcardID,
			r.RefundStorecreditID,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(TransactionsSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
