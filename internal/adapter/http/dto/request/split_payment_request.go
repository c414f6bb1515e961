package request

import (
	"strings"

	"splitpay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentMethodRequest is one line of a split payment. Amount accepts a JSON
// number or string.
type PaymentMethodRequest struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
}

type PaymentInfoRequest struct {
	CreditcardNumber          string `json:"creditcard_number"`
	CreditcardExpirationMonth string `json:"creditcard_expiration_month"`
	CreditcardExpirationYear  string `json:"creditcard_expiration_year"`
	CreditcardSecurityCode    string `json:"creditcard_security_code"`
	CreditcardType            string `json:"creditcard_type"`
	CreditcardToken           string `json:"creditcard_token"`
	PaymentMethod             string `json:"payment_method"`
}

type BillingInfoRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
}

// OrderFields are shared by payment and refund bodies; the order id itself
// comes from the path.
type OrderFields struct {
	Description string `json:"description"`
	LocationID  string `json:"location_id"`
	CustomerID  string `json:"customer_id"`
	OperatorID  string `json:"operator_id"`
}

type SplitPaymentRequest struct {
	OrderFields
	Methods     []PaymentMethodRequest `json:"methods"`
	PaymentInfo PaymentInfoRequest     `json:"payment_info"`
	BillingInfo BillingInfoRequest     `json:"billing_info"`
}

type RefundRequest struct {
	OrderFields
	PaymentMethod        string          `json:"payment_method"`
	RefundMethod         string          `json:"refund_method"`
	Amount               decimal.Decimal `json:"amount"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
	Reference            string          `json:"reference"`
}

func (f OrderFields) ToOrderContext(orderID string) entities.OrderContext {
	return entities.OrderContext{
		OrderID:     strings.TrimSpace(orderID),
		Description: strings.TrimSpace(f.Description),
		LocationID:  strings.TrimSpace(f.LocationID),
		CustomerID:  strings.TrimSpace(f.CustomerID),
		OperatorID:  strings.TrimSpace(f.OperatorID),
	}
}

// ToEntries keeps unknown types as given so validation can report them with
// their position.
func (r SplitPaymentRequest) ToEntries() []entities.PaymentMethodEntry {
	entries := make([]entities.PaymentMethodEntry, 0, len(r.Methods))
	for _, m := range r.Methods {
		entries = append(entries, entities.PaymentMethodEntry{
			Type:      entities.ParseInstrumentType(m.Type),
			Amount:    m.Amount,
			Reference: strings.TrimSpace(m.Reference),
			Result:    entities.PhaseUnattempted,
		})
	}
	return entries
}

func (p PaymentInfoRequest) ToPaymentInfo() entities.PaymentInfo {
	return entities.PaymentInfo{
		CreditcardNumber:          strings.ReplaceAll(strings.TrimSpace(p.CreditcardNumber), " ", ""),
		CreditcardExpirationMonth: strings.TrimSpace(p.CreditcardExpirationMonth),
		CreditcardExpirationYear:  strings.TrimSpace(p.CreditcardExpirationYear),
		CreditcardSecurityCode:    strings.TrimSpace(p.CreditcardSecurityCode),
		CreditcardType:            strings.TrimSpace(p.CreditcardType),
		CreditcardToken:           strings.TrimSpace(p.CreditcardToken),
		PaymentMethod:             strings.TrimSpace(p.PaymentMethod),
	}
}

func (b BillingInfoRequest) ToBillingInfo() entities.BillingInfo {
	return entities.BillingInfo{
		FirstName: strings.TrimSpace(b.FirstName),
		LastName:  strings.TrimSpace(b.LastName),
		Phone:     strings.TrimSpace(b.Phone),
		Email:     strings.TrimSpace(b.Email),
		Address:   strings.TrimSpace(b.Address),
		Address2:  strings.TrimSpace(b.Address2),
		City:      strings.TrimSpace(b.City),
		State:     strings.TrimSpace(b.State),
		Zipcode:   strings.TrimSpace(b.Zipcode),
		Country:   strings.ToUpper(strings.TrimSpace(b.Country)),
	}.WithDefaults()
}
