package entities

import "strings"

const DefaultBillingCountry = "US"

// PaymentInfo holds the card data forwarded to the credit card gateway.
type PaymentInfo struct {
	CreditcardNumber          string `json:"creditcard_number,omitempty"`
	CreditcardExpirationMonth string `json:"creditcard_expiration_month,omitempty"`
	CreditcardExpirationYear  string `json:"creditcard_expiration_year,omitempty"`
	CreditcardSecurityCode    string `json:"creditcard_security_code,omitempty"`
	CreditcardType            string `json:"creditcard_type,omitempty"`
	// CreditcardToken is a tokenized card produced by the provider's client SDK.
	CreditcardToken string `json:"creditcard_token,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
}

// Secured returns a copy safe to log or persist: the card number keeps only
// its last 4 digits and the security code and token are dropped.
func (p PaymentInfo) Secured() PaymentInfo {
	s := p
	number := strings.TrimSpace(p.CreditcardNumber)
	if len(number) > 4 {
		number = number[len(number)-4:]
	}
	s.CreditcardNumber = number
	s.CreditcardSecurityCode = ""
	s.CreditcardToken = ""
	return s
}

// BillingInfo is the payer's billing identity and address.
type BillingInfo struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zipcode   string `json:"zipcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// WithDefaults fills the country when it was not provided.
func (b BillingInfo) WithDefaults() BillingInfo {
	if strings.TrimSpace(b.Country) == "" {
		b.Country = DefaultBillingCountry
	}
	return b
}
