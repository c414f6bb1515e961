package entities

import "strings"

// InstrumentType identifies the kind of payment instrument used by one line
// of a split payment. The set is closed: unknown values are rejected before
// any gateway is contacted.
type InstrumentType string

const (
	InstrumentCreditCard  InstrumentType = "creditcard"
	InstrumentCash        InstrumentType = "cash"
	InstrumentCheck       InstrumentType = "check"
	InstrumentStoreCredit InstrumentType = "storecredit"
	InstrumentGiftCard    InstrumentType = "giftcard"
)

// InstrumentTypes lists every supported instrument in a stable order.
var InstrumentTypes = []InstrumentType{
	InstrumentCreditCard,
	InstrumentCash,
	InstrumentCheck,
	InstrumentStoreCredit,
	InstrumentGiftCard,
}

func (t InstrumentType) IsValid() bool {
	for _, known := range InstrumentTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t InstrumentType) String() string { return string(t) }

// ParseInstrumentType normalizes case and surrounding whitespace. The result
// may still be invalid; callers check IsValid.
func ParseInstrumentType(raw string) InstrumentType {
	return InstrumentType(strings.ToLower(strings.TrimSpace(raw)))
}
