package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tillworks/pos-api/pkg/apperror"
)

// PaymentMethod represents how a sale was settled
type PaymentMethod int

const (
	PaymentMethodCash       PaymentMethod = 0
	PaymentMethodCreditCard PaymentMethod = 1
	PaymentMethodEWallet    PaymentMethod = 2
)

var paymentMethodNames = [...]string{"Cash", "CreditCard", "EWallet"}

func (m PaymentMethod) String() string {
	if m < 0 || int(m) >= len(paymentMethodNames) {
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
	return paymentMethodNames[m]
}

// ParsePaymentMethod resolves a payment method from a case-insensitive name.
// Spellings used by legacy terminals ("CREDIT CARD", "E-WALLET") are accepted.
// An unrecognized name is a validation error, never a silent cash fallback.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)

	switch normalized {
	case "CASH":
		return PaymentMethodCash, nil
	case "CREDITCARD", "CARD":
		return PaymentMethodCreditCard, nil
	case "EWALLET", "WALLET":
		return PaymentMethodEWallet, nil
	default:
		return 0, apperror.NewUnprocessableError("Unknown payment method: " + name)
	}
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}

	var v int64
	switch t := value.(type) {
	case int64:
		v = t
	case int:
		v = int64(t)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMethod", value)
	}

	if v < 0 || v >= int64(len(paymentMethodNames)) {
		return fmt.Errorf("invalid payment method value: %d", v)
	}
	*m = PaymentMethod(v)
	return nil
}
