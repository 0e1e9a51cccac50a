package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds for amounts and ledger sums.
const (
	maxIntegerDigits  = 15
	maxFractionDigits = 8
)

// ParseAmount turns user input into a positive decimal amount. Anything
// else, including zero and values outside the supported range, is
// ErrInvalidAmount.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if err = ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// ValidateAmount reports ErrInvalidAmount unless value is positive and
// InRange.
func ValidateAmount(value decimal.Decimal) error {
	if !InRange(value) || !value.IsPositive() {
		return ErrInvalidAmount
	}

	return nil
}

// InRange reports whether value has at most 15 integer and 8 fractional
// digits.
func InRange(value decimal.Decimal) bool {
	exponent := int(value.Exponent())
	if exponent < -maxFractionDigits {
		return false
	}

	return value.NumDigits()+exponent <= maxIntegerDigits
}

// ParsePIN turns user input into a PIN. Malformed input is reported as
// invalid credentials, the same as a wrong PIN.
func ParsePIN(pin string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil {
		return 0, ErrInvalidCredentials
	}

	return value, nil
}
