package domain

import (
	"strings"

	"golang.org/x/text/currency"
)

// DefaultCurrency is used when a trip or profile does not name one.
const DefaultCurrency = "USD"

// NormalizeCurrency upper-cases code and checks it is a known ISO 4217 currency.
// An empty code yields DefaultCurrency.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", err
	}
	return unit.String(), nil
}
