package tracker

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Converter converts amounts between currencies through the base unit
// and renders them for the active display currency. It is built from a
// Settings record and holds no other state: a currency switch is a
// settings change, never a data migration, since everything persisted
// stays in the base unit.
type Converter struct {
	display string
	rates   map[string]decimal.Decimal
}

// NewConverter creates a converter for the given settings.
func NewConverter(s Settings) *Converter {
	return &Converter{display: s.Currency, rates: s.ExchangeRates}
}

// Display returns the active display currency code.
func (c *Converter) Display() string { return c.display }

// Rate returns the exchange rate for a currency code. Unknown codes
// silently resolve to 1.0: availability wins over strict validation.
func (c *Converter) Rate(code string) decimal.Decimal {
	if rate, ok := c.rates[code]; ok && rate.IsPositive() {
		return rate
	}
	return decimal.NewFromInt(1)
}

// Convert converts an amount from one currency to another, going
// through the base unit. Converting a currency to itself is exact
// identity.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Div(c.Rate(from)).Mul(c.Rate(to))
}

// SymbolFor returns the display glyph for a currency code, or "$" for
// codes it does not recognize. It never fails.
func SymbolFor(code string) string {
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return "$"
}

// fractionFor returns the number of decimal digits conventionally used
// by a currency (0 for currencies with no minor unit, like RWF).
func fractionFor(code string) int32 {
	if cur := money.GetCurrency(code); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

// suffixed reports whether a currency conventionally places its symbol
// after the amount.
func suffixed(code string) bool {
	if cur := money.GetCurrency(code); cur != nil {
		return strings.HasPrefix(cur.Template, "1")
	}
	return false
}

// Format converts a base-unit amount to the display currency and
// renders it with the currency's symbol and its natural precision:
// zero-decimal currencies never show a decimal separator, two-decimal
// currencies always show exactly two digits.
func (c *Converter) Format(base decimal.Decimal) string {
	value := c.Convert(base, BaseCurrency, c.display)
	number := value.StringFixed(fractionFor(c.display))
	if suffixed(c.display) {
		return number + " " + SymbolFor(c.display)
	}
	return SymbolFor(c.display) + number
}

// DisplayValue converts a base-unit amount to the display currency,
// rounded to the currency's natural precision. It is meant for
// populating editable numeric inputs, where Format's string would not
// do.
func (c *Converter) DisplayValue(base decimal.Decimal) decimal.Decimal {
	return c.Convert(base, BaseCurrency, c.display).Round(fractionFor(c.display))
}

// BaseValue converts a user-entered display-currency value back to the
// base unit, rounded to the base currency's precision. Budget entry
// goes through here before persisting.
func (c *Converter) BaseValue(display decimal.Decimal) decimal.Decimal {
	return c.Convert(display, c.display, BaseCurrency).Round(fractionFor(BaseCurrency))
}
