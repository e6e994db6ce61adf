package shared

import (
	"fmt"
	"math"
)

// DefaultCurrency is the currency every price is charged in.
const DefaultCurrency = "BRL"

// Money is an amount in minor units (centavos) of a currency.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// MoneyFromDecimal converts a decimal amount (e.g. 129.90) to Money,
// rounding half away from zero to the nearest cent.
func MoneyFromDecimal(amount float64, currency string) Money {
	return NewMoney(int64(math.Round(amount*100)), currency)
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// Decimal returns the amount in major units.
func (m Money) Decimal() float64 {
	return float64(m.amountInCents) / 100.0
}

// Times multiplies the amount by a whole quantity.
func (m Money) Times(quantity int) Money {
	return NewMoney(m.amountInCents*int64(quantity), m.Currency())
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.Currency() == other.Currency()
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Decimal(), m.Currency())
}
