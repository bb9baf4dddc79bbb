package arcs

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$12.34".
func (m Money) String() string {
	c := m.currency()
	dec := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Decimal returns the amount in major units, rounded to the currency fraction.
func (m Money) Decimal() decimal.Decimal {
	return m.value.Round(int32(m.currency().Fraction))
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarginPercent computes (list - cost) / list in percent.
// The zero-list cases follow the part dialog of the desktop app: 0/0 is 0%,
// a non-zero cost over a zero list price has no defined margin (ok is false).
func MarginPercent(cost, list Money) (pct decimal.Decimal, ok bool) {
	if list.IsZero() {
		if cost.IsZero() {
			return decimal.Zero, true
		}
		return decimal.Zero, false
	}
	return list.value.Sub(cost.value).Div(list.value).Mul(decimal.NewFromInt(100)), true
}
