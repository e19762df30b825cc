package decimal

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in euros with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// ParseMoney reads a user-typed amount. Whitespace is ignored and commas are
// decimal separators. Anything unparsable, negative, infinite or NaN collapses
// to zero. Text trailing a valid number ("89,90€") is ignored.
// Exponents are not accepted: "1e2" reads as 1.
func ParseMoney(value string) Money {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	s = strings.ReplaceAll(s, ",", ".")
	s = numericPrefix(s)
	if s == "" {
		return Zero()
	}
	s = strings.TrimPrefix(s, "+")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Zero()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero()
	}
	m := Money{d}
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// numericPrefix keeps the longest leading [sign]digits[.digits] run.
func numericPrefix(s string) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && s[frac] >= '0' && s[frac] <= '9' {
			frac++
		}
		if frac > end+1 || digits > 0 {
			digits += frac - end - 1
			end = frac
		}
	}
	if digits == 0 {
		return ""
	}
	return strings.TrimSuffix(s[:end], ".")
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Times multiplies by a whole number of periods
func (m Money) Times(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

// Prorate returns the share of the amount covering part out of whole days.
// The multiplication happens first so exact fractions stay exact.
func (m Money) Prorate(part, whole int) Money {
	if whole == 0 {
		return Zero()
	}
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(part))).Div(decimal.NewFromInt(int64(whole)))}
}

// Sum adds up a list of amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount the French way: "1 234,56 €"
func (m Money) Format() string {
	return FormatEuro(m.Decimal)
}

// FormatEuro renders a decimal amount as "1 234,56 €"
func FormatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "," + frac + " €"
}
