// Package money represents currency amounts as integer cents so that
// subtotal, total and ledger arithmetic never accumulates float rounding
// drift. Values marshal to and from plain JSON decimal numbers (12.99).
package money

import (
	"fmt"
	"strconv"
	"strings"
)

type Cents int64

// Mul returns the line subtotal for qty units.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

func (c Cents) IsNegative() bool {
	return c < 0
}

// String formats the amount as a decimal with two fraction digits.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*c = 0
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse converts a decimal string such as "12.99" or "-3.5" to cents.
// Fraction digits beyond the second are rounded half away from zero.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	// Exponent forms come out of some JSON encoders; take the slow path.
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		return FromFloat(f), nil
	}

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	// Unsigned parse: the sign was consumed above, a second one is garbage.
	whole, err := strconv.ParseUint(intPart, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	cents := int64(whole) * 100
	if fracPart != "" {
		padded := fracPart + "00"
		frac, err := strconv.ParseInt(padded[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(fracPart) > 2 && padded[2] >= '5' {
			frac++
		}
		cents += frac
	}

	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

// FromFloat rounds a float amount to the nearest cent.
func FromFloat(f float64) Cents {
	if f < 0 {
		return Cents(f*100 - 0.5)
	}
	return Cents(f*100 + 0.5)
}

// Sum adds a series of amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}
