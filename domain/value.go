package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// valueEpsilon tolerance applied to the MinValue and MaxValue bounds.
// Below the spacing of float64 values around MaxValue, so it only widens the lower bound in practice.
const valueEpsilon = 1e-9

var (
	// MinValue the smallest amount accepted by the remote API.
	MinValue = CurrencyValue{v: 0.01}
	// MaxValue the largest amount accepted by the remote API.
	MaxValue = CurrencyValue{v: 1_000_000_000_000.0}
)

// separators are ignored when parsing amounts, so "1,000" and "1_000" are both 1000
var separators = strings.NewReplacer(",", "", "_", "")

// CurrencyValue a monetary amount.
//
// Values built with NewCurrencyValue or ParseCurrencyValue are normal floats within
// [MinValue, MaxValue]. Values decoded from server responses (rates) are taken as reported.
type CurrencyValue struct {
	v float64
}

// NewCurrencyValue validates v as an amount.
func NewCurrencyValue(v float64) (CurrencyValue, error) {
	if !isValidValue(v) {
		return CurrencyValue{}, &InvalidCurrencyValueError{Input: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return CurrencyValue{v: v}, nil
}

// MustCurrencyValue is like NewCurrencyValue but panics on invalid values.
// Intended for constants and tests.
func MustCurrencyValue(v float64) CurrencyValue {
	value, err := NewCurrencyValue(v)
	if err != nil {
		panic(err)
	}
	return value
}

// ParseCurrencyValue parses an amount, ignoring ',' and '_' thousands separators.
func ParseCurrencyValue(s string) (CurrencyValue, error) {
	f, err := strconv.ParseFloat(separators.Replace(strings.TrimSpace(s)), 64)
	if err != nil {
		return CurrencyValue{}, &InvalidCurrencyValueError{Input: s}
	}
	if !isValidValue(f) {
		return CurrencyValue{}, &InvalidCurrencyValueError{Input: s}
	}
	return CurrencyValue{v: f}, nil
}

// Validate checks c against [MinValue, MaxValue]. Only needed for values not
// built by NewCurrencyValue or ParseCurrencyValue, e.g. zero or decoded values.
func (c CurrencyValue) Validate() error {
	if !isValidValue(c.v) {
		return &InvalidCurrencyValueError{Input: strconv.FormatFloat(c.v, 'g', -1, 64)}
	}
	return nil
}

func isValidValue(v float64) bool {
	return isNormal(v) && v >= MinValue.v-valueEpsilon && v <= MaxValue.v+valueEpsilon
}

// isNormal reports whether v is neither zero, subnormal, infinite nor NaN.
func isNormal(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Abs(v) >= 0x1p-1022
}

// Float64 the raw value.
func (c CurrencyValue) Float64() float64 {
	return c.v
}

// IsZero reports whether c is the zero value, i.e. was never set.
func (c CurrencyValue) IsZero() bool {
	return c.v == 0
}

// String formats c with exactly 2 decimal places, rounding half away from zero
// on the shortest decimal representation of the value: 1.005 is "1.01".
func (c CurrencyValue) String() string {
	return decimal.NewFromFloat(c.v).StringFixed(2)
}

// MarshalJSON encodes c as a plain JSON number.
func (c CurrencyValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.v, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes a JSON number without range checks, as rates reported by
// the server can legitimately be smaller than MinValue.
func (c *CurrencyValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return &InvalidCurrencyValueError{Input: string(data)}
	}
	c.v = f
	return nil
}
