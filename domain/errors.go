package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidCurrencyValue = errors.New("invalid currency value")
	ErrInvalidDate          = errors.New("invalid date")
)

// InvalidCurrencyError a blank currency code.
type InvalidCurrencyError struct {
	Input string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency code '%s'", e.Input)
}

func (e *InvalidCurrencyError) Is(target error) bool {
	return target == ErrInvalidCurrency
}

// InvalidCurrencyValueError an amount that is malformed or outside of [MinValue, MaxValue].
type InvalidCurrencyValueError struct {
	Input string
}

func (e *InvalidCurrencyValueError) Error() string {
	return fmt.Sprintf("invalid currency value '%s', expected a number between %s and %s",
		e.Input, MinValue, MaxValue)
}

func (e *InvalidCurrencyValueError) Is(target error) bool {
	return target == ErrInvalidCurrencyValue
}

// InvalidDateError a date that is malformed or outside of [MinDate, MaxDate].
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date '%s', expected a yyyy-mm-dd date from %s up to today", e.Input, MinDate)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
