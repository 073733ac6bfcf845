package frankfurter

import (
	"errors"
	"fmt"
	"go-frankfurter/domain"
)

var (
	// ErrInvalidRequest matches every request validation error.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidResponse matches a non-success HTTP status from the server.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrTransport matches network and connection failures.
	ErrTransport = errors.New("transport failure")
	// ErrDecode matches response bodies not matching the expected JSON shape.
	ErrDecode = errors.New("decode failure")
)

// TargetsIncludeBaseError the target currencies include the (effective) base currency.
type TargetsIncludeBaseError struct {
	Base    domain.Currency   `json:"base"`
	Targets []domain.Currency `json:"targets"`
}

func (e *TargetsIncludeBaseError) Error() string {
	return fmt.Sprintf("the target currencies '%s' include the base currency '%s'",
		domain.JoinCurrencies(e.Targets), e.Base)
}

func (e *TargetsIncludeBaseError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// EndDateBeforeStartError the end of a period is before its start.
type EndDateBeforeStartError struct {
	Start domain.ValidDate `json:"start"`
	End   domain.ValidDate `json:"end"`
}

func (e *EndDateBeforeStartError) Error() string {
	return fmt.Sprintf("provided end date (%s) is before the start date (%s)", e.End, e.Start)
}

func (e *EndDateBeforeStartError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// WeekendDatesError a period covering only a weekend, for which no rates are published.
type WeekendDatesError struct {
	Start domain.ValidDate `json:"start"`
	End   domain.ValidDate `json:"end"`
}

func (e *WeekendDatesError) Error() string {
	return fmt.Sprintf("the period %s (%s) to %s (%s) only covers a weekend, which has no exchange rates",
		e.Start, e.Start.Weekday(), e.End, e.End.Weekday())
}

func (e *WeekendDatesError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// InvalidResponseError the server answered with a non-success status.
type InvalidResponseError struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response from URL %s: Status %d: %s", e.URL, e.Status, e.Body)
}

func (e *InvalidResponseError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// TransportError the request could not be sent or its response not read.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending request for url (%s): %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError the response body did not match the expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response body from url (%s): %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
