package frankfurter

import (
	"go-frankfurter/domain"
)

// ConvertRequest requests exchange rates for a single date, the latest by default.
//
// The With methods return an updated copy and leave the receiver untouched.
type ConvertRequest struct {
	// Base currency to convert FROM, EUR when nil.
	Base *domain.Currency `json:"base,omitempty"`
	// Targets currencies to convert TO, all when empty.
	Targets []domain.Currency `json:"targets,omitempty"`
	// Amount of the base currency, 1 when nil.
	Amount *domain.CurrencyValue `json:"amount,omitempty"`
	// Date of the rates, the latest when nil.
	Date *domain.ValidDate `json:"date,omitempty"`
}

func (r ConvertRequest) WithBase(base domain.Currency) ConvertRequest {
	r.Base = &base
	return r
}

func (r ConvertRequest) WithTargets(targets ...domain.Currency) ConvertRequest {
	r.Targets = append([]domain.Currency(nil), targets...)
	return r
}

func (r ConvertRequest) WithAmount(amount domain.CurrencyValue) ConvertRequest {
	r.Amount = &amount
	return r
}

func (r ConvertRequest) WithDate(date domain.ValidDate) ConvertRequest {
	r.Date = &date
	return r
}

// Validate checks the targets against the base, then the amount and date bounds.
func (r ConvertRequest) Validate() error {
	return r.validate(domain.SystemClock)
}

func (r ConvertRequest) validate(clock domain.Clock) error {
	if err := validateTargets(r.Base, r.Targets); err != nil {
		return err
	}
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	return validateDates(clock, r.Date)
}

// EndpointPath is "latest", or the requested date.
func (r ConvertRequest) EndpointPath() string {
	if r.Date == nil {
		return "latest"
	}
	return r.Date.String()
}

func (r ConvertRequest) QueryParams() []QueryParam {
	return baseQueryParams(r.Amount, r.Base, r.Targets)
}

// ConvertResponse exchange rates for a single date.
type ConvertResponse struct {
	// Base currency exchanged FROM.
	Base domain.Currency `json:"base"`
	// Amount of the base currency exchanged.
	Amount domain.CurrencyValue `json:"amount"`
	// Date of the rates used.
	Date domain.ValidDate `json:"date"`
	// Rates the exchanged amount per currency.
	Rates Rates `json:"rates"`
}

// Rates exchanged values by currency.
type Rates map[domain.Currency]domain.CurrencyValue

// Currencies the currencies of r in code order.
func (r Rates) Currencies() []domain.Currency {
	currencies := make([]domain.Currency, 0, len(r))
	for c := range r {
		currencies = append(currencies, c)
	}
	domain.SortCurrencies(currencies)
	return currencies
}
