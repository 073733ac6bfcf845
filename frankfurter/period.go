package frankfurter

import (
	"go-frankfurter/domain"
	"sort"
)

// PeriodRequest requests exchange rates for every working day of a period.
//
// The With methods return an updated copy and leave the receiver untouched.
type PeriodRequest struct {
	// Base currency to convert FROM, EUR when nil.
	Base *domain.Currency `json:"base,omitempty"`
	// Targets currencies to convert TO, all when empty.
	Targets []domain.Currency `json:"targets,omitempty"`
	// Amount of the base currency, 1 when nil.
	Amount *domain.CurrencyValue `json:"amount,omitempty"`
	// StartDate first date of the period. The zero value means domain.MinDate.
	StartDate domain.ValidDate `json:"start_date"`
	// EndDate last date of the period, open ended (up to the latest rates) when nil.
	EndDate *domain.ValidDate `json:"end_date,omitempty"`
}

// NewPeriodRequest a request for the period starting at start, open ended.
func NewPeriodRequest(start domain.ValidDate) PeriodRequest {
	return PeriodRequest{StartDate: start}
}

func (r PeriodRequest) WithBase(base domain.Currency) PeriodRequest {
	r.Base = &base
	return r
}

func (r PeriodRequest) WithTargets(targets ...domain.Currency) PeriodRequest {
	r.Targets = append([]domain.Currency(nil), targets...)
	return r
}

func (r PeriodRequest) WithAmount(amount domain.CurrencyValue) PeriodRequest {
	r.Amount = &amount
	return r
}

func (r PeriodRequest) WithStartDate(start domain.ValidDate) PeriodRequest {
	r.StartDate = start
	return r
}

func (r PeriodRequest) WithEndDate(end domain.ValidDate) PeriodRequest {
	r.EndDate = &end
	return r
}

// Start the effective start date.
func (r PeriodRequest) Start() domain.ValidDate {
	if r.StartDate.IsZero() {
		return domain.MinDate
	}
	return r.StartDate
}

// Validate checks the targets against the base, the amount and date bounds,
// then the ordering of the dates, then rejects periods only covering a weekend:
// Saturday to Saturday, Sunday to Sunday, and Saturday to the following Sunday.
func (r PeriodRequest) Validate() error {
	return r.validate(domain.SystemClock)
}

func (r PeriodRequest) validate(clock domain.Clock) error {
	if err := validateTargets(r.Base, r.Targets); err != nil {
		return err
	}
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	start := r.Start()
	if err := validateDates(clock, &start, r.EndDate); err != nil {
		return err
	}
	if r.EndDate == nil {
		return nil
	}

	end := *r.EndDate
	if end.Before(start) {
		return &EndDateBeforeStartError{Start: start, End: end}
	}
	if start.IsWeekend() && end.IsWeekend() && start.Days(end) <= 1 {
		return &WeekendDatesError{Start: start, End: end}
	}
	return nil
}

// EndpointPath is "start.." or "start..end".
func (r PeriodRequest) EndpointPath() string {
	path := r.Start().String() + ".."
	if r.EndDate != nil {
		path += r.EndDate.String()
	}
	return path
}

func (r PeriodRequest) QueryParams() []QueryParam {
	return baseQueryParams(r.Amount, r.Base, r.Targets)
}

// PeriodResponse exchange rates for every working day of a period.
type PeriodResponse struct {
	// Base currency exchanged FROM.
	Base domain.Currency `json:"base"`
	// Amount of the base currency exchanged.
	Amount domain.CurrencyValue `json:"amount"`
	// StartDate first date with rates, which may be after the requested start.
	StartDate domain.ValidDate `json:"start_date"`
	// EndDate last date with rates, absent for open ended periods on some servers.
	EndDate *domain.ValidDate `json:"end_date,omitempty"`
	// Rates the exchanged amounts per date.
	Rates map[domain.ValidDate]Rates `json:"rates"`
}

// Dates the dates of r in chronological order.
func (r PeriodResponse) Dates() []domain.ValidDate {
	dates := make([]domain.ValidDate, 0, len(r.Rates))
	for d := range r.Rates {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
