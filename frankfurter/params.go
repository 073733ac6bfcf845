package frankfurter

import (
	"go-frankfurter/domain"
	"net/url"
)

// QueryParam a single query parameter. Request query parameters are kept in a
// slice so their order is stable.
type QueryParam struct {
	Key   string
	Value string
}

// Request a validated query against one endpoint of the remote API.
type Request interface {
	// Validate checks the request before anything is sent.
	Validate() error
	// EndpointPath the path of the endpoint, relative to the base URL.
	EndpointPath() string
	// QueryParams the query parameters of the request, in order.
	QueryParams() []QueryParam
}

// Values converts params to url.Values.
func Values(params []QueryParam) url.Values {
	values := url.Values{}
	for _, p := range params {
		values.Add(p.Key, p.Value)
	}
	return values
}

// validateTargets checks that targets does not contain the effective base,
// EUR when no base is given, as the remote API would reject it too.
func validateTargets(base *domain.Currency, targets []domain.Currency) error {
	effective := effectiveBase(base)
	for _, t := range targets {
		if t == effective {
			return &TargetsIncludeBaseError{
				Base:    effective,
				Targets: append([]domain.Currency(nil), targets...),
			}
		}
	}
	return nil
}

// baseQueryParams the query parameters shared by the convert and period endpoints.
func baseQueryParams(amount *domain.CurrencyValue, base *domain.Currency, targets []domain.Currency) []QueryParam {
	var params []QueryParam
	if amount != nil {
		params = append(params, QueryParam{Key: "amount", Value: amount.String()})
	}
	if base != nil {
		params = append(params, QueryParam{Key: "base", Value: base.String()})
	}
	// an empty symbols parameter is rejected by the remote API
	if len(targets) > 0 {
		params = append(params, QueryParam{Key: "symbols", Value: domain.JoinCurrencies(targets)})
	}
	return params
}

// validateAmount checks an amount set without domain.NewCurrencyValue, e.g. the
// zero value or one decoded from JSON.
func validateAmount(amount *domain.CurrencyValue) error {
	if amount == nil {
		return nil
	}
	return amount.Validate()
}

// validateDates checks each set date against [domain.MinDate, domain.MaxDate(clock)].
func validateDates(clock domain.Clock, dates ...*domain.ValidDate) error {
	for _, d := range dates {
		if d == nil {
			continue
		}
		if err := d.Validate(clock); err != nil {
			return err
		}
	}
	return nil
}

// effectiveBase the base currency the server uses for base.
func effectiveBase(base *domain.Currency) domain.Currency {
	if base == nil {
		return domain.DefaultCurrency
	}
	return *base
}
