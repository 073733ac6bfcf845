package frankfurter

import (
	"go-frankfurter/domain"
)

// CurrenciesRequest requests the supported currency codes and their full names.
type CurrenciesRequest struct{}

func (CurrenciesRequest) Validate() error {
	return nil
}

func (CurrenciesRequest) EndpointPath() string {
	return "currencies"
}

func (CurrenciesRequest) QueryParams() []QueryParam {
	return nil
}

// CurrenciesResponse full names by currency code.
type CurrenciesResponse map[domain.Currency]string

// Codes the currencies of r in code order.
func (r CurrenciesResponse) Codes() []domain.Currency {
	codes := make([]domain.Currency, 0, len(r))
	for c := range r {
		codes = append(codes, c)
	}
	domain.SortCurrencies(codes)
	return codes
}
