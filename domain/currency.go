package domain

import (
	"sort"
	"strings"
)

// Currency an ISO 4217 currency code.
//
// Codes outside of KnownCurrencies are still valid currencies: the remote API
// reports historical codes (e.g. ESP, the Spanish peseta) for older dates.
type Currency string

const (
	AUD Currency = "AUD"
	BGN Currency = "BGN"
	BRL Currency = "BRL"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	CZK Currency = "CZK"
	DKK Currency = "DKK"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	HKD Currency = "HKD"
	HUF Currency = "HUF"
	IDR Currency = "IDR"
	ILS Currency = "ILS"
	INR Currency = "INR"
	ISK Currency = "ISK"
	JPY Currency = "JPY"
	KRW Currency = "KRW"
	MXN Currency = "MXN"
	MYR Currency = "MYR"
	NOK Currency = "NOK"
	NZD Currency = "NZD"
	PHP Currency = "PHP"
	PLN Currency = "PLN"
	RON Currency = "RON"
	SEK Currency = "SEK"
	SGD Currency = "SGD"
	THB Currency = "THB"
	TRY Currency = "TRY"
	USD Currency = "USD"
	ZAR Currency = "ZAR"
)

// DefaultCurrency is the base the remote API assumes when none is given.
const DefaultCurrency = EUR

// KnownCurrencies the currencies currently published, in code order.
var KnownCurrencies = []Currency{
	AUD, BGN, BRL, CAD, CHF, CNY, CZK, DKK, EUR, GBP, HKD, HUF, IDR, ILS, INR, ISK,
	JPY, KRW, MXN, MYR, NOK, NZD, PHP, PLN, RON, SEK, SGD, THB, TRY, USD, ZAR,
}

var knownCurrencies = func() map[Currency]struct{} {
	m := make(map[Currency]struct{}, len(KnownCurrencies))
	for _, c := range KnownCurrencies {
		m[c] = struct{}{}
	}
	return m
}()

// ParseCurrency parses a currency code case-insensitively.
// Any non-blank code is accepted; unknown codes are kept as they are (upper cased).
func ParseCurrency(code string) (Currency, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return "", &InvalidCurrencyError{Input: code}
	}
	return Currency(trimmed), nil
}

// ParseCurrencies parses a comma separated list of currency codes, e.g. "usd,aud".
// Empty elements are skipped.
func ParseCurrencies(list string) ([]Currency, error) {
	var currencies []Currency
	for _, code := range strings.Split(list, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		c, err := ParseCurrency(code)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, nil
}

// IsKnown reports whether c is one of KnownCurrencies, i.e. not a historical code.
func (c Currency) IsKnown() bool {
	_, ok := knownCurrencies[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}

// JoinCurrencies joins codes with a comma, keeping their order.
func JoinCurrencies(currencies []Currency) string {
	codes := make([]string, len(currencies))
	for i, c := range currencies {
		codes[i] = c.String()
	}
	return strings.Join(codes, ",")
}

// SortCurrencies sorts currencies by code in place.
func SortCurrencies(currencies []Currency) {
	sort.Slice(currencies, func(i, j int) bool { return currencies[i] < currencies[j] })
}

// UnmarshalText parses c from its code, case-insensitively.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
