package cli

import (
	"bytes"
	"context"
	"errors"
	"go-frankfurter/config"
	"go-frankfurter/domain"
	"go-frankfurter/frankfurter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = domain.FixedClock(time.Date(2024, time.August, 20, 12, 0, 0, 0, time.UTC))

type mock struct {
	convertRequest frankfurter.ConvertRequest
	periodRequest  frankfurter.PeriodRequest
	convert        frankfurter.ConvertResponse
	period         frankfurter.PeriodResponse
	currencies     frankfurter.CurrenciesResponse
	err            error
}

func (m *mock) Convert(_ context.Context, request frankfurter.ConvertRequest) (frankfurter.ConvertResponse, error) {
	m.convertRequest = request
	return m.convert, m.err
}

func (m *mock) Period(_ context.Context, request frankfurter.PeriodRequest) (frankfurter.PeriodResponse, error) {
	m.periodRequest = request
	return m.period, m.err
}

func (m *mock) Currencies(_ context.Context, _ frankfurter.CurrenciesRequest) (frankfurter.CurrenciesResponse, error) {
	return m.currencies, m.err
}

func (m *mock) IsServerAvailable(_ context.Context) bool {
	return true
}

func newMock() *mock {
	d1 := domain.MustParseDate("2024-08-01")
	d2 := domain.MustParseDate("2024-08-02")
	return &mock{
		convert: frankfurter.ConvertResponse{
			Base:   domain.EUR,
			Amount: domain.MustCurrencyValue(1),
			Date:   d2,
			Rates: frankfurter.Rates{
				domain.USD: domain.MustCurrencyValue(1.0931),
				domain.AUD: domain.MustCurrencyValue(1.6617),
			},
		},
		period: frankfurter.PeriodResponse{
			Base:      domain.EUR,
			Amount:    domain.MustCurrencyValue(1),
			StartDate: d1,
			EndDate:   &d2,
			Rates: map[domain.ValidDate]frankfurter.Rates{
				d2: {domain.USD: domain.MustCurrencyValue(1.0931), domain.GBP: domain.MustCurrencyValue(0.8541)},
				d1: {domain.USD: domain.MustCurrencyValue(1.0807)},
			},
		},
		currencies: frankfurter.CurrenciesResponse{
			domain.USD: "United States Dollar",
			domain.EUR: "Euro",
		},
	}
}

// run runs args against m, returning the exit code, stdout and stderr.
func run(m *mock, color config.ColorMode, debug bool, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	app := NewApp(
		NewCommands(m, testClock, &stderr),
		NewOutput(&stdout, color),
		NewOutput(&stderr, color),
		debug,
	)
	code := app.Run(context.Background(), args)
	return code, stdout.String(), stderr.String()
}

func TestConvert_Table(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "convert")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ""+
		"Currency  Value\n"+
		"--------  -----\n"+
		"     AUD  1.66\n"+
		"     USD  1.09\n", stdout)
}

func TestConvert_Request(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		base    domain.Currency
		targets []domain.Currency
		amount  string
		date    string
	}{
		{"defaults", []string{"convert"}, domain.EUR, nil, "", ""},
		{"base", []string{"convert", "usd"}, domain.USD, nil, "", ""},
		{"targets", []string{"convert", "USD", "aud,gbp"}, domain.USD, []domain.Currency{domain.AUD, domain.GBP}, "", ""},
		{"flags first", []string{"convert", "-a", "1,000", "-d", "2024-08-01", "USD"}, domain.USD, nil, "1000.00", "2024-08-01"},
		{"flags last", []string{"convert", "USD", "GBP", "--amount", "10", "--date", "2024-08-01"}, domain.USD, []domain.Currency{domain.GBP}, "10.00", "2024-08-01"},
		{"flags between", []string{"convert", "USD", "-a", "2.5", "GBP"}, domain.USD, []domain.Currency{domain.GBP}, "2.50", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMock()

			code, _, stderr := run(m, config.ColorNever, false, tt.args...)

			require.Equal(t, ExitOK, code, stderr)
			request := m.convertRequest
			require.NotNil(t, request.Base)
			assert.Equal(t, tt.base, *request.Base)
			assert.Equal(t, tt.targets, request.Targets)
			if tt.amount == "" {
				assert.Nil(t, request.Amount)
			} else {
				require.NotNil(t, request.Amount)
				assert.Equal(t, tt.amount, request.Amount.String())
			}
			if tt.date == "" {
				assert.Nil(t, request.Date)
			} else {
				require.NotNil(t, request.Date)
				assert.Equal(t, tt.date, request.Date.String())
			}
		})
	}
}

func TestConvert_Raw(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "convert", "-r")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "AUD\t1.66\nUSD\t1.09\n", stdout)
}

func TestConvert_JSON(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "convert", "--json")

	assert.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"base":"EUR","amount":1,"date":"2024-08-02","rates":{"AUD":1.6617,"USD":1.0931}}`, stdout)
}

func TestConvert_Color(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorAlways, false, "convert")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "     \x1b[32mAUD\x1b[0m  \x1b[36m1.66\x1b[0m\n")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no subcommand", nil, "Usage:"},
		{"unknown subcommand", []string{"rates"}, "unrecognized subcommand"},
		{"json and raw", []string{"convert", "-j", "-r"}, "cannot be used together"},
		{"unknown flag", []string{"currencies", "--verbose"}, "flag provided but not defined"},
		{"bad amount", []string{"convert", "-a", "0.001"}, "0.001"},
		{"bad date", []string{"convert", "-d", "2024-08-21"}, "2024-08-21"},
		{"blank currency", []string{"convert", " "}, "invalid currency code"},
		{"flag value is --", []string{"convert", "-a", "--", "USD", "-j"}, "invalid currency value '--'"},
		{"too many arguments", []string{"convert", "EUR", "USD", "GBP"}, "unexpected argument"},
		{"missing start", []string{"period", "EUR"}, "required"},
		{"currencies argument", []string{"currencies", "EUR"}, "unexpected argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(newMock(), config.ColorNever, false, tt.args...)

			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestServiceError(t *testing.T) {
	m := newMock()
	m.err = &frankfurter.InvalidResponseError{URL: "http://localhost/latest", Status: 404, Body: "not found"}

	code, stdout, stderr := run(m, config.ColorNever, false, "convert")

	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: invalid response from URL http://localhost/latest: Status 404: not found\n", stderr)
}

func TestValidationError(t *testing.T) {
	m := &mock{}
	m.err = frankfurter.ConvertRequest{}.WithTargets(domain.EUR).Validate()

	code, _, stderr := run(m, config.ColorAlways, false, "convert", "EUR", "EUR")

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "\x1b[31mError: the target currencies 'EUR' include the base currency 'EUR'\x1b[0m\n", stderr)
}

func TestDebugError(t *testing.T) {
	m := newMock()
	m.err = errors.New("boom")

	code, _, stderr := run(m, config.ColorNever, true, "currencies")

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "boom\nError: boom\n", stderr)
}

func TestPeriod(t *testing.T) {
	m := newMock()

	code, stdout, stderr := run(m, config.ColorNever, false, "period", "EUR", "2024-08-01", "2024-08-02", "-t", "USD,GBP")

	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "2024-08-01..2024-08-02", m.periodRequest.EndpointPath())
	assert.Equal(t, []domain.Currency{domain.USD, domain.GBP}, m.periodRequest.Targets)
	assert.Equal(t, ""+
		"Date        Currency  Value\n"+
		"----------  --------  -----\n"+
		"2024-08-01  USD       1.08\n"+
		"2024-08-02  GBP       0.85\n"+
		"            USD       1.09\n", stdout)
}

func TestPeriod_Raw(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "period", "-r", "EUR", "2024-08-01")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "2024-08-01\n\tUSD\t1.08\n2024-08-02\n\tGBP\t0.85\n\tUSD\t1.09\n", stdout)
}

func TestCurrencies(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "currencies")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ""+
		"Code  Full name\n"+
		"----  --------------------\n"+
		"EUR   Euro\n"+
		"USD   United States Dollar\n", stdout)
}

func TestCurrencies_Raw(t *testing.T) {
	code, stdout, _ := run(newMock(), config.ColorNever, false, "currencies", "--raw")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "EUR\tEuro\nUSD\tUnited States Dollar\n", stdout)
}

func TestCommandUsage(t *testing.T) {
	code, stdout, stderr := run(newMock(), config.ColorNever, false, "convert", "-h")

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: frankfurter convert [BASE] [TARGETS] [flags]")
	assert.Contains(t, stderr, "Currencies: AUD,BGN,BRL,")
}
