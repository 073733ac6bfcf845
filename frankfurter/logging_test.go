package frankfurter

import (
	"bytes"
	"context"
	"errors"
	"go-frankfurter/domain"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mock struct {
	convert    ConvertResponse
	period     PeriodResponse
	currencies CurrenciesResponse
	available  bool
	err        error
}

func (m *mock) Convert(_ context.Context, _ ConvertRequest) (ConvertResponse, error) {
	return m.convert, m.err
}

func (m *mock) Period(_ context.Context, _ PeriodRequest) (PeriodResponse, error) {
	return m.period, m.err
}

func (m *mock) Currencies(_ context.Context, _ CurrenciesRequest) (CurrenciesResponse, error) {
	return m.currencies, m.err
}

func (m *mock) IsServerAvailable(_ context.Context) bool {
	return m.available
}

func TestLoggingService_Convert(t *testing.T) {
	var buf bytes.Buffer
	next := &mock{convert: ConvertResponse{Rates: Rates{domain.USD: domain.MustCurrencyValue(1.1)}}}
	s := NewLoggingService(log.NewLogfmtLogger(&buf), next)

	response, err := s.Convert(context.Background(), ConvertRequest{}.WithTargets(domain.USD))

	require.NoError(t, err)
	assert.Equal(t, next.convert, response)
	line := buf.String()
	assert.Contains(t, line, "level=debug")
	assert.Contains(t, line, "method=convert")
	assert.Contains(t, line, "path=latest")
	assert.Contains(t, line, "base=EUR")
	assert.Contains(t, line, "rates=1")
	assert.Contains(t, line, "request_id=")
	assert.Contains(t, line, "err=null")
}

func TestLoggingService_Error(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), &mock{err: errors.New("boom")})

	_, err := s.Period(context.Background(), NewPeriodRequest(domain.MinDate))

	assert.EqualError(t, err, "boom")
	line := buf.String()
	assert.Contains(t, line, "level=error")
	assert.Contains(t, line, "method=period")
	assert.Contains(t, line, "path=1999-01-04..")
	assert.Contains(t, line, "err=boom")
}

func TestLoggingService_RequestIDs(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), &mock{available: true})

	assert.True(t, s.IsServerAvailable(context.Background()))
	_, _ = s.Currencies(context.Background(), CurrenciesRequest{})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "available=true")
	assert.NotEqual(t, requestID(lines[0]), requestID(lines[1]))
}

func requestID(line string) string {
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, "request_id=") {
			return field
		}
	}
	return ""
}
