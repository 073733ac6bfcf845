package frankfurter

import (
	"context"
	"errors"
	"go-frankfurter/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics of the calls made to the remote API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the client metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frankfurter",
				Name:      "requests_total",
				Help:      "Total number of requests to the Frankfurter API",
			},
			[]string{"method", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "frankfurter",
				Name:      "request_duration_seconds",
				Help:      "Frankfurter API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// instrumentingService decorates a frankfurter.Service with metrics
type instrumentingService struct {
	next    Service
	metrics *Metrics
}

// NewInstrumentingService return a new instrumenting service
func NewInstrumentingService(metrics *Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: metrics,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.metrics.RequestsTotal.WithLabelValues(method, outcome(err)).Inc()
	s.metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Convert(ctx context.Context, request ConvertRequest) (response ConvertResponse, err error) {
	defer func(begin time.Time) { s.observe("convert", begin, err) }(time.Now())
	return s.next.Convert(ctx, request)
}

func (s *instrumentingService) Period(ctx context.Context, request PeriodRequest) (response PeriodResponse, err error) {
	defer func(begin time.Time) { s.observe("period", begin, err) }(time.Now())
	return s.next.Period(ctx, request)
}

func (s *instrumentingService) Currencies(ctx context.Context, request CurrenciesRequest) (response CurrenciesResponse, err error) {
	defer func(begin time.Time) { s.observe("currencies", begin, err) }(time.Now())
	return s.next.Currencies(ctx, request)
}

func (s *instrumentingService) IsServerAvailable(ctx context.Context) (available bool) {
	defer func(begin time.Time) {
		o := "available"
		if !available {
			o = "unavailable"
		}
		s.metrics.RequestsTotal.WithLabelValues("is_server_available", o).Inc()
		s.metrics.RequestDuration.WithLabelValues("is_server_available").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.IsServerAvailable(ctx)
}

// outcome classifies err for the outcome label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidCurrencyValue),
		errors.Is(err, domain.ErrInvalidDate):
		return "invalid_request"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	default:
		return "transport_error"
	}
}
