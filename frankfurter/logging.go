package frankfurter

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// loggingService decorates a frankfurter.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

// outcome the leveled logger for the outcome of a call
func (s *loggingService) outcome(err error) log.Logger {
	if err != nil {
		return level.Error(s.logger)
	}
	return level.Debug(s.logger)
}

func (s *loggingService) Convert(ctx context.Context, request ConvertRequest) (response ConvertResponse, err error) {
	defer func(begin time.Time) {
		s.outcome(err).Log(
			"method", "convert",
			"request_id", uuid.NewString(),
			"path", request.EndpointPath(),
			"base", effectiveBase(request.Base),
			"targets", len(request.Targets),
			"rates", len(response.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, request)
}

func (s *loggingService) Period(ctx context.Context, request PeriodRequest) (response PeriodResponse, err error) {
	defer func(begin time.Time) {
		s.outcome(err).Log(
			"method", "period",
			"request_id", uuid.NewString(),
			"path", request.EndpointPath(),
			"base", effectiveBase(request.Base),
			"targets", len(request.Targets),
			"dates", len(response.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Period(ctx, request)
}

func (s *loggingService) Currencies(ctx context.Context, request CurrenciesRequest) (response CurrenciesResponse, err error) {
	defer func(begin time.Time) {
		s.outcome(err).Log(
			"method", "currencies",
			"request_id", uuid.NewString(),
			"currencies", len(response),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx, request)
}

func (s *loggingService) IsServerAvailable(ctx context.Context) (available bool) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "is_server_available",
			"request_id", uuid.NewString(),
			"available", available,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.IsServerAvailable(ctx)
}
