package frankfurter

import (
	"context"
	"encoding/json"
	"go-frankfurter/http"
	"strings"

	"github.com/pkg/errors"
)

// DefaultURL the public hosted Frankfurter instance.
const DefaultURL = "https://api.frankfurter.app"

// Service wraps the Frankfurter REST API
type Service interface {
	// Convert loads the exchange rates of a single date.
	Convert(ctx context.Context, request ConvertRequest) (ConvertResponse, error)
	// Period loads the exchange rates of every working day of a period.
	Period(ctx context.Context, request PeriodRequest) (PeriodResponse, error)
	// Currencies loads the supported currencies and their full names.
	Currencies(ctx context.Context, request CurrenciesRequest) (CurrenciesResponse, error)
	// IsServerAvailable reports whether the server answers its base URL successfully.
	IsServerAvailable(ctx context.Context) bool
}

// service Frankfurter API
type service struct {
	// url base API url, without a trailing slash
	url string

	// transport for HTTP requests
	transport http.Transport
}

// NewService constructs a Service for the API at baseURL, DefaultURL when empty.
func NewService(baseURL string, transport http.Transport) Service {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &service{
		url:       strings.TrimRight(baseURL, "/"),
		transport: transport,
	}
}

func (s *service) Convert(ctx context.Context, request ConvertRequest) (ConvertResponse, error) {
	var response ConvertResponse
	err := s.execute(ctx, request, &response)
	return response, err
}

func (s *service) Period(ctx context.Context, request PeriodRequest) (PeriodResponse, error) {
	var response PeriodResponse
	err := s.execute(ctx, request, &response)
	return response, err
}

func (s *service) Currencies(ctx context.Context, request CurrenciesRequest) (CurrenciesResponse, error) {
	var response CurrenciesResponse
	err := s.execute(ctx, request, &response)
	return response, err
}

func (s *service) IsServerAvailable(ctx context.Context) bool {
	response, err := s.transport.Get(ctx, s.url, nil)
	if err != nil {
		return false
	}
	return response.IsSuccess()
}

// execute validates request, sends it and decodes the JSON body into response.
// No network call is made for an invalid request.
func (s *service) execute(ctx context.Context, request Request, response interface{}) error {
	if err := request.Validate(); err != nil {
		return errors.WithStack(err)
	}

	url := s.endpointURL(request.EndpointPath())
	query := Values(request.QueryParams())
	httpResponse, err := s.transport.Get(ctx, url, query)
	if len(query) > 0 {
		url += "?" + query.Encode()
	}
	if err != nil {
		return errors.WithStack(&TransportError{URL: url, Err: err})
	}
	if !httpResponse.IsSuccess() {
		return errors.WithStack(&InvalidResponseError{
			URL:    url,
			Status: httpResponse.StatusCode,
			Body:   string(httpResponse.Body),
		})
	}

	if err := json.Unmarshal(httpResponse.Body, response); err != nil {
		return errors.WithStack(&DecodeError{URL: url, Err: err})
	}
	return nil
}

// endpointURL joins the base url and path with exactly one '/'.
func (s *service) endpointURL(path string) string {
	return s.url + "/" + strings.TrimLeft(path, "/")
}
