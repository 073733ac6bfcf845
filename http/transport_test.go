package http

import (
	"context"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestTransport_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/latest", req.URL.Path)
		assert.Equal(t, "amount=10.00&base=USD&symbols=AUD%2CZAR", req.URL.RawQuery)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		_, _ = rw.Write([]byte(`{"base":"USD"}`))
	}))
	defer server.Close()

	transport := NewTransport(time.Second, log.NewNopLogger())

	query := url.Values{}
	query.Set("amount", "10.00")
	query.Set("base", "USD")
	query.Set("symbols", "AUD,ZAR")
	response, err := transport.Get(context.Background(), server.URL+"/latest", query)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.True(t, response.IsSuccess())
	assert.Equal(t, `{"base":"USD"}`, string(response.Body))
}

func TestTransport_GetKeepsExistingQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "base=USD&key=abc", req.URL.RawQuery)
	}))
	defer server.Close()

	transport := NewTransportWithClient(server.Client())

	_, err := transport.Get(context.Background(), server.URL+"/latest?key=abc", url.Values{"base": {"USD"}})
	require.NoError(t, err)
}

func TestTransport_GetErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	transport := NewTransport(time.Second, log.NewNopLogger())

	response, err := transport.Get(context.Background(), server.URL+"/invalid", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.False(t, response.IsSuccess())
	assert.Equal(t, `{"message":"not found"}`, string(response.Body))
}

func TestTransport_GetTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	transport := NewTransport(1*time.Millisecond, log.NewNopLogger())

	_, err := transport.Get(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Client.Timeout")) // fragile :-(
}

func TestTransport_GetCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTransport(time.Second, log.NewNopLogger()).Get(ctx, server.URL, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransport_GetConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewTransport(time.Second, log.NewNopLogger()).Get(context.Background(), addr, nil)

	assert.Error(t, err)
}
