package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ministryofjustice/laa-data-claims-event-service/pkg/sentinel"
)

// =============================================================================
// HTTP Client Test Suite
// =============================================================================
// The status-class mapping decides whether a claim gets errored or retried,
// so it is pinned down here.

type HTTPClientSuite struct {
	suite.Suite
	client *HTTPClient
}

func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientSuite))
}

func (s *HTTPClientSuite) SetupTest() {
	s.client = NewHTTPClient(0, 0, 0)
}

func (s *HTTPClientSuite) serve(status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *HTTPClientSuite) TestStatusMapping() {
	ctx := context.Background()

	s.Run("2xx decodes the body", func() {
		srv := s.serve(http.StatusOK, `{"name":"ok"}`)
		var out struct {
			Name string `json:"name"`
		}
		s.NoError(s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, &out))
		s.Equal("ok", out.Name)
	})

	s.Run("2xx with empty body is tolerated", func() {
		srv := s.serve(http.StatusNoContent, "")
		var out map[string]any
		s.NoError(s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, &out))
	})

	s.Run("404 is not found", func() {
		srv := s.serve(http.StatusNotFound, "")
		err := s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
		s.ErrorIs(err, sentinel.ErrNotFound)
		s.False(sentinel.IsTransient(err))
	})

	s.Run("409 is a conflict", func() {
		srv := s.serve(http.StatusConflict, "")
		err := s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
		s.ErrorIs(err, sentinel.ErrConflict)
		s.False(sentinel.IsTransient(err))
	})

	s.Run("other 4xx is a bad request", func() {
		srv := s.serve(http.StatusUnprocessableEntity, "")
		err := s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
		s.ErrorIs(err, sentinel.ErrBadRequest)
		s.False(sentinel.IsTransient(err))
	})

	s.Run("5xx is transient", func() {
		srv := s.serve(http.StatusBadGateway, "")
		err := s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
		s.ErrorIs(err, sentinel.ErrUnavailable)
		s.True(sentinel.IsTransient(err))
	})

	s.Run("connection failure is transient", func() {
		srv := s.serve(http.StatusOK, "")
		srv.Close()
		err := s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
		s.ErrorIs(err, sentinel.ErrUnavailable)
		s.True(sentinel.IsTransient(err))
	})

	s.Run("malformed body on 2xx errors", func() {
		srv := s.serve(http.StatusOK, "{nope")
		var out map[string]any
		s.Error(s.client.DoJSON(ctx, http.MethodGet, srv.URL, nil, &out))
	})
}

func (s *HTTPClientSuite) TestRequestHeaders() {
	var gotContentType, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	s.T().Cleanup(srv.Close)

	s.NoError(s.client.DoJSON(context.Background(), http.MethodPost, srv.URL,
		map[string]string{"a": "b"}, nil))

	s.Equal("application/json", gotContentType)
	s.Equal("application/json", gotAccept)
}
