package ddb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-companion/internal/clients/ddb"
	"github.com/KirkDiggler/combat-companion/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  ddb.Client
	ctx     context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	client, err := ddb.New(&ddb.Config{
		BaseURL:     s.server.URL + "/",
		HTTPTimeout: 2 * time.Second,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestNewValidation() {
	_, err := ddb.New(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = ddb.New(&ddb.Config{HTTPTimeout: -time.Second})
	s.Require().Error(err)
	s.Contains(err.Error(), "HTTPTimeout")
}

func (s *ClientTestSuite) TestConfigDefaults() {
	cfg := &ddb.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(ddb.DefaultBaseURL, cfg.BaseURL)
	s.Equal(30*time.Second, cfg.HTTPTimeout)
	s.Equal(ddb.DefaultUserAgent, cfg.UserAgent)
}

func (s *ClientTestSuite) TestGetCharacterSuccess() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/character/v5/character/151075644", r.URL.Path)
		s.Equal(ddb.DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"Vex"}}`))
	}

	body, err := s.client.GetCharacter(s.ctx, "151075644")
	s.Require().NoError(err)
	s.JSONEq(`{"data":{"name":"Vex"}}`, string(body))
}

func (s *ClientTestSuite) TestGetCharacterAcceptsProfileURL() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/character/v5/character/42", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}

	_, err := s.client.GetCharacter(s.ctx, "https://www.dndbeyond.com/characters/42/AbCd")
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TestGetCharacterNotFound() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	body, err := s.client.GetCharacter(s.ctx, "12345")
	s.Require().Error(err)
	s.Nil(body)
	s.True(errors.IsFetchError(err))
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "404")
	s.Contains(err.Error(), "Not Found")

	meta := errors.GetMeta(err)
	s.Equal("12345", meta[ddb.MetaCharacterID])
	s.Equal(http.StatusNotFound, meta[ddb.MetaHTTPStatus])
}

func (s *ClientTestSuite) TestGetCharacterStatusCodes() {
	testCases := []struct {
		name   string
		status int
		want   errors.Code
	}{
		{name: "private character", status: http.StatusForbidden, want: errors.CodePermissionDenied},
		{name: "server error", status: http.StatusInternalServerError, want: errors.CodeUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, want: errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}

			_, err := s.client.GetCharacter(s.ctx, "1")
			s.Require().Error(err)
			s.True(errors.IsFetchError(err))
			s.Equal(tc.want, errors.GetCode(err))
		})
	}
}

func (s *ClientTestSuite) TestGetCharacterNetworkError() {
	s.server.Close()

	_, err := s.client.GetCharacter(s.ctx, "1")
	s.Require().Error(err)
	s.True(errors.IsFetchError(err))
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGetCharacterInvalidID() {
	_, err := s.client.GetCharacter(s.ctx, "not-an-id")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.False(errors.IsFetchError(err))
}
