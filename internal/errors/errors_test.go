package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "character ID must be numeric",
			expected: "INVALID_ARGUMENT: character ID must be numeric",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to read session")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to read session", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("session key not found").WithMeta("key", "character")
	wrapped := errors.Wrap(baseErr, "no character loaded")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("no character loaded", wrapped.Message)
	s.Assert().Equal("character", wrapped.Meta["key"])

	// wrapping must not alias the inner metadata
	wrapped.WithMeta("extra", true)
	s.Assert().NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("dial tcp: i/o timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("redis unavailable", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user friendly message").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))

	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(stdErr))

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestKinds() {
	fetchErr := errors.FetchFailed(nil, errors.CodeNotFound, "404 Not Found")
	genErr := errors.GenerationFailed(fmt.Errorf("quota exceeded"), "AI Error: quota exceeded")

	s.Assert().True(errors.IsFetchError(fetchErr))
	s.Assert().False(errors.IsGenerationError(fetchErr))
	s.Assert().True(errors.IsNotFound(fetchErr))

	s.Assert().True(errors.IsGenerationError(genErr))
	s.Assert().True(errors.IsUnavailable(genErr))

	// kind survives wrapping
	s.Assert().True(errors.IsFetchError(errors.Wrap(fetchErr, "load failed")))
	s.Assert().False(errors.IsFetchError(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodePermissionDenied, http.StatusForbidden},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusBadGateway},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestCodeFromHTTPStatus() {
	s.Assert().Equal(errors.CodeNotFound, errors.CodeFromHTTPStatus(http.StatusNotFound))
	s.Assert().Equal(errors.CodePermissionDenied, errors.CodeFromHTTPStatus(http.StatusForbidden))
	s.Assert().Equal(errors.CodeResourceExhausted, errors.CodeFromHTTPStatus(http.StatusTooManyRequests))
	s.Assert().Equal(errors.CodeUnavailable, errors.CodeFromHTTPStatus(http.StatusInternalServerError))
	s.Assert().Equal(errors.CodeOK, errors.CodeFromHTTPStatus(http.StatusOK))
}

func (s *ErrorsTestSuite) TestToHTTP() {
	status, body := errors.ToHTTP(errors.FetchFailed(nil, errors.CodeNotFound, "not found").
		WithMeta("http_status", 404))
	s.Assert().Equal(http.StatusNotFound, status)
	s.Assert().Equal(errors.KindFetch, body.Kind)
	s.Assert().Equal(404, body.Meta["http_status"])
	s.Assert().NotContains(body.Meta, errors.MetaKind)

	status, body = errors.ToHTTP(fmt.Errorf("secret internals"))
	s.Assert().Equal(http.StatusInternalServerError, status)
	s.Assert().Equal("internal error", body.Message)
}
