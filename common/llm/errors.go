package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// ErrorKind is a coarse classification of a failed completion call.
type ErrorKind string

const (
	KindAuth              ErrorKind = "auth"
	KindRateLimited       ErrorKind = "rate_limited"
	KindBadRequest        ErrorKind = "bad_request"
	KindUpstreamServer    ErrorKind = "upstream_server"
	KindTimeout           ErrorKind = "timeout"
	KindCanceled          ErrorKind = "canceled"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindNetwork           ErrorKind = "network"
)

// Classify maps a Complete error to an ErrorKind for reporting.
// A 2xx body that does not decode is KindMalformedResponse; errors without an
// API response (dial failures, resets) are KindNetwork.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrNoChoices), isDecodeError(err):
		return KindMalformedResponse
	}

	if status, ok := statusCode(err); ok {
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return KindAuth
		case status == http.StatusTooManyRequests:
			return KindRateLimited
		case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
			return KindTimeout
		case status >= 500:
			return KindUpstreamServer
		default:
			return KindBadRequest
		}
	}

	return KindNetwork
}

// statusCode returns the HTTP status of the upstream API error wrapped in err, if any.
func statusCode(err error) (int, bool) {
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode, true
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode, true
	}

	return 0, false
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
