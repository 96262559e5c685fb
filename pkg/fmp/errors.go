package fmp

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey is returned when a client is built without an API key.
	ErrMissingAPIKey = errors.New("fmp: API key is not set")

	// ErrNoData is returned when a single-record endpoint answers with an empty list.
	ErrNoData = errors.New("fmp: no data")

	// ErrShapeMismatch is returned when a method is used against an endpoint
	// whose response cannot be read that way.
	ErrShapeMismatch = errors.New("fmp: endpoint response shape does not support this call")
)

// APIRequestError is returned for any non-200 response.
type APIRequestError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("APIRequestError: [Status Code: %d] %s", e.StatusCode, e.Message())
}

// Message returns the human readable explanation of the status code.
func (e *APIRequestError) Message() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "Invalid API KEY. Please retry or visit our documentation to create one " +
			"FREE https://site.financialmodelingprep.com/developer/docs"
	case http.StatusForbidden:
		return "This endpoint is only for users with Professional or Enterprise plan " +
			"please visit our subscription page to upgrade your plan " +
			"at https://financialmodelingprep.com/developer/docs/pricing"
	default:
		return "Unable to fetch the request"
	}
}
