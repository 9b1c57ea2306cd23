// Package exa is a small client for the Exa answer API. A Client is bound
// to one API key for its lifetime and keeps no state between calls.
package exa

import (
	"errors"
	"fmt"
)

const (
	// DefaultBaseURL is the production Exa API endpoint.
	DefaultBaseURL = "https://api.exa.ai"

	answerPath = "/answer"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no credential is provided.
	ErrMissingAPIKey = errors.New("exa: no API key was provided")

	// ErrEmptyQuery is returned by Answer for a blank query string.
	ErrEmptyQuery = errors.New("exa: query must not be empty")

	// ErrUnauthorized is returned when the service rejects the credential.
	ErrUnauthorized = errors.New("exa: API key was rejected")
)

// APIError describes a non-2xx response from the service that is not an
// authentication failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exa: unexpected response status %d", e.StatusCode)
	}
	return fmt.Sprintf("exa: response status %d: %s", e.StatusCode, e.Message)
}
