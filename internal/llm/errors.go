// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "fmt"

// APIError reports a failed chat request: transport failure, rejected
// credentials, exhausted quota or an unusable response.
type APIError struct {
	// Provider names the backend ("openai", "anthropic").
	Provider string
	// StatusCode is the HTTP status returned by the API, or 0 when no
	// response was received.
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API returned %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s API: %v", e.Provider, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
