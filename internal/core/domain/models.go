package domain

import (
	"errors"
	"fmt"
)

// DiscoveryRequest represents the core input to the system.
// Mode is expected to be "drug" or "vaccine" but any value, empty included,
// is passed through.
type DiscoveryRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
}

// DiscoveryResponse carries the completion text back untouched.
type DiscoveryResponse struct {
	Mode   string `json:"mode"`
	Report string `json:"report"`
}

// PromptPair is built per request and discarded after the call.
type PromptPair struct {
	System string
	User   string
}

// ErrorBody is the JSON shape of every error returned by the API.
type ErrorBody struct {
	Detail string `json:"detail"`
}

var ErrUpstream = errors.New("upstream call failed")

// UpstreamError wraps any failure of the completion service.
// Rate limits, auth failures, network errors and malformed responses
// all end up here without further classification.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUpstream, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}
