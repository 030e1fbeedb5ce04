package services

import "errors"

var (
	// ErrMalformedRequest means a required field was missing from the request.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrStoreUnavailable means the store could not serve the call. Nothing is retried.
	ErrStoreUnavailable = errors.New("store unavailable")
)
