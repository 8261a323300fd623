package feed

import "errors"

// Sentinel kinds for feed errors.
var (
	// ErrMalformedDocument marks bytes that do not decode as a result list.
	ErrMalformedDocument = errors.New("malformed result document")
)
