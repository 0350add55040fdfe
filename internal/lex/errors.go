package lex

import "errors"

// Errors returned by the lex package. Callers match them with errors.Is;
// wrapped detail is informational only.
var (
	// ErrInvalidConfiguration indicates a missing or malformed bot
	// configuration, detected at build time.
	ErrInvalidConfiguration = errors.New("invalid lex configuration")

	// ErrInvalidArgument indicates a nil or unusable argument where a
	// valid one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRemoteCallFailed indicates the Lex runtime call did not succeed,
	// for any reason. Remote error subtypes are not distinguished.
	ErrRemoteCallFailed = errors.New("lex runtime call failed")

	// ErrDecodeFailure indicates a Lex result that could not be decoded
	// into the local response format.
	ErrDecodeFailure = errors.New("failed to decode lex result")
)
