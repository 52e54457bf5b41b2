package domain

import (
	"context"
	"errors"
)

// FetchErrorKind classifies a failed neighbor fetch.
type FetchErrorKind int

const (
	// FetchNetwork covers relay and transport failures.
	FetchNetwork FetchErrorKind = iota
	// FetchTimeout means the fetch ran out of time.
	FetchTimeout
	// FetchMalformed means the fetched data could not be decoded.
	FetchMalformed
)

// String returns the kind as used in logs and metrics labels.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchTimeout:
		return "timeout"
	case FetchMalformed:
		return "malformed"
	default:
		return "network"
	}
}

// ClassifyFetchError maps an error returned by a neighbor fetch to its kind.
// Errors that match none of the fetch sentinels count as network failures.
func ClassifyFetchError(err error) FetchErrorKind {
	switch {
	case errors.Is(err, ErrFetchTimeout), errors.Is(err, context.DeadlineExceeded):
		return FetchTimeout
	case errors.Is(err, ErrFetchMalformed):
		return FetchMalformed
	default:
		return FetchNetwork
	}
}

// FetchSentinel returns the sentinel error matching kind.
func FetchSentinel(kind FetchErrorKind) error {
	switch kind {
	case FetchTimeout:
		return ErrFetchTimeout
	case FetchMalformed:
		return ErrFetchMalformed
	default:
		return ErrFetchNetwork
	}
}
