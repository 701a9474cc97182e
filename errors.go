package httpencoding

import "errors"

// Errors reported by the decoding functions in this package.
// Every decode failure wraps exactly one of these, so callers can
// dispatch on the kind with errors.Is.
var (
	// ErrInvalidToken means a content-coding name is not a valid
	// RFC 7230 token.
	ErrInvalidToken = errors.New("httpencoding: invalid token")

	// ErrInvalidQuality means a qvalue is malformed or outside [0, 1].
	ErrInvalidQuality = errors.New("httpencoding: invalid quality value")

	// ErrMalformedHeader means a header value violates the list or
	// parameter grammar in some other way.
	ErrMalformedHeader = errors.New("httpencoding: malformed header")

	// ErrEmptyList means an Accept-Encoding names no codings at all.
	ErrEmptyList = errors.New("httpencoding: empty encoding list")

	// ErrMissingHeader means a required header is absent.
	ErrMissingHeader = errors.New("httpencoding: missing header")
)
