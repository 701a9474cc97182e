package httpencoding

import (
	"fmt"
	"strings"
)

// A ContentEncoding is a parsed Content-Encoding header. Only a
// single content-coding is modeled: the same coding repeated across
// header lines or list elements collapses to one, while two
// different codings (a stack of applied encodings) are rejected as
// malformed.
type ContentEncoding struct {
	coding Encoding
}

// NewContentEncoding wraps enc in a ContentEncoding.
func NewContentEncoding(enc Encoding) ContentEncoding {
	return ContentEncoding{coding: enc}
}

// Coding returns the content-coding.
func (ce ContentEncoding) Coding() Encoding {
	return ce.coding
}

// DecodeContentEncoding decodes the raw Content-Encoding values, one
// string per header line, each itself a comma-separated list with
// empty elements skipped. ErrMissingHeader when no coding at all is
// present, ErrMalformedHeader when two different codings are named.
func DecodeContentEncoding(values []string) (ContentEncoding, error) {
	var found Encoding
	for _, v := range values {
		for _, seg := range strings.Split(v, ",") {
			seg = strings.Trim(seg, " \t")
			if seg == "" {
				continue
			}
			coding, err := ParseEncoding(seg)
			if err != nil {
				return ContentEncoding{}, err
			}
			if found != (Encoding{}) && !found.Equal(coding) {
				return ContentEncoding{}, fmt.Errorf("%w: conflicting codings %q and %q",
					ErrMalformedHeader, found, coding)
			}
			found = coding
		}
	}
	if found == (Encoding{}) {
		return ContentEncoding{}, ErrMissingHeader
	}
	return ContentEncoding{coding: found}, nil
}

// Encode renders the header values for the coding: the inverse of
// DecodeContentEncoding.
func (ce ContentEncoding) Encode() []string {
	return []string{ce.coding.String()}
}
