package httpencoding

import (
	"fmt"
	"strings"
)

// An Encoding identifies one content-coding by its token name.
// Well-known codings are available as predefined values; any other
// valid token becomes a custom coding that keeps the casing it was
// supplied with. Names compare case-insensitively per HTTP token
// rules, so a custom "GZIP" is Equal to Gzip.
//
// The zero Encoding has an empty name and does not denote any coding;
// ParseEncoding never returns it.
type Encoding struct {
	name string
}

// Content-codings from the IANA HTTP Content Coding Registry, plus
// the Accept-Encoding wildcard.
var (
	Identity = Encoding{"identity"}
	Gzip     = Encoding{"gzip"}
	Deflate  = Encoding{"deflate"}
	Compress = Encoding{"compress"}
	Br       = Encoding{"br"}
	Zstd     = Encoding{"zstd"}
	Snappy   = Encoding{"snappy"}
	Xz       = Encoding{"xz"}
	Lzma     = Encoding{"lzma"}
	Bzip2    = Encoding{"bzip2"}
	Lz4      = Encoding{"lz4"}
	Zlib     = Encoding{"zlib"}
	Wildcard = Encoding{"*"}
)

var wellKnown = map[string]Encoding{
	"identity": Identity,
	"gzip":     Gzip,
	"deflate":  Deflate,
	"compress": Compress,
	"br":       Br,
	"zstd":     Zstd,
	"snappy":   Snappy,
	"xz":       Xz,
	"lzma":     Lzma,
	"bzip2":    Bzip2,
	"lz4":      Lz4,
	"zlib":     Zlib,
	"*":        Wildcard,
}

// ParseEncoding parses one content-coding token. Any casing of a
// well-known name canonicalizes to the corresponding predefined
// value; any other valid token is kept verbatim as a custom coding.
// Only a string that is not a valid RFC 7230 token is an error.
func ParseEncoding(token string) (Encoding, error) {
	if !isToken(token) {
		return Encoding{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	if enc, ok := wellKnown[strings.ToLower(token)]; ok {
		return enc, nil
	}
	return Encoding{name: token}, nil
}

// String returns the canonical lowercase name for a well-known
// coding, or the token verbatim for a custom one.
func (e Encoding) String() string {
	return e.name
}

// Equal reports whether e and other name the same coding, comparing
// case-insensitively.
func (e Encoding) Equal(other Encoding) bool {
	return strings.EqualFold(e.name, other.name)
}

// IsWildcard reports whether e is the "*" coding.
func (e Encoding) IsWildcard() bool {
	return e.name == "*"
}
