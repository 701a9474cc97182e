/*
Package httpencoding parses and generates the HTTP content-negotiation
headers Accept-Encoding and Content-Encoding (RFC 7231 Section 5.3.4
and Section 3.1.2.2), including quality-weighted preference lists.

Decoding here is strict and atomic: a header value either decodes
completely, or the decode function reports an error wrapping one of
the Err sentinels of this package, never a partial result. Generating
functions cannot fail for values obtained from this package, because
Encoding and QualityValue enforce their invariants at construction
time.

Use AcceptEncodingFromHeader and ContentEncodingFromHeader to read the
headers from an http.Header, and SetAcceptEncoding, AddAcceptEncoding
and SetContentEncoding to write them back. DecodeHeaderValue and
EncodeHeaderValue work on a raw field value for callers that store
headers elsewhere.
*/
package httpencoding
