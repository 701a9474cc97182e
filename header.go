package httpencoding

import "net/http"

// AcceptEncodingFromHeader decodes the Accept-Encoding header from h.
// The header may be split across any number of lines; they are
// decoded in order into a single list. ErrMissingHeader when h has
// no Accept-Encoding at all, ErrEmptyList when the header is present
// but names no codings.
func AcceptEncodingFromHeader(h http.Header) (*AcceptEncoding, error) {
	values := h["Accept-Encoding"]
	if len(values) == 0 {
		return nil, ErrMissingHeader
	}
	var elems []AcceptElem
	for _, v := range values {
		more, err := DecodeHeaderValue(v)
		if err != nil {
			return nil, err
		}
		elems = append(elems, more...)
	}
	return NewAcceptEncoding(elems)
}

// SetAcceptEncoding replaces the Accept-Encoding header in h with
// ae's elements in their current order. See also AddAcceptEncoding.
func SetAcceptEncoding(h http.Header, ae *AcceptEncoding) {
	v, _ := EncodeHeaderValue(ae.elems) // non-empty by construction
	h.Set("Accept-Encoding", v)
}

// AddAcceptEncoding is like SetAcceptEncoding but appends one more
// header line with the given elements instead of replacing.
func AddAcceptEncoding(h http.Header, elems []AcceptElem) error {
	v, err := EncodeHeaderValue(elems)
	if err != nil {
		return err
	}
	h.Add("Accept-Encoding", v)
	return nil
}

// ContentEncodingFromHeader decodes the Content-Encoding header
// from h.
func ContentEncodingFromHeader(h http.Header) (ContentEncoding, error) {
	return DecodeContentEncoding(h["Content-Encoding"])
}

// SetContentEncoding replaces the Content-Encoding header in h.
func SetContentEncoding(h http.Header, ce ContentEncoding) {
	h.Set("Content-Encoding", ce.Coding().String())
}
