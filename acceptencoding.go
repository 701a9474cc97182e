package httpencoding

import (
	"fmt"
	"sort"
	"strings"
)

// An AcceptElem represents one element of the Accept-Encoding header
// (RFC 7231 Section 5.3.4): a coding with its quality weight.
type AcceptElem struct {
	Coding Encoding
	Q      QualityValue
}

// DecodeHeaderValue decodes a full Accept-Encoding field value into
// its list of elements, in source order, duplicates preserved.
// Empty list elements are skipped per RFC 7230 Section 7, so ""
// decodes to a list of length 0. Decoding is atomic: on any error
// the returned slice is nil.
func DecodeHeaderValue(v string) ([]AcceptElem, error) {
	elems := []AcceptElem{}
	for _, seg := range strings.Split(v, ",") {
		seg = strings.Trim(seg, " \t")
		if seg == "" {
			continue
		}
		elem, err := decodeElem(seg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// decodeElem decodes one element: token [ ";" OWS "q" OWS "=" OWS qvalue ].
// The "q" is case-insensitive; no parameter other than q is admitted.
func decodeElem(seg string) (AcceptElem, error) {
	tok, params := seg, ""
	sep := strings.IndexByte(seg, ';')
	if sep != -1 {
		tok, params = seg[:sep], seg[sep+1:]
	}
	coding, err := ParseEncoding(strings.TrimRight(tok, " \t"))
	if err != nil {
		return AcceptElem{}, err
	}
	elem := AcceptElem{Coding: coding, Q: QualityDefault}
	if sep == -1 {
		return elem, nil
	}
	p := skipWS(params)
	if peek(p) != 'q' && peek(p) != 'Q' {
		return AcceptElem{}, fmt.Errorf("%w: %q", ErrMalformedHeader, seg)
	}
	p = skipWS(p[1:])
	if peek(p) != '=' {
		return AcceptElem{}, fmt.Errorf("%w: %q", ErrMalformedHeader, seg)
	}
	qtext := strings.Trim(p[1:], " \t")
	if strings.IndexByte(qtext, ';') != -1 {
		return AcceptElem{}, fmt.Errorf("%w: %q", ErrMalformedHeader, seg)
	}
	elem.Q, err = ParseQuality(qtext)
	if err != nil {
		return AcceptElem{}, err
	}
	return elem, nil
}

// EncodeHeaderValue encodes elems as one Accept-Encoding field value.
// Elements with the default quality are written as the bare token.
func EncodeHeaderValue(elems []AcceptElem) (string, error) {
	if len(elems) == 0 {
		return "", ErrEmptyList
	}
	b := &strings.Builder{}
	for i, elem := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.Coding.String())
		if elem.Q != QualityDefault {
			b.WriteString(";q=")
			b.WriteString(elem.Q.String())
		}
	}
	return b.String(), nil
}

// An AcceptEncoding is a parsed Accept-Encoding header: an ordered
// list of codings with their weights. Duplicates are preserved, and
// the source order is kept until one of the Sort methods is called;
// the preference queries never reorder the list.
type AcceptEncoding struct {
	elems []AcceptElem
}

// NewAcceptEncoding constructs an AcceptEncoding from a copy of
// elems. An Accept-Encoding header, once present, must name at least
// one coding, so an empty elems is ErrEmptyList.
func NewAcceptEncoding(elems []AcceptElem) (*AcceptEncoding, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyList
	}
	ae := &AcceptEncoding{elems: make([]AcceptElem, len(elems))}
	copy(ae.elems, elems)
	return ae, nil
}

// Elems returns a copy of the elements in their current order.
func (ae *AcceptEncoding) Elems() []AcceptElem {
	elems := make([]AcceptElem, len(ae.elems))
	copy(elems, ae.elems)
	return elems
}

// SortAscending stably reorders the elements by weight, lowest
// first. Elements of equal weight keep their relative order.
func (ae *AcceptEncoding) SortAscending() {
	sort.SliceStable(ae.elems, func(i, j int) bool {
		return ae.elems[i].Q < ae.elems[j].Q
	})
}

// SortDescending stably reorders the elements by weight, highest
// first. Elements of equal weight keep their relative order.
func (ae *AcceptEncoding) SortDescending() {
	sort.SliceStable(ae.elems, func(i, j int) bool {
		return ae.elems[i].Q > ae.elems[j].Q
	})
}

// Preferred returns the coding with the highest positive weight.
// Ties go to the earliest element in the current order. The second
// return is false when every element has q=0.
func (ae *AcceptEncoding) Preferred() (Encoding, bool) {
	var best AcceptElem
	for _, elem := range ae.elems {
		if elem.Q > best.Q {
			best = elem
		}
	}
	if best.Q == 0 {
		return Encoding{}, false
	}
	return best.Coding, true
}

// PreferredAllowed returns the highest-weighted coding that is also
// in allowed, comparing names case-insensitively. A wildcard element
// stands for every member of allowed that no other element names
// explicitly, at the wildcard's own weight. Ties go to the earliest
// element, and within one wildcard element to the earliest member of
// allowed. The second return is false when nothing in allowed is
// acceptable with positive weight.
func (ae *AcceptEncoding) PreferredAllowed(allowed []Encoding) (Encoding, bool) {
	var best Encoding
	var bestQ QualityValue
	for _, elem := range ae.elems {
		if elem.Q <= bestQ {
			continue
		}
		if elem.Coding.IsWildcard() {
			for _, enc := range allowed {
				if !ae.lists(enc) {
					best, bestQ = enc, elem.Q
					break
				}
			}
			continue
		}
		for _, enc := range allowed {
			if elem.Coding.Equal(enc) {
				best, bestQ = enc, elem.Q
				break
			}
		}
	}
	if bestQ == 0 {
		return Encoding{}, false
	}
	return best, true
}

// lists reports whether enc is named by a non-wildcard element.
func (ae *AcceptEncoding) lists(enc Encoding) bool {
	for _, elem := range ae.elems {
		if !elem.Coding.IsWildcard() && elem.Coding.Equal(enc) {
			return true
		}
	}
	return false
}
