package httpencoding

import (
	"fmt"
	"math"
)

// A QualityValue is an RFC 7231 qvalue: a weight in the closed range
// [0, 1] with at most three digits after the decimal point. It is
// stored in exact thousandths, so comparing qualities and deciding
// whether a default q=1 may be omitted on output never involves
// floating-point error.
type QualityValue uint16

const (
	// QualityNotAcceptable (q=0) marks a coding the sender refuses.
	QualityNotAcceptable QualityValue = 0

	// QualityDefault (q=1) is the weight of a coding listed without
	// an explicit qvalue.
	QualityDefault QualityValue = 1000
)

// NewQuality converts q to a QualityValue, rounding to the nearest
// thousandth. Values outside [0, 1] are rejected, not clamped.
func NewQuality(q float64) (QualityValue, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: %v out of range", ErrInvalidQuality, q)
	}
	return QualityValue(math.Round(q * 1000)), nil
}

// ParseQuality parses text according to the qvalue grammar
// (RFC 7231 Section 5.3.1):
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func ParseQuality(text string) (QualityValue, error) {
	if text == "" || (text[0] != '0' && text[0] != '1') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, text)
	}
	q := QualityValue(text[0]-'0') * 1000
	rest := text[1:]
	if rest == "" {
		return q, nil
	}
	if rest[0] != '.' || len(rest) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, text)
	}
	scale := QualityValue(100)
	for i := 1; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, text)
		}
		q += QualityValue(rest[i]-'0') * scale
		scale /= 10
	}
	if q > 1000 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, text)
	}
	return q, nil
}

// Float returns the weight as a number in [0, 1].
func (q QualityValue) Float() float64 {
	return float64(q) / 1000
}

// String renders the qvalue with trailing zeros trimmed: "1", "0",
// "0.8", "0.05", "0.667".
func (q QualityValue) String() string {
	switch {
	case q >= 1000:
		return "1"
	case q == 0:
		return "0"
	}
	b := []byte{'0', '.', '0' + byte(q/100), '0' + byte(q/10%10), '0' + byte(q%10)}
	n := len(b)
	for b[n-1] == '0' {
		n--
	}
	return string(b[:n])
}
