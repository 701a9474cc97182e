package httpencoding

import (
	"math/rand"
	"net/http"
	"reflect"
	"testing"
)

func checkParse(t *testing.T, header http.Header, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("parsing: %#v\nexpected: %#v\nactual:   %#v",
			header, expected, actual)
	}
}

func checkGenerate(t *testing.T, input interface{}, expected, actual http.Header) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("generating: %#v\nexpected: %#v\nactual:   %#v",
			input, expected, actual)
	}
}

// fuzzHeader builds a random header with 1 to 3 lines of junk under
// the given name. Biased towards the bytes that exercise the most
// parser states in the codings grammar.
func fuzzHeader(r *rand.Rand, name string) http.Header {
	header := http.Header{}
	for i := 0; i < 1+r.Intn(3); i++ {
		b := make([]byte, r.Intn(64))
		for j := range b {
			const chars = "\x00 \t,,;;==..**qQ0189gzipbr()\"\\"
			b[j] = chars[r.Intn(len(chars))]
		}
		header.Add(name, string(b))
	}
	return header
}

func randToken(r *rand.Rand) string {
	const tchars = "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, 1+r.Intn(10))
	for i := range b {
		b[i] = tchars[r.Intn(len(tchars))]
	}
	return string(b)
}

// randElems builds a random valid element list: well-known and
// custom codings with arbitrary exact qvalues.
func randElems(t *testing.T, r *rand.Rand) []AcceptElem {
	t.Helper()
	known := []Encoding{
		Identity, Gzip, Deflate, Compress, Br, Zstd,
		Snappy, Xz, Lzma, Bzip2, Lz4, Zlib, Wildcard,
	}
	elems := make([]AcceptElem, 1+r.Intn(5))
	for i := range elems {
		coding := known[r.Intn(len(known))]
		if r.Intn(4) == 0 {
			var err error
			coding, err = ParseEncoding(randToken(r))
			if err != nil {
				t.Fatalf("bad random token: %v", err)
			}
		}
		elems[i] = AcceptElem{Coding: coding, Q: QualityValue(r.Intn(1001))}
	}
	return elems
}
