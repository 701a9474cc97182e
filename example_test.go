package httpencoding_test

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfaronov/httpencoding"
)

const request = `GET /articles/123 HTTP/1.1
Host: api.example.com
Accept-Encoding: zstd, br;q=0.9, gzip;q=0.8, identity;q=0.1

`

func Example() {
	r, _ := http.ReadRequest(bufio.NewReader(strings.NewReader(request)))

	accept, err := httpencoding.AcceptEncodingFromHeader(r.Header)
	if err != nil {
		fmt.Println("cannot negotiate:", err)
		return
	}

	// This server can only produce gzip and brotli.
	supported := []httpencoding.Encoding{httpencoding.Gzip, httpencoding.Br}
	coding, ok := accept.PreferredAllowed(supported)
	if !ok {
		coding = httpencoding.Identity
	}

	response := http.Header{}
	httpencoding.SetContentEncoding(response, httpencoding.NewContentEncoding(coding))
	fmt.Println("compressing with", coding)
	fmt.Println("Content-Encoding:", response.Get("Content-Encoding"))
	// Output: compressing with br
	// Content-Encoding: br
}

func ExampleAcceptEncoding_PreferredAllowed() {
	elems, _ := httpencoding.DecodeHeaderValue("gzip;q=0.5, *;q=0.3")
	accept, _ := httpencoding.NewAcceptEncoding(elems)

	// zstd is not named, so it matches the wildcard at q=0.3 and
	// loses to gzip.
	coding, _ := accept.PreferredAllowed([]httpencoding.Encoding{
		httpencoding.Zstd,
		httpencoding.Gzip,
	})
	fmt.Println(coding)
	// Output: gzip
}

func ExampleEncodeHeaderValue() {
	v, _ := httpencoding.EncodeHeaderValue([]httpencoding.AcceptElem{
		{Coding: httpencoding.Gzip, Q: httpencoding.QualityDefault},
		{Coding: httpencoding.Deflate, Q: 800},
		{Coding: httpencoding.Br, Q: 600},
	})
	fmt.Println(v)
	// Output: gzip, deflate;q=0.8, br;q=0.6
}
