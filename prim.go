package httpencoding

var (
	isTchar [256]bool
)

func init() {
	tchars := "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range tchars {
		isTchar[c] = true
	}
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return s != ""
}

func skipWS(v string) string {
	for v != "" && (v[0] == ' ' || v[0] == '\t') {
		v = v[1:]
	}
	return v
}

func peek(v string) byte {
	if v == "" {
		return 0
	}
	return v[0]
}
