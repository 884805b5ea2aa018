package websocket

import "strings"

// splitTokenList splits a comma separated header value into its
// tokens. Every token is trimmed of surrounding whitespace and empty
// tokens are dropped. Order and duplicates are preserved. Protocol and
// extension lists get identical treatment.
func splitTokenList(v string) []string {
	var tokens []string
	for _, t := range strings.Split(v, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// tokenListContains reports whether the comma separated header value v
// contains token. Tokens are trimmed and compared case-insensitively.
func tokenListContains(v, token string) bool {
	for _, t := range strings.Split(v, ",") {
		if strings.EqualFold(strings.TrimSpace(t), token) {
			return true
		}
	}
	return false
}
