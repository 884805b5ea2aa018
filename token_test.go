package websocket

import (
	"testing"

	"github.com/wsproto/websocket/internal/test/assert"
)

func Test_splitTokenList(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		v      string
		tokens []string
	}{
		{
			name:   "empty",
			v:      "",
			tokens: nil,
		},
		{
			name:   "whitespaceOnly",
			v:      " ,\t, ",
			tokens: nil,
		},
		{
			name:   "single",
			v:      "chat",
			tokens: []string{"chat"},
		},
		{
			name:   "trimmed",
			v:      "  chat ,\tsuperchat ",
			tokens: []string{"chat", "superchat"},
		},
		{
			name:   "emptySegmentsDropped",
			v:      "chat, ,superchat",
			tokens: []string{"chat", "superchat"},
		},
		{
			name:   "duplicatesAndOrderPreserved",
			v:      "b,a,b",
			tokens: []string{"b", "a", "b"},
		},
		{
			name:   "parameterizedExtensionStaysWhole",
			v:      "permessage-deflate; client_max_window_bits, mux",
			tokens: []string{"permessage-deflate; client_max_window_bits", "mux"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "tokens", tc.tokens, splitTokenList(tc.v))
		})
	}
}

func Test_tokenListContains(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		v        string
		token    string
		contains bool
	}{
		{
			name:     "missing",
			v:        "keep-alive",
			token:    "upgrade",
			contains: false,
		},
		{
			name:     "present",
			v:        "upgrade",
			token:    "upgrade",
			contains: true,
		},
		{
			name:     "caseInsensitive",
			v:        "keep-alive, UpGrAdE",
			token:    "upgrade",
			contains: true,
		},
		{
			name:     "trimmed",
			v:        "keep-alive,  upgrade ",
			token:    "upgrade",
			contains: true,
		},
		{
			name:     "noSubstringMatch",
			v:        "upgrades",
			token:    "upgrade",
			contains: false,
		},
		{
			name:     "empty",
			v:        "",
			token:    "upgrade",
			contains: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "contains", tc.contains, tokenListContains(tc.v, tc.token))
		})
	}
}
