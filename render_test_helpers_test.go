package consolefmt

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func str(s string) Token { return Token{Kind: TokenString, Text: s} }
func sty(s string) Token { return Token{Kind: TokenStyle, Text: s} }

func requireTokens(t *testing.T, got []Token, want ...Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch\nwant: %s\n got: %s", dumpTokens(want), dumpTokens(got))
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Text != want[i].Text || got[i].Value != want[i].Value {
			t.Fatalf("token %d mismatch\nwant: %s\n got: %s", i, dumpTokens(want), dumpTokens(got))
		}
	}
}

func dumpTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func renderString(t *testing.T, res Result, width int, opts ...RenderOption) string {
	t.Helper()
	var b strings.Builder
	if err := Render(RenderRequest{Writer: &b, Result: res, Width: width, Options: opts}); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}
