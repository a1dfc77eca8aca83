package consolefmt

import (
	"strings"
	"unicode/utf8"
)

// sanitize makes caller text safe to write to a terminal. Control runes
// other than newline and tab become \xHH; invalid UTF-8 becomes U+FFFD.
func sanitize(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if b := s[i]; b >= utf8.RuneSelf || isControlByte(b) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			continue
		}
		if r <= 0x7F && isControlRune(r) {
			code := byte(r)
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[code>>4])
			b.WriteByte(hexDigits[code&0x0F])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControlByte(b byte) bool {
	if b == '\n' || b == '\t' {
		return false
	}
	return b < 0x20 || b == 0x7F
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
