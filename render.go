package consolefmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const sgrReset = "\x1b[0m"

// RenderRequest configures Render.
type RenderRequest struct {
	Writer  io.Writer
	Result  Result
	Width   int
	Options []RenderOption
}

// Render writes a formatted message as one line of terminal text, followed
// by any leftover arguments separated by spaces. Style tokens become SGR
// sequences unless color is disabled. Width > 0 wraps the output.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var b strings.Builder
	styled := false
	for _, tok := range req.Result.Tokens {
		switch tok.Kind {
		case tokenString:
			b.WriteString(sanitize(tok.Text))
		case tokenStyle:
			if cfg.noColor {
				continue
			}
			b.WriteString(sgrSequence(StyleSGR(tok.Text)))
			styled = true
		case tokenOptimal:
			b.WriteString(sanitize(optimalText(tok.Value)))
		case tokenGeneric:
			b.WriteString(sanitize(genericText(tok.Value)))
		}
	}
	for i, v := range req.Result.Args {
		if i > 0 || len(req.Result.Tokens) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sanitize(argText(v)))
	}
	if styled {
		b.WriteString(sgrReset)
	}

	out := b.String()
	if req.Width > 0 {
		out = wrapText(out, req.Width, cfg.hardWrap)
	}
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// sgrSequence returns a reset followed by codes as a single escape sequence.
func sgrSequence(codes []int) string {
	if len(codes) == 0 {
		return sgrReset
	}
	var b strings.Builder
	b.WriteString("\x1b[0")
	for _, c := range codes {
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('m')
	return b.String()
}

func wrapText(s string, width int, hard bool) string {
	s = wordwrap.String(s, width)
	if hard {
		s = wrap.String(s, width)
	}
	return s
}

func genericText(v Value) string {
	if v == nil {
		return "undefined"
	}
	return v.String()
}

func optimalText(v Value) string {
	if p, ok := v.(Previewer); ok {
		return p.Preview()
	}
	return genericText(v)
}

// argText is the display of a trailing argument: strings are written raw,
// everything else uses its detailed form.
func argText(v Value) string {
	if v != nil && v.Kind() == KindString {
		return v.String()
	}
	return optimalText(v)
}
