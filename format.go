package consolefmt

import (
	"math"
	"strings"
)

const esc = 0x1b

// Format tokenizes a console format string against args.
//
// Recognized specifiers consume arguments from the front of args; a specifier
// without an argument left stays literal. SGR escape sequences update the
// running style and yield a style token describing the whole active style.
// Anything else, including broken escapes, is copied through as text.
// Adjacent text is merged into a single string token.
func Format(format string, args []Value, opts ...FormatOption) Result {
	var cfg formatConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	f := formatter{args: args, rescan: cfg.rescan}
	f.run(format)
	return Result{Tokens: f.tokens, Args: args[f.next:]}
}

type formatter struct {
	args   []Value
	next   int
	rescan bool
	tokens []Token
	text   strings.Builder
	style  styleState
}

func (f *formatter) run(src string) {
	var codeBuf [16]int
	for i := 0; i < len(src); {
		c := src[i]
		if c == esc {
			codes, n, ok := parseSGR(src[i:], codeBuf[:0])
			if !ok {
				f.text.WriteByte(c)
				i++
				continue
			}
			f.style.apply(codes)
			f.emit(Token{Kind: tokenStyle, Text: f.style.css()})
			i += n
			continue
		}
		if c != '%' || i+1 == len(src) {
			j := i + 1
			for j < len(src) && src[j] != '%' && src[j] != esc {
				j++
			}
			f.text.WriteString(src[i:j])
			i = j
			continue
		}

		verb := src[i+1]
		switch verb {
		case '%':
			f.text.WriteByte('%')
			i += 2
			continue
		case 's', 'd', 'i', 'f', 'c', 'o', 'O', '_':
		default:
			f.text.WriteByte('%')
			i++
			continue
		}
		v, ok := f.nextArg()
		if !ok {
			f.text.WriteString(src[i : i+2])
			i += 2
			continue
		}
		i += 2

		var sub string
		switch verb {
		case 's':
			sub = v.String()
		case 'd', 'i':
			sub = formatNumber(math.Trunc(toNumber(v)))
		case 'f':
			sub = formatNumber(toNumber(v))
		case 'c':
			f.emit(Token{Kind: tokenStyle, Text: v.String()})
		case 'o':
			f.emit(Token{Kind: tokenOptimal, Value: v})
		case 'O':
			f.emit(Token{Kind: tokenGeneric, Value: v})
		case '_':
		}
		if sub == "" {
			continue
		}
		if f.rescan {
			src = sub + src[i:]
			i = 0
			continue
		}
		f.text.WriteString(sub)
	}
	f.flush()
}

func (f *formatter) nextArg() (Value, bool) {
	if f.next >= len(f.args) {
		return nil, false
	}
	v := f.args[f.next]
	f.next++
	if v == nil {
		v = undefinedValue{}
	}
	return v, true
}

func (f *formatter) emit(tok Token) {
	f.flush()
	f.tokens = append(f.tokens, tok)
}

func (f *formatter) flush() {
	if f.text.Len() == 0 {
		return
	}
	f.tokens = append(f.tokens, Token{Kind: tokenString, Text: f.text.String()})
	f.text.Reset()
}

func toNumber(v Value) float64 {
	if n, ok := v.Number(); ok {
		return n
	}
	return math.NaN()
}
