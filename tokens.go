package consolefmt

import "strconv"

// Token is one unit of a formatted console message.
type Token struct {
	Kind  tokenKind
	Text  string
	Value Value
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and renderers.
type TokenKind = tokenKind

const (
	tokenString tokenKind = iota
	tokenStyle
	tokenOptimal
	tokenGeneric
)

const (
	// TokenString carries literal text in Text.
	TokenString tokenKind = tokenString
	// TokenStyle carries the complete active CSS declaration list in Text.
	// An empty Text resets all styling.
	TokenStyle tokenKind = tokenStyle
	// TokenOptimal carries an argument to display in its most detailed form.
	TokenOptimal tokenKind = tokenOptimal
	// TokenGeneric carries an argument to display in a shallow form.
	TokenGeneric tokenKind = tokenGeneric
)

func (k tokenKind) String() string {
	switch k {
	case tokenString:
		return "string"
	case tokenStyle:
		return "style"
	case tokenOptimal:
		return "optimal"
	case tokenGeneric:
		return "generic"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// String returns a debug form such as style("font-weight:bold").
func (t Token) String() string {
	switch t.Kind {
	case tokenOptimal, tokenGeneric:
		desc := "<nil>"
		if t.Value != nil {
			desc = t.Value.Kind().String() + " " + strconv.Quote(t.Value.String())
		}
		return t.Kind.String() + "(" + desc + ")"
	}
	return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
}

// Result is the output of Format.
type Result struct {
	Tokens []Token
	// Args holds the arguments no specifier consumed, in original order.
	Args []Value
}
