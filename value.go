package consolefmt

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the resolved type behind a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindSymbol
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a resolved console argument supplied by the caller.
//
// Format only looks at a Value when a specifier coerces it: String for %s and
// %c, Number for %d, %i and %f. Number reports false for anything that is not
// a number; those render as NaN.
type Value interface {
	Kind() Kind
	Number() (float64, bool)
	String() string
}

// Previewer is implemented by values that have a richer display form than
// their description. Render uses it for optimal tokens and leftover args.
type Previewer interface {
	Preview() string
}

type numberValue float64

// NumberValue returns a numeric argument.
func NumberValue(v float64) Value { return numberValue(v) }

func (v numberValue) Kind() Kind { return KindNumber }
func (v numberValue) Number() (float64, bool) { return float64(v), true }
func (v numberValue) String() string { return formatNumber(float64(v)) }

type stringValue string

// StringValue returns a string argument.
func StringValue(s string) Value { return stringValue(s) }

func (v stringValue) Kind() Kind { return KindString }
func (v stringValue) Number() (float64, bool) { return 0, false }
func (v stringValue) String() string { return string(v) }
func (v stringValue) Preview() string { return "'" + string(v) + "'" }

type boolValue bool

// BoolValue returns a boolean argument.
func BoolValue(b bool) Value { return boolValue(b) }

func (v boolValue) Kind() Kind { return KindBoolean }
func (v boolValue) Number() (float64, bool) { return 0, false }
func (v boolValue) String() string { return strconv.FormatBool(bool(v)) }

type symbolValue string

// SymbolValue returns a symbol argument with the given description.
// Its string form is Symbol(description).
func SymbolValue(description string) Value { return symbolValue(description) }

func (v symbolValue) Kind() Kind { return KindSymbol }
func (v symbolValue) Number() (float64, bool) { return 0, false }
func (v symbolValue) String() string { return "Symbol(" + string(v) + ")" }

type undefinedValue struct{}

// UndefinedValue returns the undefined argument.
func UndefinedValue() Value { return undefinedValue{} }

func (undefinedValue) Kind() Kind { return KindUndefined }
func (undefinedValue) Number() (float64, bool) { return 0, false }
func (undefinedValue) String() string { return "undefined" }

// ObjectValue is a reference to a caller-side object. Two ObjectValues are
// equal only if they are the same pointer.
type ObjectValue struct {
	// Description is the short display form, e.g. "Object" or "Array(3)".
	Description string
	// Detail is the expanded display form. Empty means Description.
	Detail string
	// Ref is the caller's handle, if any. It is never inspected.
	Ref any
}

// NewObjectValue returns an object argument.
func NewObjectValue(description, detail string, ref any) *ObjectValue {
	return &ObjectValue{Description: description, Detail: detail, Ref: ref}
}

func (o *ObjectValue) Kind() Kind { return KindObject }
func (o *ObjectValue) Number() (float64, bool) { return 0, false }
func (o *ObjectValue) String() string { return o.Description }

func (o *ObjectValue) Preview() string {
	if o.Detail != "" {
		return o.Detail
	}
	return o.Description
}

// formatNumber renders v the way ECMAScript Number::toString does.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	// Shortest round-trip digits as d.ddddde±XX.
	e := strconv.FormatFloat(v, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	n := exp + 1

	var b strings.Builder
	b.Grow(len(digits) + 8)
	b.WriteString(sign)
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(abs(n - 1)))
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
