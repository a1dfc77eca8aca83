package consolefmt

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:                     "0",
		1:                     "1",
		-1:                    "-1",
		42:                    "42",
		3.1415:                "3.1415",
		0.1:                   "0.1",
		0.000001:              "0.000001",
		0.0000001:             "1e-7",
		1.5e-7:                "1.5e-7",
		123456789012345680000: "123456789012345680000",
		1e21:                  "1e+21",
		1.25e22:               "1.25e+22",
		100:                   "100",
		-2.5:                  "-2.5",
		math.Inf(1):           "Infinity",
		math.Inf(-1):          "-Infinity",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Fatalf("formatNumber(%v)=%q want %q", in, got, want)
		}
	}
	if got := formatNumber(math.NaN()); got != "NaN" {
		t.Fatalf("formatNumber(NaN)=%q", got)
	}
}

func TestValueCoercion(t *testing.T) {
	cases := []struct {
		v       Value
		kind    Kind
		text    string
		numeric bool
	}{
		{NumberValue(1.5), KindNumber, "1.5", true},
		{StringValue("12"), KindString, "12", false},
		{BoolValue(true), KindBoolean, "true", false},
		{SymbolValue("tag"), KindSymbol, "Symbol(tag)", false},
		{UndefinedValue(), KindUndefined, "undefined", false},
		{NewObjectValue("Array(2)", "[1, 2]", nil), KindObject, "Array(2)", false},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Fatalf("%v: kind %s want %s", tc.v, tc.v.Kind(), tc.kind)
		}
		if tc.v.String() != tc.text {
			t.Fatalf("%v: text %q want %q", tc.v, tc.v.String(), tc.text)
		}
		if _, ok := tc.v.Number(); ok != tc.numeric {
			t.Fatalf("%v: numeric %v want %v", tc.v, ok, tc.numeric)
		}
	}
}

func TestObjectValueIdentity(t *testing.T) {
	a := NewObjectValue("Object", "", nil)
	b := NewObjectValue("Object", "", nil)
	if Value(a) == Value(b) {
		t.Fatalf("distinct objects compared equal")
	}
	if a.Preview() != "Object" {
		t.Fatalf("expected preview to fall back to description, got %q", a.Preview())
	}
}
