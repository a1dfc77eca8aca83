package consolefmt

import (
	"strconv"
	"strings"
)

var namedColors = map[string][3]uint8{
	"black":   {0x00, 0x00, 0x00},
	"silver":  {0xC0, 0xC0, 0xC0},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"white":   {0xFF, 0xFF, 0xFF},
	"maroon":  {0x80, 0x00, 0x00},
	"red":     {0xFF, 0x00, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"fuchsia": {0xFF, 0x00, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF},
	"green":   {0x00, 0x80, 0x00},
	"lime":    {0x00, 0xFF, 0x00},
	"olive":   {0x80, 0x80, 0x00},
	"yellow":  {0xFF, 0xFF, 0x00},
	"navy":    {0x00, 0x00, 0x80},
	"blue":    {0x00, 0x00, 0xFF},
	"teal":    {0x00, 0x80, 0x80},
	"aqua":    {0x00, 0xFF, 0xFF},
	"cyan":    {0x00, 0xFF, 0xFF},
	"orange":  {0xFF, 0xA5, 0x00},
	"pink":    {0xFF, 0xC0, 0xCB},
	"brown":   {0xA5, 0x2A, 0x2A},
}

// StyleSGR translates a CSS declaration list into SGR parameters.
//
// It understands color, background, background-color, font-weight,
// font-style, text-decoration and text-decoration-line. Everything else is
// ignored. The result is nil when nothing applies.
func StyleSGR(css string) []int {
	var codes []int
	for css != "" {
		var decl string
		decl, css, _ = strings.Cut(css, ";")
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		switch name {
		case "color":
			if c, ok := parseColor(value); ok {
				codes = append(codes, 38, 2, int(c[0]), int(c[1]), int(c[2]))
			}
		case "background", "background-color":
			if c, ok := parseColor(value); ok {
				codes = append(codes, 48, 2, int(c[0]), int(c[1]), int(c[2]))
			}
		case "font-weight":
			switch value {
			case "bold", "bolder":
				codes = append(codes, 1)
			case "lighter":
				codes = append(codes, 2)
			default:
				if n, err := strconv.Atoi(value); err == nil {
					switch {
					case n >= 600:
						codes = append(codes, 1)
					case n <= 300:
						codes = append(codes, 2)
					}
				}
			}
		case "font-style":
			if value == "italic" || strings.HasPrefix(value, "oblique") {
				codes = append(codes, 3)
			}
		case "text-decoration", "text-decoration-line":
			for _, word := range strings.Fields(value) {
				switch word {
				case "underline":
					codes = append(codes, 4)
				case "line-through":
					codes = append(codes, 9)
				case "overline":
					codes = append(codes, 53)
				}
			}
		}
	}
	return codes
}

func parseColor(value string) ([3]uint8, bool) {
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		return parseHexColor(hex)
	}
	if args, ok := cutFunc(value, "rgb"); ok {
		return parseRGB(args)
	}
	if args, ok := cutFunc(value, "rgba"); ok {
		return parseRGB(args)
	}
	return [3]uint8{}, false
}

func cutFunc(value, name string) (string, bool) {
	rest, ok := strings.CutPrefix(value, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

func parseHexColor(hex string) ([3]uint8, bool) {
	switch len(hex) {
	case 3, 4:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return c, false
			}
			c[i] = uint8(n * 17)
		}
		return c, true
	case 6, 8:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return c, false
			}
			c[i] = uint8(n)
		}
		return c, true
	}
	return [3]uint8{}, false
}

// parseRGB accepts comma or space separated components; alpha is dropped.
func parseRGB(args string) ([3]uint8, bool) {
	args = strings.ReplaceAll(args, "/", " ")
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) < 3 {
		return [3]uint8{}, false
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		f := fields[i]
		var v float64
		if pct, ok := strings.CutSuffix(f, "%"); ok {
			n, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return c, false
			}
			v = n * 255 / 100
		} else {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return c, false
			}
			v = n
		}
		c[i] = clampByte(v)
	}
	return c, true
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
