package consolefmt

import (
	"strconv"
	"strings"
)

type styleKind uint8

const (
	styleFontWeight styleKind = iota
	styleFontStyle
	styleTextDecoration
	styleColor
	styleBackground
	numStyleKinds
)

var styleNames = [numStyleKinds]string{
	styleFontWeight:     "font-weight",
	styleFontStyle:      "font-style",
	styleTextDecoration: "text-decoration",
	styleColor:          "color",
	styleBackground:     "background",
}

// ansiPalette holds the VGA values for SGR 30-37 (0-7) and 90-97 (8-15).
var ansiPalette = [16][3]uint8{
	{0x00, 0x00, 0x00},
	{0xAA, 0x00, 0x00},
	{0x00, 0xAA, 0x00},
	{0xAA, 0x55, 0x00},
	{0x00, 0x00, 0xAA},
	{0xAA, 0x00, 0xAA},
	{0x00, 0xAA, 0xAA},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0xFF, 0x55, 0x55},
	{0x55, 0xFF, 0x55},
	{0xFF, 0xFF, 0x55},
	{0x55, 0x55, 0xFF},
	{0xFF, 0x55, 0xFF},
	{0x55, 0xFF, 0xFF},
	{0xFF, 0xFF, 0xFF},
}

// styleState accumulates SGR attributes. Each kind owns one slot; seq records
// when a slot became active so serialization follows activation order.
type styleState struct {
	values      [numStyleKinds]string
	seq         [numStyleKinds]int
	next        int
	decorations []string
}

func (s *styleState) set(kind styleKind, value string) {
	if s.values[kind] == "" {
		s.next++
		s.seq[kind] = s.next
	}
	s.values[kind] = value
}

func (s *styleState) clear(kind styleKind) {
	s.values[kind] = ""
	s.seq[kind] = 0
	if kind == styleTextDecoration {
		s.decorations = s.decorations[:0]
	}
}

func (s *styleState) reset() {
	for k := styleKind(0); k < numStyleKinds; k++ {
		s.clear(k)
	}
}

func (s *styleState) addDecoration(value string) {
	for _, d := range s.decorations {
		if d == value {
			return
		}
	}
	s.decorations = append(s.decorations, value)
	s.set(styleTextDecoration, strings.Join(s.decorations, " "))
}

func (s *styleState) removeDecoration(value string) {
	for i, d := range s.decorations {
		if d != value {
			continue
		}
		s.decorations = append(s.decorations[:i], s.decorations[i+1:]...)
		if len(s.decorations) == 0 {
			s.clear(styleTextDecoration)
		} else {
			s.values[styleTextDecoration] = strings.Join(s.decorations, " ")
		}
		return
	}
}

// css serializes the active slots as kind:value pairs joined by ';'.
func (s *styleState) css() string {
	var order [numStyleKinds]styleKind
	n := 0
	for k := styleKind(0); k < numStyleKinds; k++ {
		if s.values[k] == "" {
			continue
		}
		// insertion sort by activation; at most five entries
		i := n
		for i > 0 && s.seq[order[i-1]] > s.seq[k] {
			order[i] = order[i-1]
			i--
		}
		order[i] = k
		n++
	}
	if n == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(styleNames[order[i]])
		b.WriteByte(':')
		b.WriteString(s.values[order[i]])
	}
	return b.String()
}

// apply runs one SGR parameter list against the state. Codes outside the
// table are ignored.
func (s *styleState) apply(codes []int) {
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			s.reset()
		case code == 1:
			s.set(styleFontWeight, "bold")
		case code == 2:
			s.set(styleFontWeight, "lighter")
		case code == 3:
			s.set(styleFontStyle, "italic")
		case code == 4:
			s.addDecoration("underline")
		case code == 9:
			s.addDecoration("line-through")
		case code == 22:
			s.clear(styleFontWeight)
		case code == 23:
			s.clear(styleFontStyle)
		case code == 24:
			s.removeDecoration("underline")
		case code == 29:
			s.removeDecoration("line-through")
		case code >= 30 && code <= 37:
			s.set(styleColor, hexColor(ansiPalette[code-30]))
		case code == 38 || code == 48:
			kind := styleColor
			if code == 48 {
				kind = styleBackground
			}
			i += s.applyExtended(kind, codes[i+1:])
		case code == 39:
			s.clear(styleColor)
		case code >= 40 && code <= 47:
			s.set(styleBackground, hexColor(ansiPalette[code-40]))
		case code == 49:
			s.clear(styleBackground)
		case code == 53:
			s.addDecoration("overline")
		case code == 55:
			s.removeDecoration("overline")
		case code >= 90 && code <= 97:
			s.set(styleColor, hexColor(ansiPalette[code-90+8]))
		case code >= 100 && code <= 107:
			s.set(styleBackground, hexColor(ansiPalette[code-100+8]))
		}
	}
}

// applyExtended handles the parameters after 38 or 48 and returns how many
// it consumed. The mode code is always consumed.
func (s *styleState) applyExtended(kind styleKind, params []int) int {
	if len(params) == 0 {
		return 0
	}
	switch params[0] {
	case 2:
		var rgb [3]int
		n := copy(rgb[:], params[1:])
		for _, c := range rgb {
			if c < 0 || c > 255 {
				return 1 + n
			}
		}
		s.set(kind, "rgb("+strconv.Itoa(rgb[0])+","+strconv.Itoa(rgb[1])+","+strconv.Itoa(rgb[2])+")")
		return 1 + n
	case 5:
		if len(params) < 2 {
			return 1
		}
		if idx := params[1]; idx >= 0 && idx < 256 {
			s.set(kind, hexColor(xtermColor(idx)))
		}
		return 2
	}
	return 1
}

// xtermColor maps a 256-colour index to RGB: 16 palette entries, a 6x6x6
// cube, then a 24-step grey ramp.
func xtermColor(idx int) [3]uint8 {
	if idx < 16 {
		return ansiPalette[idx]
	}
	if idx < 232 {
		idx -= 16
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		return [3]uint8{level(idx / 36), level(idx / 6 % 6), level(idx % 6)}
	}
	g := uint8(8 + (idx-232)*10)
	return [3]uint8{g, g, g}
}

const hexDigits = "0123456789ABCDEF"

func hexColor(c [3]uint8) string {
	b := [7]byte{'#'}
	for i, v := range c {
		b[1+i*2] = hexDigits[v>>4]
		b[2+i*2] = hexDigits[v&0x0F]
	}
	return string(b[:])
}

// parseSGR reports whether s starts with ESC [ params m. On success it returns
// the parameter list and the sequence length. Empty parameters read as 0 and
// an empty list as a single 0.
func parseSGR(s string, codes []int) ([]int, int, bool) {
	if len(s) < 3 || s[0] != 0x1b || s[1] != '[' {
		return codes, 0, false
	}
	end := 2
	for end < len(s) && (s[end] == ';' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end >= len(s) || s[end] != 'm' {
		return codes, 0, false
	}
	params := s[2:end]
	if params == "" {
		return append(codes, 0), end + 1, true
	}
	for {
		field, rest, more := strings.Cut(params, ";")
		code := 0
		if field != "" {
			n, err := strconv.Atoi(field)
			if err != nil {
				// overflow; no table entry matches
				n = -1
			}
			code = n
		}
		codes = append(codes, code)
		if !more {
			break
		}
		params = rest
	}
	return codes, end + 1, true
}
