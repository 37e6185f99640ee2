package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
)

// Color is a packed 32-bit color value, laid out as a<<24 | b<<16 | g<<8 | r.
type Color uint32

// Some colors are needed as defaults throughout.
const (
	Transparent Color = 0
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// RGBA packs integer components in 0…255. Components are clamped.
func RGBA(r, g, b, a int) Color {
	return Color(clamp8(a)<<24 | clamp8(b)<<16 | clamp8(g)<<8 | clamp8(r))
}

// RGBAf packs fractional components in 0…1.
func RGBAf(r, g, b, a float32) Color {
	return RGBA(round8(r), round8(g), round8(b), round8(a))
}

func clamp8(n int) uint32 {
	if n < 0 {
		return 0
	} else if n > 255 {
		return 255
	}
	return uint32(n)
}

func round8(f float32) int {
	return int(math.Round(float64(f) * 255))
}

// Components unpacks c.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha component of c.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Visible is true for colors with non-zero alpha.
func (c Color) Visible() bool {
	return c.Alpha() != 0
}

// Darken moves each color component towards 0 by fraction amount. Alpha is
// kept unchanged.
func (c Color) Darken(amount float32) Color {
	r, g, b, a := c.Components()
	f := 1 - clampUnit(amount)
	return RGBA(int(float32(r)*f), int(float32(g)*f), int(float32(b)*f), int(a))
}

// Lighten moves each color component towards 255 by fraction amount.
func (c Color) Lighten(amount float32) Color {
	r, g, b, a := c.Components()
	f := clampUnit(amount)
	up := func(x uint8) int {
		return int(float32(x) + (255-float32(x))*f)
	}
	return RGBA(up(r), up(g), up(b), int(a))
}

func clampUnit(f float32) float32 {
	if f < 0 {
		return 0
	} else if f > 1 {
		return 1
	}
	return f
}

func (c Color) String() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseColor parses a color value. Recognized forms are
//
//    #RGB  #RGBA  #RRGGBB  #RRGGBBAA
//    rgb(r, g, b)  rgba(r, g, b, a)
//    hsv(h, s, v)  hsl(h, s, l)
//    transparent
//    <named color>
//
// Function arguments are either integers in 0…255 or fractions in 0…1. If any
// argument contains a decimal point, all of them are taken as fractions and a
// missing alpha defaults to 1.0 instead of 255.
//
// If s cannot be parsed, black is returned together with false.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Black, false
	}
	lower := foldCase(s)
	switch {
	case lower == "transparent":
		return Transparent, true
	case lower[0] == '#':
		return parseHexColor(lower[1:])
	case strings.HasPrefix(lower, "rgba"):
		return parseRGB(lower[4:], true)
	case strings.HasPrefix(lower, "rgb"):
		return parseRGB(lower[3:], false)
	case strings.HasPrefix(lower, "hsv"):
		return parseHSV(lower[3:], false)
	case strings.HasPrefix(lower, "hsl"):
		return parseHSV(lower[3:], true)
	}
	if c, ok := NamedColor(lower); ok {
		return c, true
	}
	tracer().Errorf("unknown color '%s'", s)
	return Black, false
}

// IsColor returns true if a token is to be read as a color rather than as a
// length, i.e. it does not start with a digit, a sign or a decimal point.
func IsColor(token string) bool {
	if token == "" {
		return false
	}
	switch c := token[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.':
		return false
	}
	return true
}

func parseHexColor(hex string) (Color, bool) {
	for _, ch := range hex {
		if !(ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f') {
			tracer().Errorf("malformed hex color '#%s'", hex)
			return Black, false
		}
	}
	digit := func(i int) int {
		n, _ := strconv.ParseUint(hex[i:i+1], 16, 8)
		return int(n) * 17
	}
	pair := func(i int) int {
		n, _ := strconv.ParseUint(hex[i:i+2], 16, 8)
		return int(n)
	}
	switch len(hex) {
	case 3:
		return RGBA(digit(0), digit(1), digit(2), 255), true
	case 4:
		return RGBA(digit(0), digit(1), digit(2), digit(3)), true
	case 6:
		return RGBA(pair(0), pair(2), pair(4), 255), true
	case 8:
		return RGBA(pair(0), pair(2), pair(4), pair(6)), true
	}
	tracer().Errorf("malformed hex color '#%s'", hex)
	return Black, false
}

// colorArgs extracts the comma separated arguments of a color function.
// The returned flag tells if the arguments are to be taken as fractions.
func colorArgs(s string, min, max int) ([]float32, bool, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, false, false
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) < min || len(parts) > max {
		return nil, false, false
	}
	args := make([]float32, len(parts))
	fractional := false
	for i, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, false, false
		}
		args[i] = float32(f)
		if strings.ContainsRune(p, '.') {
			fractional = true
		}
	}
	return args, fractional, true
}

func parseRGB(s string, hasAlpha bool) (Color, bool) {
	n := 3
	if hasAlpha {
		n = 4
	}
	args, fractional, ok := colorArgs(s, n, n)
	if !ok {
		tracer().Errorf("malformed rgb color 'rgb%s'", s)
		return Black, false
	}
	if fractional {
		a := float32(1)
		if hasAlpha {
			a = args[3]
		}
		return RGBAf(args[0], args[1], args[2], a), true
	}
	a := 255
	if hasAlpha {
		a = int(args[3])
	}
	return RGBA(int(args[0]), int(args[1]), int(args[2]), a), true
}

// parseHSV parses hsv(h, s, v) or hsl(h, s, l). Integer arguments are
// normalized by 255.
func parseHSV(s string, isHSL bool) (Color, bool) {
	args, fractional, ok := colorArgs(s, 3, 3)
	if !ok {
		tracer().Errorf("malformed hsv/hsl color '%s'", s)
		return Black, false
	}
	if !fractional {
		for i := range args {
			args[i] /= 255
		}
	}
	h, sat, v := args[0], args[1], args[2]
	if isHSL {
		l := v
		v = l + sat*dimen.Min(l, 1-l)
		if v == 0 {
			sat = 0
		} else {
			sat = 2 * (1 - l/v)
		}
	}
	r, g, b := hsvToRGB(h, sat, v)
	return RGBAf(r, g, b, 1), true
}

// hsvToRGB converts h, s, v in 0…1 to r, g, b in 0…1.
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	if s == 0 {
		return v, v, v
	}
	h = float32(math.Mod(float64(h), 1)) * 6
	i := int(h)
	f := h - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}
