package imdraw

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is one of the named presets below or a custom RGBA byte quadruple
// created with Custom. The zero value is transparent black.
type Color struct {
	preset     preset
	r, g, b, a uint8
}

type preset uint8

const (
	presetCustom preset = iota
	presetRed
	presetGreen
	presetBlue
	presetYellow
	presetBlack
	presetWhite
	presetGray
	presetPurple
	presetPink
	presetBrown
	presetOrange
	presetMagenta
	presetCyan
)

// Named presets.
var (
	Red     = Color{preset: presetRed}
	Green   = Color{preset: presetGreen}
	Blue    = Color{preset: presetBlue}
	Yellow  = Color{preset: presetYellow}
	Black   = Color{preset: presetBlack}
	White   = Color{preset: presetWhite}
	Gray    = Color{preset: presetGray}
	Purple  = Color{preset: presetPurple}
	Pink    = Color{preset: presetPink}
	Brown   = Color{preset: presetBrown}
	Orange  = Color{preset: presetOrange}
	Magenta = Color{preset: presetMagenta}
	Cyan    = Color{preset: presetCyan}
)

var presetTable = [...]struct {
	name string
	rgba [4]float32
}{
	presetRed:     {"red", [4]float32{1, 0, 0, 1}},
	presetGreen:   {"green", [4]float32{0, 1, 0, 1}},
	presetBlue:    {"blue", [4]float32{0, 0, 1, 1}},
	presetYellow:  {"yellow", [4]float32{1, 1, 0, 1}},
	presetBlack:   {"black", [4]float32{0, 0, 0, 1}},
	presetWhite:   {"white", [4]float32{1, 1, 1, 1}},
	presetGray:    {"gray", [4]float32{0.5, 0.5, 0.5, 1}},
	presetPurple:  {"purple", [4]float32{0.5, 0, 0.5, 1}},
	presetPink:    {"pink", [4]float32{1, 0, 1, 1}},
	presetBrown:   {"brown", [4]float32{0.6, 0.3, 0.1, 1}},
	presetOrange:  {"orange", [4]float32{1, 0.5, 0, 1}},
	presetMagenta: {"magenta", [4]float32{1, 0, 1, 1}},
	presetCyan:    {"cyan", [4]float32{0, 1, 1, 1}},
}

// Custom creates a color from non-premultiplied byte channels.
func Custom(r, g, b, a uint8) Color {
	return Color{r: r, g: g, b: b, a: a}
}

// AsRGBA resolves the color to normalized float channels in [0, 1], the
// layout stored in Vertex.Color.
func (c Color) AsRGBA() [4]float32 {
	if c.preset != presetCustom {
		return presetTable[c.preset].rgba
	}
	return [4]float32{
		float32(c.r) / 255,
		float32(c.g) / 255,
		float32(c.b) / 255,
		float32(c.a) / 255,
	}
}

// IsCustom reports whether c was built from byte channels rather than a preset.
func (c Color) IsCustom() bool {
	return c.preset == presetCustom
}

// String returns the preset name, or "#rrggbbaa" for custom colors.
func (c Color) String() string {
	if c.preset != presetCustom {
		return presetTable[c.preset].name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
}

// FromColor converts a standard color.Color to a custom Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Custom(n.R, n.G, n.B, n.A)
}

// Named looks up an SVG 1.1 color keyword such as "cornflowerblue".
// The lookup is case-insensitive.
func Named(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Custom(rgba.R, rgba.G, rgba.B, rgba.A), true
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func Hex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		return Color{}, fmt.Errorf("%w: %q has length %d", ErrInvalidColor, hex, len(s))
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, hex)
	}

	return Custom(uint8(r), uint8(g), uint8(b), uint8(a)), nil //nolint:gosec // at most 0xff
}

// parseHex accumulates hex digits of s into val. Returns false on a
// non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
