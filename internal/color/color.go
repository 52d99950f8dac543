package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color packed as 0xRRGGBB.
type RGB uint32

const (
	// Unset is what the theme system reports for an attribute without a value.
	Unset RGB = 0
	// GreyLight is the light placeholder grey (#F5F5F5).
	GreyLight RGB = 0xF5F5F5
	// GreyDark is the dark placeholder grey (#212121).
	GreyDark RGB = 0x212121

	mask RGB = 0xFFFFFF

	hexDigits = "0123456789abcdefABCDEF"
)

// ErrInvalidHex is returned when a string is not a recognised hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// FromRGB255 packs three 8-bit channels.
func FromRGB255(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return FromRGB255(r, g, b)
}

// ParseHex parses #RGB, #RRGGBB and #AARRGGBB (leading '#' optional).
//
// A fully transparent #AARRGGBB value parses to Unset; any other alpha is
// discarded.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if raw == "" || strings.Trim(raw, hexDigits) != "" {
		return Unset, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	switch len(raw) {
	case 3, 6:
	case 8:
		alpha, err := strconv.ParseUint(raw[:2], 16, 8)
		if err != nil {
			return Unset, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		if alpha == 0 {
			return Unset, nil
		}
		raw = raw[2:]
	default:
		return Unset, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	c, err := colorful.Hex("#" + raw)
	if err != nil {
		return Unset, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return FromColorful(c), nil
}

// MustParseHex is ParseHex for package-level literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB255 unpacks the three channels.
func (c RGB) RGB255() (r, g, b uint8) {
	c &= mask
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful returns the go-colorful representation.
func (c RGB) Colorful() colorful.Color {
	r, g, b := c.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return strings.ToUpper(c.Colorful().Hex())
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// HSL returns hue in degrees and saturation and lightness in [0,1].
func (c RGB) HSL() (h, s, l float64) {
	return c.Colorful().Hsl()
}

// Lightness returns the CIE L* lightness in [0,1].
func (c RGB) Lightness() float64 {
	l, _, _ := c.Colorful().Lab()
	return l
}

// IsValid reports whether c can be used as a resolved application color.
// Unset and the two placeholder greys are rejected.
func (c RGB) IsValid() bool {
	switch c & mask {
	case Unset, GreyLight, GreyDark:
		return false
	}
	return true
}

// MarshalText encodes the color as #RRGGBB.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts any form understood by ParseHex.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
