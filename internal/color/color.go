package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common errors for color parsing and encoding
var (
	// ErrFormat is returned for malformed hex strings: missing '#', wrong
	// length or non-hex characters.
	ErrFormat = errors.New("invalid color format")
	// ErrRange is returned for numeric input that cannot be represented as
	// an 8-bit channel.
	ErrRange = errors.New("value out of range")
)

const (
	hexPrefix   = "#"
	hexLength   = 7 // '#' + 6 digits
	shortLength = 4 // '#' + 3 digits
	maxChannel  = 255
)

// Color is an RGB triple with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// FromRGB builds a Color from integer channels, each in [0,255].
func FromRGB(r, g, b int) (Color, error) {
	for i, v := range [3]int{r, g, b} {
		if v < 0 || v > maxChannel {
			return Color{}, fmt.Errorf("%w: channel %s=%d not in [0,255]", ErrRange, channelNames[i], v)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustRGB is FromRGB for constants and tests. It panics on invalid input.
func MustRGB(r, g, b int) Color {
	c, err := FromRGB(r, g, b)
	if err != nil {
		panic(fmt.Sprintf("invalid color (%d,%d,%d): %v", r, g, b, err))
	}
	return c
}

// FromHex parses a "#RRGGBB" string. Hex digits may be in either case.
func FromHex(s string) (Color, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return Color{}, fmt.Errorf("%w: %q must start with '#'", ErrFormat, s)
	}
	if len(s) != hexLength {
		return Color{}, fmt.Errorf("%w: %q must be '#' followed by 6 hex digits", ErrFormat, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := DecodeChannel(s[1+2*i : 3+2*i])
		if err != nil {
			return Color{}, fmt.Errorf("invalid %s channel in %q: %w", channelNames[i], s, err)
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustHex is FromHex for constants and tests. It panics on invalid input.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(fmt.Sprintf("invalid color %q: %v", s, err))
	}
	return c
}

// ToHex serializes integer channels as "#RRGGBB".
func ToHex(r, g, b int) (string, error) {
	c, err := FromRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex returns the canonical "#RRGGBB" form, uppercase and zero-padded.
func (c Color) Hex() string {
	pairs := c.Pairs()
	return hexPrefix + pairs[0] + pairs[1] + pairs[2]
}

// String makes Color satisfy the fmt.Stringer interface.
func (c Color) String() string {
	return c.Hex()
}

// Channels returns the channel values in R, G, B order.
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Pairs returns the 2-digit hex substring of each channel in R, G, B order.
func (c Color) Pairs() [3]string {
	return [3]string{encodeByte(c.R), encodeByte(c.G), encodeByte(c.B)}
}

// EncodeChannel rounds v to the nearest integer and returns it as two
// uppercase hex digits. Values that round outside [0,255] fail with ErrRange.
func EncodeChannel(v float64) (string, error) {
	if math.IsNaN(v) {
		return "", fmt.Errorf("%w: channel value is NaN", ErrRange)
	}
	rounded := math.Round(v)
	if rounded < 0 || rounded > maxChannel {
		return "", fmt.Errorf("%w: channel value %g rounds to %g", ErrRange, v, rounded)
	}
	return encodeByte(uint8(rounded)), nil
}

// DecodeChannel parses exactly two hex digits.
func DecodeChannel(pair string) (uint8, error) {
	if len(pair) != 2 {
		return 0, fmt.Errorf("%w: %q is not a 2-digit hex pair", ErrFormat, pair)
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrFormat, pair)
	}
	return uint8(v), nil
}

// ExpandShortHex turns the legacy "#RGB" form into "#RRGGBB" by doubling
// each digit. Strings already in the long form are validated and returned
// canonicalized.
func ExpandShortHex(s string) (string, error) {
	if len(s) == shortLength && strings.HasPrefix(s, hexPrefix) {
		var b strings.Builder
		b.WriteString(hexPrefix)
		for _, r := range s[1:] {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	}
	c, err := FromHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

var channelNames = [3]string{"red", "green", "blue"}

const hexDigits = "0123456789ABCDEF"

func encodeByte(v uint8) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0x0F]})
}
