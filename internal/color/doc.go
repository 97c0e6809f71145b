// Package color provides the RGB color value used across palettectl and its
// hexadecimal codec.
//
// A Color is an 8-bit-per-channel RGB triple. Its canonical serialized form
// is a '#' followed by six uppercase hexadecimal digits, two per channel:
//
//	c, err := color.FromHex("#6DCE81")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Hex()) // #6DCE81
//
// # Construction
//
// Colors are built through validated factories only:
//   - FromRGB: integer channels, each in [0,255]
//   - FromHex: exactly "#RRGGBB", lowercase digits accepted
//
// The zero Color is black and is always valid.
//
// # Errors
//
// Malformed strings fail with ErrFormat and out-of-range numbers with
// ErrRange. Both are wrapped with context, so callers match them with
// errors.Is:
//
//	if _, err := color.FromHex("6DCE81"); errors.Is(err, color.ErrFormat) {
//	    // missing '#'
//	}
//
// # Short Form
//
// The three-digit "#RGB" form is not accepted by FromHex. ExpandShortHex
// converts it to the canonical six-digit form for callers that opt in.
package color
