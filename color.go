// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColor is returned by ParseColor for tokens it cannot interpret.
var ErrInvalidColor = errors.New("ortskurve: invalid color")

// ParseColor interprets a stroke style token.
// Supported forms:
//   - CSS hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (the '#' is required)
//   - CSS/SVG color keywords such as "green" or "SteelBlue", case-insensitive
//   - "transparent"
//
// Surrounding whitespace is ignored.
func ParseColor(style string) (color.NRGBA, error) {
	s := strings.TrimSpace(style)
	if strings.HasPrefix(s, "#") {
		c, ok := parseHexColor(s[1:])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, style)
		}
		return c, nil
	}

	name := cases.Fold().String(s)
	if name == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, style)
}

// parseHexColor parses the digits of a hex color without the leading '#'.
func parseHexColor(hex string) (color.NRGBA, bool) {
	var v [8]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok || i >= len(v) {
			return color.NRGBA{}, false
		}
		v[i] = d
	}

	switch len(hex) {
	case 3: // RGB
		return color.NRGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 255}, true
	case 4: // RGBA
		return color.NRGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: v[3] * 17}, true
	case 6: // RRGGBB
		return color.NRGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 255}, true
	case 8: // RRGGBBAA
		return color.NRGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, true
	}
	return color.NRGBA{}, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
