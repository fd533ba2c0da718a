package image

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultAlpha is applied when a color tuple omits its alpha component.
const DefaultAlpha = 150

// DefaultColor is white at DefaultAlpha.
var DefaultColor = color.NRGBA{R: 255, G: 255, B: 255, A: DefaultAlpha}

// ErrInvalidColor reports a color tuple that could not be parsed as a whole.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses "r,g,b" or "r,g,b,alpha" with every component in [0,255].
// The tuple is accepted whole or not at all; callers decide on the fallback.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q needs 3 or 4 components", ErrInvalidColor, s)
	}

	var c [4]uint8
	c[3] = DefaultAlpha
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		if v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: %q: component %d out of range", ErrInvalidColor, s, v)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
