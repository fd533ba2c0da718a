package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontSize is the font size in points used when none is given.
	DefaultFontSize = 30

	faceCacheSize = 8

	// glyphCacheEntries must be a power of two. freetype allocates the
	// whole glyph cache up front, sized by the largest glyph.
	glyphCacheEntries = 16
)

// ErrInvalidFontSize reports a font size that is not a positive integer.
var ErrInvalidFontSize = errors.New("invalid font size")

// ParseFontSize parses a positive integer point size.
func ParseFontSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFontSize, n)
	}
	return n, nil
}

// TextMetrics is the pixel box of a string at a given face.
type TextMetrics struct {
	Width  int
	Height int
}

// TextRenderer holds a parsed TrueType font and caches faces by size.
// Faces keep glyph caches and are not safe for concurrent use, so each
// renderer must stay with a single goroutine.
type TextRenderer struct {
	font  *truetype.Font
	faces *lru.Cache[int, font.Face]
}

// NewTextRenderer parses ttf. Empty data selects the embedded Go Bold face.
func NewTextRenderer(ttf []byte) (*TextRenderer, error) {
	if len(ttf) == 0 {
		ttf = gobold.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	faces, err := lru.New[int, font.Face](faceCacheSize)
	if err != nil {
		return nil, err
	}
	return &TextRenderer{font: f, faces: faces}, nil
}

// LoadTextRenderer reads a TrueType file from path, or uses the embedded
// face when path is empty.
func LoadTextRenderer(path string) (*TextRenderer, error) {
	if path == "" {
		return NewTextRenderer(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return NewTextRenderer(data)
}

// Face returns the face for size points at 72 DPI, so one point is one pixel.
func (r *TextRenderer) Face(size int) (font.Face, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	if face, ok := r.faces.Get(size); ok {
		return face, nil
	}
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:              float64(size),
		DPI:               72,
		Hinting:           font.HintingNone,
		GlyphCacheEntries: glyphCacheEntries,
	})
	r.faces.Add(size, face)
	return face, nil
}

// MeasureText returns the advance width and the ascent+descent height of text.
func MeasureText(face font.Face, text string) TextMetrics {
	m := face.Metrics()
	return TextMetrics{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}
}

// DrawText draws text with its baseline starting at origin. The color's alpha
// blends each glyph over the existing pixels.
func DrawText(dst draw.Image, face font.Face, text string, origin image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(text)
}
