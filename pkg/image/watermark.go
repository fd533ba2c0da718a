package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Padding is the margin in pixels between the text and the nearest canvas edge.
const Padding = 20

// Position is one of the five placement anchors.
type Position int

const (
	PositionCenter Position = iota
	PositionTopLeft
	PositionTopRight
	PositionBottomLeft
	PositionBottomRight
)

// ErrInvalidPosition reports an unrecognised position selector.
var ErrInvalidPosition = errors.New("invalid position")

var positionNames = map[Position]string{
	PositionTopLeft:     "top-left",
	PositionTopRight:    "top-right",
	PositionBottomLeft:  "bottom-left",
	PositionBottomRight: "bottom-right",
	PositionCenter:      "center",
}

// String returns the kebab-case name of p.
func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition accepts a menu selector "1".."5" or a name such as
// "top-left", "TOP_RIGHT" or "center".
func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	switch key {
	case "1", "top-left":
		return PositionTopLeft, nil
	case "2", "top-right":
		return PositionTopRight, nil
	case "3", "bottom-left":
		return PositionBottomLeft, nil
	case "4", "bottom-right":
		return PositionBottomRight, nil
	case "5", "center", "centre":
		return PositionCenter, nil
	default:
		return PositionCenter, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Place returns the draw origin for text of the given size: x is the left
// edge of the first glyph and y is the baseline. Coordinates are not clamped,
// so oversized text may start left of the canvas or run past its edges.
func Place(canvasW, canvasH, textW, textH int, pos Position, padding int) image.Point {
	switch pos {
	case PositionTopLeft:
		return image.Pt(padding, padding+textH)
	case PositionTopRight:
		return image.Pt(canvasW-textW-padding, padding+textH)
	case PositionBottomLeft:
		return image.Pt(padding, canvasH-padding)
	case PositionBottomRight:
		return image.Pt(canvasW-textW-padding, canvasH-padding)
	case PositionCenter:
		fallthrough
	default:
		return image.Pt((canvasW-textW)/2, (canvasH+textH)/2)
	}
}

// Watermark describes a single text stamp.
type Watermark struct {
	Text     string
	FontSize int
	Color    color.NRGBA
	Position Position
}

// AddWatermark draws wm onto an opaque copy of img and returns the copy.
// img itself is never modified.
func (p *Processor) AddWatermark(img image.Image, wm Watermark) (*image.NRGBA, error) {
	face, err := p.renderer.Face(wm.FontSize)
	if err != nil {
		return nil, err
	}

	canvas := Flatten(img)
	bounds := canvas.Bounds()

	metrics := MeasureText(face, wm.Text)
	origin := Place(bounds.Dx(), bounds.Dy(), metrics.Width, metrics.Height, wm.Position, Padding)

	DrawText(canvas, face, wm.Text, origin, wm.Color)
	return canvas, nil
}
