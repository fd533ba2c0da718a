package image

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Processor provides image processing functions
type Processor struct {
	renderer *TextRenderer
}

// NewProcessor creates a new image processor drawing text with r.
// A nil renderer falls back to the embedded bold face.
func NewProcessor(r *TextRenderer) (*Processor, error) {
	if r == nil {
		var err error
		if r, err = NewTextRenderer(nil); err != nil {
			return nil, err
		}
	}
	return &Processor{renderer: r}, nil
}

// Flatten composites img over opaque black into a new buffer of the same size,
// matching an RGB destination without its own alpha channel.
func Flatten(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.Black)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
