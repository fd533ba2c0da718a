package image

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates a test image with the specified dimensions
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), 128, 255})
		}
	}
	return img
}

func fillRGBA(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// countDark counts pixels inside r whose channels are all below 128.
func countDark(img image.Image, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr>>8 < 128 && cg>>8 < 128 && cb>>8 < 128 {
				n++
			}
		}
	}
	return n
}

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	r, err := NewTextRenderer(nil)
	if err != nil {
		t.Fatalf("new text renderer: %v", err)
	}
	p, err := NewProcessor(r)
	if err != nil {
		t.Fatalf("new processor: %v", err)
	}
	return p
}
