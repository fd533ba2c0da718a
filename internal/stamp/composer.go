// Package stamp composes text watermarks onto photos and saves the result
// next to the source.
package stamp

import (
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/code-100-precent/LingStamp/pkg/image"
	"github.com/code-100-precent/LingStamp/pkg/logger"
	"github.com/code-100-precent/LingStamp/pkg/metadata"
)

// DateSource looks up the capture date of an image as YYYY-MM-DD.
type DateSource interface {
	CaptureDate(path string) (string, bool)
}

// Options configures a Composer. Zero values select defaults.
type Options struct {
	// Formats is the extension whitelist for source images.
	Formats image.FormatSet
	// Quality is the JPEG quality of the output, 1..100.
	Quality int
	// Renderer draws the text; nil uses the embedded bold face.
	Renderer *image.TextRenderer
	Dates    DateSource
	Now      func() time.Time
}

// Composer stamps one image at a time. It is not safe for concurrent use
// because font faces keep per-glyph caches.
type Composer struct {
	formats   image.FormatSet
	quality   int
	processor *image.Processor
	dates     DateSource
	now       func() time.Time
}

// NewComposer creates a Composer from opts.
func NewComposer(opts Options) (*Composer, error) {
	processor, err := image.NewProcessor(opts.Renderer)
	if err != nil {
		return nil, err
	}

	c := &Composer{
		formats:   opts.Formats,
		quality:   opts.Quality,
		processor: processor,
		dates:     opts.Dates,
		now:       opts.Now,
	}
	if len(c.formats) == 0 {
		c.formats = image.DefaultFormatSet()
	}
	if c.quality < 1 || c.quality > 100 {
		c.quality = image.DefaultQuality
	}
	if c.dates == nil {
		c.dates = metadata.NewResolver()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c, nil
}

// Formats returns the accepted source extensions.
func (c *Composer) Formats() image.FormatSet {
	return c.formats
}

// Validate checks that path exists, is a regular file and has an accepted
// extension. Failures are *ReadError.
func (c *Composer) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &ReadError{Path: path, Err: ErrNotRegularFile}
	}
	if !c.formats.Supports(path) {
		return &ReadError{
			Path: path,
			Err:  fmt.Errorf("%w (supported: %s)", image.ErrUnsupportedFormat, c.formats),
		}
	}
	return nil
}

// ResolveText picks the watermark text: custom when non-empty, else the
// capture date, else today's date with a warning.
func (c *Composer) ResolveText(sourcePath, custom string) string {
	if custom != "" {
		return custom
	}
	if date, ok := c.dates.CaptureDate(sourcePath); ok {
		return date
	}

	today := c.now().Format(metadata.DateLayout)
	logger.Warn("capture date unavailable, using current date",
		zap.String("path", sourcePath),
		zap.String("date", today))
	return today
}

// Render draws style onto an opaque copy of src. src is left untouched and
// the same inputs always give the same pixels.
func (c *Composer) Render(src stdimage.Image, style Style) (*stdimage.NRGBA, error) {
	return c.processor.AddWatermark(src, image.Watermark{
		Text:     style.Text,
		FontSize: style.FontSize,
		Color:    style.Color,
		Position: style.Position,
	})
}

// Compose watermarks the image at sourcePath and writes it to OutputPath.
// An empty style.Text is resolved with ResolveText. It returns the path
// written.
func (c *Composer) Compose(sourcePath string, style Style) (string, error) {
	if err := c.Validate(sourcePath); err != nil {
		return "", err
	}

	src, _, err := image.DecodeFile(sourcePath)
	if err != nil {
		return "", &ReadError{Path: sourcePath, Err: err}
	}

	style.Text = c.ResolveText(sourcePath, style.Text)
	canvas, err := c.Render(src, style)
	if err != nil {
		return "", fmt.Errorf("render watermark: %w", err)
	}

	out := OutputPath(sourcePath)
	if err := image.EnsureDir(filepath.Dir(out)); err != nil {
		return "", &WriteError{Path: out, Err: err}
	}
	if err := image.SaveJPEG(canvas, out, c.quality); err != nil {
		return "", &WriteError{Path: out, Err: err}
	}

	logger.Info("watermark saved",
		zap.String("source", sourcePath),
		zap.String("output", out),
		zap.String("text", style.Text),
		zap.Int("font_size", style.FontSize),
		zap.Stringer("position", style.Position))
	return out, nil
}
