// Package metadata reads capture timestamps from embedded image metadata.
package metadata

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bep/imagemeta"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/code-100-precent/LingStamp/pkg/image"
	"github.com/code-100-precent/LingStamp/pkg/logger"
)

const (
	// ExifTimeLayout is the EXIF 2.x timestamp layout.
	ExifTimeLayout = "2006:01:02 15:04:05"
	// DateLayout is the format of dates returned by CaptureDate.
	DateLayout = "2006-01-02"

	dateTimeOriginal = "DateTimeOriginal"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Resolver extracts the original capture date of a photo.
type Resolver struct {
	// Location is used to interpret the zone-less EXIF timestamp.
	Location *time.Location
}

// NewResolver returns a resolver that reads timestamps as local wall clock.
func NewResolver() *Resolver {
	return &Resolver{Location: time.Local}
}

// CaptureDate returns the DateTimeOriginal of the image at path formatted
// as YYYY-MM-DD. A missing file, missing metadata or an unparseable value
// all yield "", false.
func (r *Resolver) CaptureDate(path string) (string, bool) {
	t, ok := r.CaptureTime(path)
	if !ok {
		return "", false
	}
	return t.Format(DateLayout), true
}

// CaptureTime is CaptureDate without the formatting step.
func (r *Resolver) CaptureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("capture date: open failed", zap.String("path", path), zap.Error(err))
		return time.Time{}, false
	}
	defer f.Close()

	raw, err := readExif(f)
	if err != nil || raw == "" {
		raw, err = readImagemeta(f, image.FormatFromFilename(path))
	}
	if err != nil || raw == "" {
		logger.Debug("capture date: no DateTimeOriginal", zap.String("path", path), zap.Error(err))
		return time.Time{}, false
	}

	t, err := ParseExifTime(raw, r.location())
	if err != nil {
		logger.Debug("capture date: bad timestamp", zap.String("path", path), zap.String("value", raw))
		return time.Time{}, false
	}
	return t, true
}

func (r *Resolver) location() *time.Location {
	if r == nil || r.Location == nil {
		return time.Local
	}
	return r.Location
}

// ParseExifTime parses an EXIF timestamp such as "2023:07:15 10:22:00".
// Trailing NULs and blanks that some cameras write are ignored.
func ParseExifTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "\x00 ")
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(ExifTimeLayout, s, loc)
}

// readExif uses goexif, which understands JPEG APP1 segments and bare TIFF.
func readExif(r io.Reader) (s string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, err = "", fmt.Errorf("exif decoder panic: %v", rec)
		}
	}()

	x, err := exif.Decode(r)
	if x == nil {
		return "", err
	}
	if err != nil && exif.IsCriticalError(err) {
		return "", err
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return "", err
	}
	return tag.StringVal()
}

var imagemetaFormats = map[image.Format]imagemeta.ImageFormat{
	image.FormatJPEG: imagemeta.JPEG,
	image.FormatPNG:  imagemeta.PNG,
	image.FormatTIFF: imagemeta.TIFF,
	image.FormatWEBP: imagemeta.WebP,
}

// readImagemeta covers containers goexif does not walk, such as PNG eXIf
// chunks and WebP EXIF chunks. It rewinds f before decoding.
func readImagemeta(f *os.File, format image.Format) (s string, err error) {
	imageFormat, ok := imagemetaFormats[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", image.ErrUnsupportedFormat, format)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			s, err = "", fmt.Errorf("imagemeta panic: %v", rec)
		}
	}()

	_, err = imagemeta.Decode(imagemeta.Options{
		R:           f,
		ImageFormat: imageFormat,
		Sources:     imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return ti.Tag == dateTimeOriginal
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			if ti.Tag == dateTimeOriginal && s == "" {
				s = cast.ToString(ti.Value)
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return s, nil
}
