package image

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Format represents image format
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatWEBP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ErrUnsupportedFormat is returned when a file extension is outside the accepted set.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultExtensions lists the extensions accepted when no other set is configured.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "bmp", "gif", "tiff"}

// FormatSet is a case-insensitive whitelist of file extensions (without dot).
// Membership is decided by extension only, never by sniffing content.
type FormatSet map[string]struct{}

// NewFormatSet builds a FormatSet from extensions, with or without a leading dot.
func NewFormatSet(exts ...string) FormatSet {
	s := make(FormatSet, len(exts))
	for _, ext := range exts {
		ext = normalizeExt(ext)
		if ext == "" {
			continue
		}
		s[ext] = struct{}{}
	}
	return s
}

// DefaultFormatSet returns a fresh set holding DefaultExtensions.
func DefaultFormatSet() FormatSet {
	return NewFormatSet(DefaultExtensions...)
}

// ParseFormatSet parses a comma separated extension list such as "jpg, png".
// An empty list yields the default set.
func ParseFormatSet(list string) FormatSet {
	s := NewFormatSet(strings.Split(list, ",")...)
	if len(s) == 0 {
		return DefaultFormatSet()
	}
	return s
}

// Supports reports whether path carries an extension in the set.
func (s FormatSet) Supports(path string) bool {
	ext := normalizeExt(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}

// Extensions returns the sorted extensions in the set.
func (s FormatSet) Extensions() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String joins the extensions with ", " for messages.
func (s FormatSet) String() string {
	return strings.Join(s.Extensions(), ", ")
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// DecodeImage decodes image from reader with specified format
func DecodeImage(r io.Reader, format Format) (image.Image, error) {
	switch format {
	case FormatJPEG, "jpg":
		return jpeg.Decode(r)
	case FormatPNG:
		return png.Decode(r)
	case FormatWEBP:
		return webp.Decode(r)
	case FormatBMP:
		return bmp.Decode(r)
	case FormatGIF:
		// first frame only
		return gif.Decode(r)
	case FormatTIFF, "tif":
		return tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeFile opens path and decodes it using the format implied by its extension.
func DecodeFile(path string) (image.Image, Format, error) {
	format := FormatFromFilename(path)
	if !IsValidFormat(format) {
		return nil, format, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}
	defer file.Close()

	img, err := DecodeImage(file, format)
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// FormatFromExtension gets format from file extension.
// Unknown extensions yield an empty Format.
func FormatFromExtension(ext string) Format {
	switch normalizeExt(ext) {
	case "jpg", "jpeg":
		return FormatJPEG
	case "png":
		return FormatPNG
	case "gif":
		return FormatGIF
	case "webp":
		return FormatWEBP
	case "bmp":
		return FormatBMP
	case "tiff", "tif":
		return FormatTIFF
	default:
		return ""
	}
}

// FormatFromFilename gets format from filename
func FormatFromFilename(filename string) Format {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return FormatFromExtension(filename[idx:])
}

// IsValidFormat checks if format is valid
func IsValidFormat(format Format) bool {
	switch format {
	case FormatJPEG, FormatPNG, FormatGIF, FormatWEBP, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}
