package image

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// SaveJPEG encodes img as JPEG and writes it to path, replacing any existing file.
// Quality outside 1..100 falls back to DefaultQuality.
func SaveJPEG(img image.Image, path string, quality int) (err error) {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err = jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return nil
}
