package stamp

import (
	"image/color"
	"strings"

	"go.uber.org/zap"

	"github.com/code-100-precent/LingStamp/pkg/image"
	"github.com/code-100-precent/LingStamp/pkg/logger"
)

// Style is the resolved appearance of a watermark.
type Style struct {
	Text     string
	FontSize int
	Color    color.NRGBA
	Position image.Position
}

// DefaultStyle returns size 30, white at alpha 150, centered, with no text.
func DefaultStyle() Style {
	return Style{
		FontSize: image.DefaultFontSize,
		Color:    image.DefaultColor,
		Position: image.PositionCenter,
	}
}

// StyleInput holds raw user answers before parsing. Empty fields take defaults.
type StyleInput struct {
	Text     string
	FontSize string
	Color    string
	Position string
}

// ParseStyle turns raw answers into a Style. A field that fails to parse is
// replaced by its default as a whole and a warning is logged; ParseStyle
// itself never fails.
func ParseStyle(in StyleInput) Style {
	style := DefaultStyle()
	style.Text = in.Text

	if s := strings.TrimSpace(in.FontSize); s != "" {
		if size, err := image.ParseFontSize(s); err != nil {
			logger.Warn("invalid font size, using default", zap.String("input", in.FontSize), zap.Int("default", style.FontSize), zap.Error(err))
		} else {
			style.FontSize = size
		}
	}

	if s := strings.TrimSpace(in.Color); s != "" {
		if c, err := image.ParseColor(s); err != nil {
			logger.Warn("invalid color, using default white", zap.String("input", in.Color), zap.Error(err))
		} else {
			style.Color = c
		}
	}

	if s := strings.TrimSpace(in.Position); s != "" {
		if pos, err := image.ParsePosition(s); err != nil {
			logger.Warn("invalid position, using center", zap.String("input", in.Position), zap.Error(err))
		} else {
			style.Position = pos
		}
	}

	return style
}
