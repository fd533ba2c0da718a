package stamp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/code-100-precent/LingStamp/pkg/image"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, 30, s.FontSize)
	assert.Equal(t, color.NRGBA{255, 255, 255, 150}, s.Color)
	assert.Equal(t, image.PositionCenter, s.Position)
	assert.Empty(t, s.Text)
}

func TestParseStyle(t *testing.T) {
	s := ParseStyle(StyleInput{
		Text:     "hello",
		FontSize: "48",
		Color:    "255,0,0,200",
		Position: "4",
	})

	assert.Equal(t, Style{
		Text:     "hello",
		FontSize: 48,
		Color:    color.NRGBA{255, 0, 0, 200},
		Position: image.PositionBottomRight,
	}, s)
}

func TestParseStyle_EmptyTakesDefaults(t *testing.T) {
	assert.Equal(t, DefaultStyle(), ParseStyle(StyleInput{}))
}

func TestParseStyle_InvalidFieldsFallBack(t *testing.T) {
	tests := []struct {
		name string
		in   StyleInput
		want Style
	}{
		{
			name: "color out of range",
			in:   StyleInput{Color: "999,0,0", FontSize: "12"},
			want: Style{FontSize: 12, Color: image.DefaultColor, Position: image.PositionCenter},
		},
		{
			name: "partial color",
			in:   StyleInput{Color: "10,20", Position: "top-left"},
			want: Style{FontSize: 30, Color: image.DefaultColor, Position: image.PositionTopLeft},
		},
		{
			name: "bad size",
			in:   StyleInput{FontSize: "huge", Color: "0,0,0"},
			want: Style{FontSize: 30, Color: color.NRGBA{0, 0, 0, 150}, Position: image.PositionCenter},
		},
		{
			name: "zero size",
			in:   StyleInput{FontSize: "0"},
			want: DefaultStyle(),
		},
		{
			name: "bad position",
			in:   StyleInput{Position: "9"},
			want: DefaultStyle(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStyle(tt.in))
		})
	}
}
