package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_FullSession(t *testing.T) {
	in := strings.NewReader("/photos/trip/img1.jpg\ny\nHello World\n48\n255,0,0,200\n4\n")
	var out bytes.Buffer
	p := New(in, &out)

	path, err := p.ImagePath()
	require.NoError(t, err)
	assert.Equal(t, "/photos/trip/img1.jpg", path)

	text, err := p.Text("2023-07-15")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)

	size, err := p.FontSize(30)
	require.NoError(t, err)
	assert.Equal(t, "48", size)

	color, err := p.Color()
	require.NoError(t, err)
	assert.Equal(t, "255,0,0,200", color)

	pos, err := p.Position()
	require.NoError(t, err)
	assert.Equal(t, "4", pos)

	transcript := out.String()
	assert.Contains(t, transcript, "Default watermark text: 2023-07-15")
	assert.Contains(t, transcript, "Font size (default 30)")
	assert.Contains(t, transcript, "5. center")
}

func TestPrompter_DefaultsOnEmptyAnswers(t *testing.T) {
	p := New(strings.NewReader("a.png\nn\n\n\n\n"), &bytes.Buffer{})

	_, err := p.ImagePath()
	require.NoError(t, err)

	text, err := p.Text("2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, text)

	for _, ask := range []func() (string, error){
		func() (string, error) { return p.FontSize(30) },
		p.Color,
		p.Position,
	} {
		answer, err := ask()
		require.NoError(t, err)
		assert.Empty(t, answer)
	}
}

func TestPrompter_CustomTextCaseInsensitive(t *testing.T) {
	p := New(strings.NewReader("Y\nok\n"), &bytes.Buffer{})

	text, err := p.Text("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestPrompter_CustomTextKeepsSpaces(t *testing.T) {
	p := New(strings.NewReader("y\n  spaced  \r\n"), &bytes.Buffer{})

	text, err := p.Text("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", text)
}

func TestPrompter_AskRaw(t *testing.T) {
	p := New(strings.NewReader(" a b \n\tlast"), &bytes.Buffer{})

	first, err := p.AskRaw("? ")
	require.NoError(t, err)
	assert.Equal(t, " a b ", first)

	second, err := p.AskRaw("? ")
	require.NoError(t, err)
	assert.Equal(t, "\tlast", second)
}

func TestPrompter_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.ImagePath()
	assert.ErrorIs(t, err, ErrNoInput)

	answer, err := p.Ask("anything? ")
	assert.NoError(t, err)
	assert.Empty(t, answer)
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("photo.jpg"), &bytes.Buffer{})

	path, err := p.ImagePath()
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", path)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestPrompter_ReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask("question? ")
	assert.EqualError(t, err, "tty closed")
}
