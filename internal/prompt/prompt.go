// Package prompt asks the interactive questions of the stamp command.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before the image path is answered.
var ErrNoInput = errors.New("no input")

// Prompter reads one answer per line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. End of input counts as
// an empty answer.
func (p *Prompter) Ask(question string) (string, error) {
	line, err := p.AskRaw(question)
	return strings.TrimSpace(line), err
}

// AskRaw is Ask without trimming: only the line ending is removed.
func (p *Prompter) AskRaw(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ImagePath asks for the source image.
func (p *Prompter) ImagePath() (string, error) {
	path, err := p.Ask("Image file path: ")
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrNoInput
	}
	return path, nil
}

// Text shows the default text and asks whether to replace it. It returns
// the custom text exactly as typed, or "" when the default is kept. An
// empty custom answer also keeps the default.
func (p *Prompter) Text(defaultText string) (string, error) {
	fmt.Fprintf(p.out, "Default watermark text: %s\n", defaultText)
	answer, err := p.Ask("Use custom text? (y/n): ")
	if err != nil || !strings.EqualFold(answer, "y") {
		return "", err
	}
	return p.AskRaw("Custom text: ")
}

// FontSize asks for the point size as raw input.
func (p *Prompter) FontSize(def int) (string, error) {
	return p.Ask(fmt.Sprintf("Font size (default %d): ", def))
}

// Color asks for an "R,G,B[,alpha]" tuple as raw input.
func (p *Prompter) Color() (string, error) {
	return p.Ask("Font color (default white, format R,G,B[,alpha], e.g. 255,255,255,150): ")
}

// Position shows the placement menu and returns the raw selection.
func (p *Prompter) Position() (string, error) {
	fmt.Fprintln(p.out, "Watermark position:")
	fmt.Fprintln(p.out, "  1. top left")
	fmt.Fprintln(p.out, "  2. top right")
	fmt.Fprintln(p.out, "  3. bottom left")
	fmt.Fprintln(p.out, "  4. bottom right")
	fmt.Fprintln(p.out, "  5. center")
	return p.Ask("Choose (default 5): ")
}
