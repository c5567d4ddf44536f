// Package interactive implements the menu driven versions of the tools.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/tcnksm/go-input"
)

// eofReader remembers whether the reader beneath it has run out.
type eofReader struct {
	reader io.Reader
	seen   atomic.Bool
}

func (r *eofReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if errors.Is(err, io.EOF) {
		r.seen.Store(true)
	}
	return n, err
}

// Prompt asks questions on a reader and writes everything else the menus
// print to the same writer.
type Prompt struct {
	ui  *input.UI
	in  *eofReader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	reader := &eofReader{reader: in}
	return &Prompt{
		ui: &input.UI{
			Reader: reader,
			Writer: out,
		},
		in:  reader,
		out: out,
	}
}

// Ask prints query followed by ": " and returns the trimmed answer. It
// returns io.EOF once the input has run out.
func (p *Prompt) Ask(query string) (string, error) {
	answer, err := p.ui.Ask(query, &input.Options{HideOrder: true})
	if p.in.seen.Load() && strings.TrimSpace(answer) == "" {
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if errors.Is(err, input.ErrInterrupted) {
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p *Prompt) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompt) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Writer is where the prompt prints, tables render into it.
func (p *Prompt) Writer() io.Writer {
	return p.out
}

// endOfInput turns the error that ended a menu loop into what the loop
// returns, running out of input is a normal way to leave.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
