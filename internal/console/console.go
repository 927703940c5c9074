// Package console prints the human-readable status lines of a run.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer writes status lines. Colour is only used when Out is a terminal.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool

	ok   *color.Color
	warn *color.Color
	bad  *color.Color
	dim  *color.Color
}

// New returns a Printer on stdout/stderr, coloured when stdout is a TTY.
func New(verbose bool) *Printer {
	p := NewPlain(os.Stdout, os.Stderr, verbose)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		p.ok.EnableColor()
		p.warn.EnableColor()
		p.bad.EnableColor()
		p.dim.EnableColor()
	}
	return p
}

// NewPlain returns a Printer that never emits colour codes.
func NewPlain(out, errOut io.Writer, verbose bool) *Printer {
	p := &Printer{
		Out:     out,
		Err:     errOut,
		Verbose: verbose,
		ok:      color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	p.ok.DisableColor()
	p.warn.DisableColor()
	p.bad.DisableColor()
	p.dim.DisableColor()
	return p
}

// Info prints a plain progress line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Detail prints only in verbose mode.
func (p *Printer) Detail(format string, args ...any) {
	if p.Verbose {
		p.dim.Fprintf(p.Out, format+"\n", args...)
	}
}

// Success prints a highlighted completion line.
func (p *Printer) Success(format string, args ...any) {
	p.ok.Fprintf(p.Out, format+"\n", args...)
}

// Warn prints a non-fatal notice to stdout.
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.Out, format+"\n", args...)
}

// Error prints "Error: ..." to stderr.
func (p *Printer) Error(err error) {
	p.bad.Fprint(p.Err, "Error: ")
	fmt.Fprintln(p.Err, err)
}

// Sizes prints the generated size list, e.g. "Sizes: [16 32 64]".
func (p *Printer) Sizes(sizes []int) {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	p.Info("Sizes: [%s]", strings.Join(parts, " "))
}
