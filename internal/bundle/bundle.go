// Package bundle compiles a generated iconset into a single .icns file.
// Compilation is always best-effort: TryCompile is the one place where
// compiler failures are absorbed.
package bundle

import (
	"fmt"

	"github.com/Mavwarf/iconkit/internal/config"
)

// Compiler turns an iconset directory into a bundle file.
type Compiler interface {
	Name() string
	Available() bool
	Compile(iconsetDir, out string) (string, error)
}

// Status is the result class of a TryCompile call.
type Status int

const (
	Skipped Status = iota
	Compiled
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Compiled:
		return "compiled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes what TryCompile did. Compiler is empty when bundling
// was disabled.
type Outcome struct {
	Status   Status
	Compiler string
	Path     string
	Err      error
}

// Select maps a config bundle mode to a compiler. "off" yields nil.
func Select(mode string) Compiler {
	switch mode {
	case config.BundleOff:
		return nil
	case config.BundleNative:
		return Native{}
	default:
		return Iconutil{}
	}
}

// TryCompile runs c against iconsetDir. It never returns an error and
// never panics: a nil or unavailable compiler is Skipped, any compile
// error (or panic) is Failed.
func TryCompile(c Compiler, iconsetDir, out string) (o Outcome) {
	o.Path = out
	if c == nil {
		return o
	}
	o.Compiler = c.Name()
	defer func() {
		if r := recover(); r != nil {
			o.Status = Failed
			o.Err = fmt.Errorf("%s: panic: %v", o.Compiler, r)
		}
	}()

	if !c.Available() {
		return o
	}
	p, err := c.Compile(iconsetDir, out)
	if err != nil {
		o.Status = Failed
		o.Err = err
		return o
	}
	o.Status = Compiled
	o.Path = p
	return o
}
