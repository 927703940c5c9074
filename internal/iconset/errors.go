package iconset

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind int

const (
	SourceMissing Kind = iota + 1
	DecodeFailed
	ResizeFailed
	WriteFailed
)

func (k Kind) String() string {
	switch k {
	case SourceMissing:
		return "source missing"
	case DecodeFailed:
		return "decode failed"
	case ResizeFailed:
		return "resize failed"
	case WriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// ExitCode maps the kind to a distinct process exit status (2-5).
// 1 stays reserved for usage and config errors.
func (k Kind) ExitCode() int {
	if k < SourceMissing || k > WriteFailed {
		return 1
	}
	return int(k) + 1
}

// Error is the single failure type returned by Generate.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
