package iconset

import (
	"image"
	"os"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// Generator produces every Plan target for one Layout.
type Generator struct {
	Layout paths.Layout
	Alpha  AlphaOptions

	// Progress, when set, is called after each file is written.
	Progress func(Target)
}

// Result describes a successful run.
type Result struct {
	Source         string
	SourceSize     image.Point
	NormalizedSize int
	Written        []Target
}

// Generate validates the source, normalizes it and writes every target.
// Any failure is returned as *Error. The source is checked before any
// directory is created, so a missing source leaves the tree untouched; a
// later failure leaves already-written files in place.
func (g *Generator) Generate() (Result, error) {
	res := Result{Source: g.Layout.Source}

	if _, err := os.Stat(g.Layout.Source); err != nil {
		return res, &Error{Kind: SourceMissing, Path: g.Layout.Source, Err: err}
	}

	src, err := Open(g.Layout.Source)
	if err != nil {
		return res, &Error{Kind: DecodeFailed, Path: g.Layout.Source, Err: err}
	}
	b := src.Bounds()
	res.SourceSize = image.Pt(b.Dx(), b.Dy())

	norm := Normalize(src, g.Alpha)
	res.NormalizedSize = norm.Bounds().Dx()

	// Several targets share a pixel size (32 appears three times); each
	// size is resampled once from the normalized image and reused.
	encoded := make(map[int][]byte)
	for _, t := range Plan(g.Layout) {
		data, ok := encoded[t.Size]
		if !ok {
			img, err := Resize(norm, t.Size)
			if err != nil {
				return res, &Error{Kind: ResizeFailed, Path: t.Path(), Err: err}
			}
			data, err = EncodePNG(img)
			if err != nil {
				return res, &Error{Kind: WriteFailed, Path: t.Path(), Err: err}
			}
			encoded[t.Size] = data
		}
		if err := paths.AtomicWrite(t.Path(), data); err != nil {
			return res, &Error{Kind: WriteFailed, Path: t.Path(), Err: err}
		}
		res.Written = append(res.Written, t)
		if g.Progress != nil {
			g.Progress(t)
		}
	}
	return res, nil
}
