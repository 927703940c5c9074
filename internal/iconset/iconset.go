// Package iconset turns one source logo into the fixed set of desktop and
// web icon PNGs: a macOS .iconset directory, a flat app icon and two
// favicons.
package iconset

import (
	"fmt"
	"path/filepath"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// MaxSize is the largest standard size; @2x renditions never exceed it.
const MaxSize = 1024

// Sizes is the standard size set, ascending.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

const (
	AppIconName    = "app-icon.png"
	AppIconSize    = 256
	FaviconName    = "favicon-32x32.png"
	FaviconSize    = 32
	TouchIconName  = "apple-touch-icon.png"
	TouchIconSize  = 180
	retinaSuffix   = "@2x"
	iconNameFormat = "icon_%dx%d%s.png"
)

// Target is one PNG a run writes. Size is the pixel side length, which for
// an @2x rendition is twice the nominal size in Name.
type Target struct {
	Name string
	Dir  string
	Size int
}

// Path returns the absolute file path of the target.
func (t Target) Path() string {
	return filepath.Join(t.Dir, t.Name)
}

// IconName returns the iconset file name for nominal size s.
func IconName(s int, retina bool) string {
	suffix := ""
	if retina {
		suffix = retinaSuffix
	}
	return fmt.Sprintf(iconNameFormat, s, s, suffix)
}

// HasRetina reports whether nominal size s gets an @2x rendition.
func HasRetina(s int) bool {
	return 2*s <= MaxSize
}

// Plan lists every PNG a run writes, in emission order: each standard size
// followed by its @2x rendition, then the app icon, then the favicons.
func Plan(l paths.Layout) []Target {
	targets := make([]Target, 0, 2*len(Sizes)+3)
	for _, s := range Sizes {
		targets = append(targets, Target{Name: IconName(s, false), Dir: l.IconsetDir, Size: s})
		if HasRetina(s) {
			targets = append(targets, Target{Name: IconName(s, true), Dir: l.IconsetDir, Size: 2 * s})
		}
	}
	return append(targets,
		Target{Name: AppIconName, Dir: l.OutputDir, Size: AppIconSize},
		Target{Name: FaviconName, Dir: l.FaviconDir, Size: FaviconSize},
		Target{Name: TouchIconName, Dir: l.FaviconDir, Size: TouchIconSize},
	)
}
