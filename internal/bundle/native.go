package bundle

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jackmordaunt/icns/v3"

	"github.com/Mavwarf/iconkit/internal/iconset"
	"github.com/Mavwarf/iconkit/internal/paths"
)

// Native encodes the .icns file in-process from the largest iconset
// member. It needs no external tool and is therefore always available.
type Native struct{}

func (Native) Name() string    { return "native" }
func (Native) Available() bool { return true }

// Compile reads the 1024 px rendition (icon_512x512@2x.png, falling back to
// icon_1024x1024.png) and writes the encoded bundle to out.
func (Native) Compile(iconsetDir, out string) (string, error) {
	var lastErr error
	for _, name := range []string{iconset.IconName(512, true), iconset.IconName(1024, false)} {
		img, err := iconset.Open(filepath.Join(iconsetDir, name))
		if err != nil {
			lastErr = err
			continue
		}
		var buf bytes.Buffer
		if err := icns.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encoding icns: %w", err)
		}
		if err := paths.AtomicWrite(out, buf.Bytes()); err != nil {
			return "", err
		}
		return out, nil
	}
	return "", fmt.Errorf("no 1024px image in %s: %w", iconsetDir, lastErr)
}
