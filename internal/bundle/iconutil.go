package bundle

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultIconutil is the macOS iconset compiler looked up on PATH.
const DefaultIconutil = "iconutil"

// Iconutil compiles an iconset with Apple's iconutil. Bin overrides the
// executable name or path; empty means DefaultIconutil.
type Iconutil struct {
	Bin string
}

func (i Iconutil) bin() string {
	if i.Bin == "" {
		return DefaultIconutil
	}
	return i.Bin
}

func (i Iconutil) Name() string { return "iconutil" }

// Available reports whether the executable can be found.
func (i Iconutil) Available() bool {
	_, err := exec.LookPath(i.bin())
	return err == nil
}

// Compile runs `iconutil -c icns <iconsetDir> -o <out>`. It only succeeds
// when out exists afterwards. There is no timeout.
func (i Iconutil) Compile(iconsetDir, out string) (string, error) {
	path, err := exec.LookPath(i.bin())
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", i.bin(), err)
	}
	cmd := exec.Command(path, "-c", "icns", iconsetDir, "-o", out)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("iconutil: %w\n%s", err, output)
	}
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("iconutil produced no output: %w", err)
	}
	return out, nil
}
