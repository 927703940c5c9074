// mkicon writes a single square PNG icon from a source image, using the
// same normalize + Lanczos path as iconkit.
// Usage: go run ./cmd/mkicon <source> <output.png> [size]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/iconkit/internal/iconset"
	"github.com/Mavwarf/iconkit/internal/paths"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: mkicon <source> <output.png> [size]")
	}
	size := iconset.AppIconSize
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 {
			return fmt.Errorf("size must be a positive number, got %q", args[2])
		}
		size = n
	}

	src, err := iconset.Open(args[0])
	if err != nil {
		return err
	}
	img, err := iconset.Resize(iconset.Normalize(src, iconset.AlphaOptions{}), size)
	if err != nil {
		return err
	}
	data, err := iconset.EncodePNG(img)
	if err != nil {
		return err
	}
	return paths.AtomicWrite(args[1], data)
}
