package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesRequestedSize(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 90, 60)))
	f.Close()

	out := filepath.Join(dir, "out", "icon.png")
	if err := run([]string{src, out, "48"}); err != nil {
		t.Fatal(err)
	}
	of, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer of.Close()
	cfg, err := png.DecodeConfig(of)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 48 || cfg.Height != 48 {
		t.Errorf("size = %dx%d, want 48x48", cfg.Width, cfg.Height)
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"a"}, {"a", "b", "0"}, {"a", "b", "x"}, {"a", "b", "1", "2"}} {
		if err := run(args); err == nil {
			t.Errorf("run(%v) should fail", args)
		}
	}
}

func TestRunMissingSource(t *testing.T) {
	if err := run([]string{filepath.Join(t.TempDir(), "nope.png"), "out.png"}); err == nil {
		t.Error("expected error for missing source")
	}
}
