package paths

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLayout(t *testing.T) {
	root := filepath.Join("proj", "app")
	l := NewLayout(root, "brand.png")

	tests := []struct {
		name, got, want string
	}{
		{"Source", l.Source, filepath.Join(root, "frontend", "assets", "icons", "brand.png")},
		{"OutputDir", l.OutputDir, filepath.Join(root, "frontend", "assets", "icons")},
		{"IconsetDir", l.IconsetDir, filepath.Join(root, "frontend", "assets", "icons", "icon.iconset")},
		{"FaviconDir", l.FaviconDir, filepath.Join(root, "frontend", "assets", "favicon")},
		{"BundlePath", l.BundlePath, filepath.Join(root, "frontend", "assets", "icons", "icon.icns")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestNewLayoutDefaultSource(t *testing.T) {
	l := NewLayout("root", "")
	if filepath.Base(l.Source) != DefaultSourceName {
		t.Errorf("Source = %q, want base %q", l.Source, DefaultSourceName)
	}
}

func TestFaviconDirIsSiblingOfOutput(t *testing.T) {
	l := NewLayout(t.TempDir(), "")
	if filepath.Dir(l.FaviconDir) != filepath.Dir(l.OutputDir) {
		t.Errorf("FaviconDir %q and OutputDir %q should share a parent", l.FaviconDir, l.OutputDir)
	}
}

func TestAtomicWriteCreatesParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "out.png")
	if err := AtomicWrite(p, []byte("data")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("data")) {
		t.Errorf("content = %q, want %q", got, "data")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should be gone, stat err = %v", err)
	}
}

func TestAtomicWriteOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.png")
	if err := AtomicWrite(p, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(p)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestDataDirUsesAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Setenv("APPDATA", "/fake/appdata")
	got := DataDir()
	want := filepath.Join("/fake/appdata", AppDirName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestDataDirFallsBackWithoutAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Unsetenv("APPDATA")
	got := DataDir()

	if filepath.Base(got) != AppDirName {
		t.Errorf("DataDir() = %q, expected base dir %q", got, AppDirName)
	}
}
