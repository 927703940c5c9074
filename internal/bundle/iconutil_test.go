package bundle

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeTool writes an executable shell script standing in for iconutil.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-ins need a POSIX shell")
	}
	p := filepath.Join(t.TempDir(), "fake-iconutil")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestIconutilMissingTool(t *testing.T) {
	if _, err := exec.LookPath(DefaultIconutil); err == nil {
		t.Skip("iconutil is installed, skipping missing-iconutil test")
	}

	c := Iconutil{}
	if c.Available() {
		t.Fatal("Available() = true without iconutil on PATH")
	}
	_, err := c.Compile("icon.iconset", "icon.icns")
	if err == nil {
		t.Fatal("expected error when iconutil is not installed")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should mention not found, got: %v", err)
	}
}

func TestIconutilBadInput(t *testing.T) {
	if _, err := exec.LookPath(DefaultIconutil); err != nil {
		t.Skip("iconutil not installed, skipping bad-input test")
	}

	_, err := Iconutil{}.Compile("/nonexistent/icon.iconset", filepath.Join(t.TempDir(), "icon.icns"))
	if err == nil {
		t.Fatal("expected error for nonexistent iconset")
	}
}

func TestIconutilPassesArguments(t *testing.T) {
	// $1=-c $2=icns $3=<iconset> $4=-o $5=<out>
	bin := fakeTool(t, `[ "$1" = "-c" ] && [ "$2" = "icns" ] && [ "$4" = "-o" ] && [ -d "$3" ] && printf icns > "$5"`)
	iconsetDir := t.TempDir()
	out := filepath.Join(t.TempDir(), "icon.icns")

	c := Iconutil{Bin: bin}
	if !c.Available() {
		t.Fatal("fake tool should be available")
	}
	got, err := c.Compile(iconsetDir, out)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got != out {
		t.Errorf("Compile returned %q, want %q", got, out)
	}
	data, _ := os.ReadFile(out)
	if string(data) != "icns" {
		t.Errorf("output = %q", data)
	}
}

func TestIconutilNoOutputIsError(t *testing.T) {
	bin := fakeTool(t, "exit 0")
	_, err := Iconutil{Bin: bin}.Compile(t.TempDir(), filepath.Join(t.TempDir(), "icon.icns"))
	if err == nil || !strings.Contains(err.Error(), "no output") {
		t.Fatalf("err = %v, want no-output error", err)
	}
}

func TestIconutilFailureIncludesOutput(t *testing.T) {
	bin := fakeTool(t, "echo 'invalid iconset' >&2; exit 1")
	_, err := Iconutil{Bin: bin}.Compile(t.TempDir(), filepath.Join(t.TempDir(), "icon.icns"))
	if err == nil {
		t.Fatal("expected error from failing tool")
	}
	if !strings.Contains(err.Error(), "invalid iconset") {
		t.Errorf("error should carry tool output, got: %v", err)
	}
}
