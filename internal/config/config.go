package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// Alpha handling modes for transparent sources.
const (
	AlphaDiscard = "discard"
	AlphaFlatten = "flatten"
)

// Bundle compiler modes.
const (
	BundleAuto     = "auto"
	BundleIconutil = "iconutil"
	BundleNative   = "native"
	BundleOff      = "off"
)

// History storage backends.
const (
	HistoryOff    = "off"
	HistoryFile   = "file"
	HistorySQLite = "sqlite"
)

// DefaultBackground is the flatten colour when none is configured.
const DefaultBackground = "#ffffff"

// Config holds every setting a run reads. All fields are optional.
type Config struct {
	ProjectRoot string `json:"project_root,omitempty"`
	Source      string `json:"source,omitempty"`
	Alpha       string `json:"alpha,omitempty"`      // "discard" | "flatten"
	Background  string `json:"background,omitempty"` // "#rrggbb", alpha=flatten
	Bundle      string `json:"bundle,omitempty"`     // "auto" | "iconutil" | "native" | "off"
	History     string `json:"history,omitempty"`    // "off" | "file" | "sqlite"
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{
		Source:     paths.DefaultSourceName,
		Alpha:      AlphaDiscard,
		Background: DefaultBackground,
		Bundle:     BundleAuto,
		History:    HistoryOff,
	}
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. iconkit-config.json next to the running binary
//  3. ~/.config/iconkit/iconkit-config.json
//
// When none of these exist the built-in defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown mode names and malformed colours.
func (c Config) Validate() error {
	switch c.Alpha {
	case "", AlphaDiscard, AlphaFlatten:
	default:
		return fmt.Errorf("alpha must be %q or %q, got %q", AlphaDiscard, AlphaFlatten, c.Alpha)
	}
	switch c.Bundle {
	case "", BundleAuto, BundleIconutil, BundleNative, BundleOff:
	default:
		return fmt.Errorf("unknown bundle mode %q", c.Bundle)
	}
	switch c.History {
	case "", HistoryOff, HistoryFile, HistorySQLite:
	default:
		return fmt.Errorf("unknown history store %q", c.History)
	}
	if c.Background != "" {
		if _, err := ParseHexColor(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if strings.ContainsAny(c.Source, `/\`) {
		return fmt.Errorf("source must be a file name, got %q", c.Source)
	}
	return nil
}

// ResolveRoot picks the project root: CLI flag > config > working directory.
func (c Config) ResolveRoot(flagRoot string) (string, error) {
	root := flagRoot
	if root == "" {
		root = c.ProjectRoot
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		root = wd
	}
	return filepath.Abs(root)
}

// BackgroundColor returns the parsed flatten colour, or white when unset.
func (c Config) BackgroundColor() color.NRGBA {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return bg
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, errors.New("colour must look like #rrggbb")
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
