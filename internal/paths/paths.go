package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "iconkit"
	ConfigFileName = "iconkit-config.json"
	HistoryLogName = "iconkit.log"
	HistoryDBName  = "iconkit.db"
	DirPerm        = 0755
	FilePerm       = 0644

	DefaultSourceName = "logo.png"
	IconsetDirName    = "icon.iconset"
	BundleFileName    = "icon.icns"
	FaviconDirName    = "favicon"
)

// Layout holds every filesystem location a run touches, resolved once from
// an explicit project root.
type Layout struct {
	Root       string
	Source     string
	OutputDir  string
	IconsetDir string
	FaviconDir string
	BundlePath string
}

// NewLayout resolves the fixed project layout under root:
//
//	<root>/frontend/assets/icons/<sourceName>   source logo
//	<root>/frontend/assets/icons/               output root
//	<root>/frontend/assets/icons/icon.iconset/  iconset
//	<root>/frontend/assets/favicon/             favicons (sibling of the output root)
//	<root>/frontend/assets/icons/icon.icns      compiled bundle
//
// An empty sourceName falls back to DefaultSourceName.
func NewLayout(root, sourceName string) Layout {
	if sourceName == "" {
		sourceName = DefaultSourceName
	}
	out := filepath.Join(root, "frontend", "assets", "icons")
	return Layout{
		Root:       root,
		Source:     filepath.Join(out, sourceName),
		OutputDir:  out,
		IconsetDir: filepath.Join(out, IconsetDirName),
		FaviconDir: filepath.Join(out, "..", FaviconDirName),
		BundlePath: filepath.Join(out, BundleFileName),
	}
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for iconkit:
//   - Windows: %APPDATA%\iconkit
//   - Unix:    ~/.config/iconkit
//
// Falls back to os.TempDir()/iconkit if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
