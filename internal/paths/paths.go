// Package paths centralizes file and directory names used across the project.
// Default artifact names are defined here as the single source of truth.
package paths

import (
	"os"
	"path/filepath"
)

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Working directory file names.
const (
	ConfigFile = "palettegen.toml"
	InputFile  = "colors.txt"
	LogFile    = "palettegen.log"
)

// Default output artifact names.
const (
	CSSFile          = "palette.css"
	HTMLFile         = "index.html"
	MarkdownFile     = "GUIDELINES.md"
	TailwindFile     = "tailwind.config.js"
	PaletteImageFile = "palette.png"
	LockFile         = ".palettegen.lock"
)

// BinaryName is the installed executable name.
const BinaryName = "palettegen"

// ReleaseManifest is the repo-root manifest the startup version check fetches.
const ReleaseManifest = ".release-manifest.json"

// cacheDirName is the subdirectory under the user cache directory.
const cacheDirName = "palettegen"

// SwatchFile returns the PNG file name for a color slug.
// For example, SwatchFile("fire-red") returns "fire-red.png".
func SwatchFile(slug string) string {
	return slug + ".png"
}

// ///////////////////////////////////////////////
// OutDir
// ///////////////////////////////////////////////

// OutDir provides path construction methods rooted at an output directory.
type OutDir struct {
	Root string
}

// File returns the full path of a named artifact in the output directory.
func (d OutDir) File(name string) string { return filepath.Join(d.Root, name) }

// Swatch returns the full path of a per-color swatch PNG.
func (d OutDir) Swatch(slug string) string { return filepath.Join(d.Root, SwatchFile(slug)) }

// Lock returns the full path of the watch-mode lock file.
func (d OutDir) Lock() string { return filepath.Join(d.Root, LockFile) }

// ///////////////////////////////////////////////
// Cache
// ///////////////////////////////////////////////

// CacheDir returns the palettegen cache root under the user cache directory.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, cacheDirName), nil
}

// FontCacheDir returns the directory downloaded fonts are cached in.
func FontCacheDir() (string, error) {
	base, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "fonts"), nil
}
