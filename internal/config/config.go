// Package config handles loading, validation, and persistence of the
// palettegen.toml configuration file.
package config

// Generate config.default.toml in the repo root from ExampleConfig and ConfigDocs.
//go:generate go run ../../cmd/genconfig

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/palettegen/internal/atomicfile"
	"tools.zach/dev/palettegen/internal/migrate"
	"tools.zach/dev/palettegen/internal/paths"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config is the root configuration structure for palettegen.toml.
type Config struct {
	// Version is the config schema version, used for migrations.
	Version int `toml:"version"`

	// Input configures where colors are read from.
	Input InputConfig `toml:"input"`

	// Output configures the output directory and artifact names.
	Output OutputConfig `toml:"output"`

	// HTML configures the generated preview page.
	HTML HTMLConfig `toml:"html"`

	// Image configures PNG swatch rendering.
	Image ImageConfig `toml:"image"`

	// Fonts configures label font resolution for swatch images.
	Fonts FontsConfig `toml:"fonts"`

	// Log contains logging configuration.
	Log LogConfig `toml:"log"`
}

// InputConfig describes the colors file and which entries to drop.
type InputConfig struct {
	// Path is the colors file to read.
	Path string `toml:"path"`

	// Exclude lists glob patterns matched against color slugs.
	// Matching colors are dropped from every output.
	Exclude []string `toml:"exclude"`
}

// OutputConfig names the output directory and every generated artifact.
type OutputConfig struct {
	// Dir is the directory all artifacts are written to.
	Dir string `toml:"dir"`

	// CSSFile is the generated stylesheet name.
	CSSFile string `toml:"css_file"`

	// HTMLFile is the generated preview page name.
	HTMLFile string `toml:"html_file"`

	// MarkdownFile is the generated usage guidelines name.
	MarkdownFile string `toml:"markdown_file"`

	// TailwindFile is the generated Tailwind config name.
	TailwindFile string `toml:"tailwind_file"`

	// PaletteImage is the composite grid image name.
	PaletteImage string `toml:"palette_image"`
}

// HTMLConfig contains preview page settings.
type HTMLConfig struct {
	// Title is the page title and header text of the preview page.
	Title string `toml:"title"`
}

// ImageConfig contains PNG swatch rendering settings.
type ImageConfig struct {
	// Enabled toggles PNG generation. Text outputs are unaffected.
	Enabled bool `toml:"enabled"`

	// Size is the final swatch edge length in pixels.
	Size int `toml:"size"`

	// Scale is the supersampling factor used while rendering.
	Scale int `toml:"scale"`

	// NameFontSize is the point size of the color name label.
	NameFontSize int `toml:"name_font_size"`

	// HexFontSize is the point size of the hex code label.
	HexFontSize int `toml:"hex_font_size"`
}

// FontsConfig controls where label fonts come from.
type FontsConfig struct {
	// Paths lists font files to try first, in order.
	// TTF, OTF, TTC, and WOFF2 files are accepted.
	Paths []string `toml:"paths"`

	// Google is a Google Fonts fallback spec, "google:FAMILY:WEIGHT".
	// Empty disables the download step.
	Google string `toml:"google"`

	// CacheDir overrides where downloaded fonts are cached.
	// Empty uses the user cache directory.
	CacheDir string `toml:"cache_dir"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `toml:"level"`

	// File is an optional log file path. Empty logs to stderr only.
	File string `toml:"file"`

	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: migrate.ConfigVersion,
		Input: InputConfig{
			Path:    paths.InputFile,
			Exclude: []string{},
		},
		Output: OutputConfig{
			Dir:          ".",
			CSSFile:      paths.CSSFile,
			HTMLFile:     paths.HTMLFile,
			MarkdownFile: paths.MarkdownFile,
			TailwindFile: paths.TailwindFile,
			PaletteImage: paths.PaletteImageFile,
		},
		HTML: HTMLConfig{
			Title: "Color Palette",
		},
		Image: ImageConfig{
			Enabled:      true,
			Size:         200,
			Scale:        2,
			NameFontSize: 24,
			HexFontSize:  20,
		},
		Fonts: FontsConfig{
			Paths: []string{},
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// ///////////////////////////////////////////////
// Example Configuration
// ///////////////////////////////////////////////

// ExampleConfig returns a Config suitable for generating config.default.toml.
// For this project all defaults are good examples.
func ExampleConfig() *Config {
	return DefaultConfig()
}

// ///////////////////////////////////////////////
// PeekVersion
// ///////////////////////////////////////////////

// PeekVersion reads just the version field from raw TOML bytes.
// Returns 1 if the version field is missing or zero.
func PeekVersion(data []byte) int {
	var v struct {
		Version int `toml:"version"`
	}
	if err := toml.Unmarshal(data, &v); err != nil {
		return 1
	}
	if v.Version == 0 {
		return 1
	}
	return v.Version
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads and parses the configuration file at path.
// If the file doesn't exist, returns DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	version := PeekVersion(data)

	// Old schemas are upgraded in place; the original bytes are kept in a
	// .bak next to the file.
	upgraded := migrate.Needed(version)
	if upgraded {
		if backupErr := os.WriteFile(path+".bak", data, 0o644); backupErr != nil {
			slog.Warn("failed to write config backup", "error", backupErr)
		}
		var upErr error
		data, _, upErr = migrate.Upgrade(data, version, migrate.ConfigSteps)
		if upErr != nil {
			return nil, fmt.Errorf("upgrade config: %w", upErr)
		}
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Version = migrate.ConfigVersion

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// Re-save after upgrading so the .bak and the file agree on schema.
	if upgraded {
		if err := cfg.Save(path); err != nil {
			slog.Warn("failed to save upgraded config", "error", err)
		}
	}

	return cfg, nil
}

// Save writes the config to disk as TOML using atomic file write.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicfile.Write(path, buf.Bytes(), 0o644)
}

// ///////////////////////////////////////////////
// Environment Overrides
// ///////////////////////////////////////////////

// ApplyEnv overlays PALETTEGEN_* environment variables onto the config.
// Environment sits between the config file and command-line flags in
// precedence, so flags can still override anything set here. Callers
// should re-run [Config.Validate] afterwards.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PALETTEGEN_INPUT"); v != "" {
		c.Input.Path = v
	}
	if v := os.Getenv("PALETTEGEN_OUT"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("PALETTEGEN_TITLE"); v != "" {
		c.HTML.Title = v
	}
	if v := os.Getenv("PALETTEGEN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PALETTEGEN_NO_IMAGES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("ignoring unparsable PALETTEGEN_NO_IMAGES", "value", v)
		} else {
			c.Image.Enabled = !b
		}
	}
	if v := os.Getenv("PALETTEGEN_FONT"); v != "" {
		c.Fonts.Paths = append([]string{v}, c.Fonts.Paths...)
	}
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// validLogLevels is the set of accepted log level strings.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input.path must not be empty")
	}

	for _, pattern := range c.Input.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid input.exclude pattern %q", pattern)
		}
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	names := []struct {
		key   string
		value string
	}{
		{"output.css_file", c.Output.CSSFile},
		{"output.html_file", c.Output.HTMLFile},
		{"output.markdown_file", c.Output.MarkdownFile},
		{"output.tailwind_file", c.Output.TailwindFile},
		{"output.palette_image", c.Output.PaletteImage},
	}
	for _, n := range names {
		if strings.TrimSpace(n.value) == "" {
			return fmt.Errorf("%s must not be empty", n.key)
		}
		if n.value != filepath.Base(n.value) {
			return fmt.Errorf("%s must be a bare file name, got %q", n.key, n.value)
		}
	}

	if c.Image.Size <= 0 {
		return fmt.Errorf("image.size must be > 0, got %d", c.Image.Size)
	}
	if c.Image.Scale <= 0 {
		return fmt.Errorf("image.scale must be > 0, got %d", c.Image.Scale)
	}
	if c.Image.NameFontSize <= 0 {
		return fmt.Errorf("image.name_font_size must be > 0, got %d", c.Image.NameFontSize)
	}
	if c.Image.HexFontSize <= 0 {
		return fmt.Errorf("image.hex_font_size must be > 0, got %d", c.Image.HexFontSize)
	}

	if c.Fonts.Google != "" && !strings.HasPrefix(c.Fonts.Google, "google:") {
		return fmt.Errorf("fonts.google must look like google:FAMILY:WEIGHT, got %q", c.Fonts.Google)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}

	return nil
}

// ///////////////////////////////////////////////
// Exclusion Helpers
// ///////////////////////////////////////////////

// Excluded reports whether a color slug matches any configured exclude pattern.
func (c *Config) Excluded(slug string) bool {
	for _, pattern := range c.Input.Exclude {
		matched, err := doublestar.Match(pattern, slug)
		if err != nil {
			slog.Warn("invalid glob pattern", "pattern", pattern, "error", err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// ///////////////////////////////////////////////
// Path Helpers
// ///////////////////////////////////////////////

// OutDir returns a path builder rooted at the configured output directory.
func (c *Config) OutDir() paths.OutDir {
	return paths.OutDir{Root: c.Output.Dir}
}

// FontCacheDir returns the configured font cache directory, falling back
// to the user cache directory when unset. Returns "" when no cache
// location is available; font downloads then skip caching.
func (c *Config) FontCacheDir() string {
	if c.Fonts.CacheDir != "" {
		return c.Fonts.CacheDir
	}
	dir, err := paths.FontCacheDir()
	if err != nil {
		slog.Debug("user cache dir unavailable", "error", err)
		return ""
	}
	return dir
}
