// Package fontres resolves the font used for swatch labels.
//
// Resolution walks an explicit ordered candidate list and returns the
// first success:
//
//  1. locally configured font files, in order
//  2. well-known system monospace font locations
//  3. a "google:FAMILY:WEIGHT" spec downloaded from Google Fonts and
//     cached on disk
//  4. the built-in Go Mono face
//
// Every miss is logged and resolution falls through; only a failure to
// parse the built-in font is an error, and even that costs the run
// nothing but its images. WOFF2 files are converted to SFNT before
// parsing.
package fontres

import (
	"fmt"
	"log/slog"
	"os"

	tdfont "github.com/tdewolff/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Config narrows the candidate list. The zero value resolves straight
// through the system paths to the built-in font.
type Config struct {
	// Paths are local font files tried first, in order.
	Paths []string
	// Google is a "google:FAMILY:WEIGHT" spec tried after the system
	// paths. Empty disables the download step.
	Google string
	// CacheDir holds downloaded fonts so a spec is fetched once.
	CacheDir string
}

// Font is a resolved, parsed font plus where it came from.
type Font struct {
	Font   *opentype.Font
	Source string
}

// Resolve walks the candidate list and returns the first font that
// loads. It only fails if even the built-in font cannot be parsed.
func Resolve(cfg Config) (*Font, error) {
	for _, path := range cfg.Paths {
		f, err := loadFile(path)
		if err != nil {
			slog.Debug("configured font unavailable", "path", path, "error", err)
			continue
		}
		slog.Debug("using configured font", "path", path)
		return &Font{Font: f, Source: path}, nil
	}

	for _, path := range systemFontPaths {
		f, err := loadFile(path)
		if err != nil {
			slog.Debug("system font unavailable", "path", path, "error", err)
			continue
		}
		slog.Debug("using system font", "path", path)
		return &Font{Font: f, Source: path}, nil
	}

	if cfg.Google != "" {
		data, err := fetchGoogle(cfg.Google, cfg.CacheDir)
		if err != nil {
			slog.Info("google font unavailable, falling back", "spec", cfg.Google, "error", err)
		} else {
			f, err := parseFont(data)
			if err != nil {
				slog.Info("downloaded font unparsable, falling back", "spec", cfg.Google, "error", err)
			} else {
				slog.Debug("using google font", "spec", cfg.Google)
				return &Font{Font: f, Source: cfg.Google}, nil
			}
		}
	}

	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in font: %w", err)
	}
	slog.Info("using built-in Go Mono font")
	return &Font{Font: f, Source: "builtin"}, nil
}

// systemFontPaths lists well-known monospace font locations across
// platforms, tried in order. A miss on a foreign platform is just a
// fast stat failure.
var systemFontPaths = []string{
	"/System/Library/Fonts/SF-Mono-Regular.otf",
	"/System/Library/Fonts/Monaco.ttf",
	"/Library/Fonts/Consolas.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	`C:\Windows\Fonts\consola.ttf`,
	"/System/Library/Fonts/Helvetica.ttc",
}

// loadFile reads and parses one font file, converting WOFF2 first when
// needed.
func loadFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isWOFF2(data) {
		data, err = tdfont.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("converting WOFF2 to SFNT: %w", err)
		}
	}
	return parseFont(data)
}

// parseFont parses SFNT data, accepting both single fonts and
// collections (the first face of a .ttc wins).
func parseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err == nil {
		return f, nil
	}
	coll, collErr := opentype.ParseCollection(data)
	if collErr != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return coll.Font(0)
}

// isWOFF2 checks the magic bytes ("wOF2").
func isWOFF2(data []byte) bool {
	return len(data) >= 4 && data[0] == 'w' && data[1] == 'O' && data[2] == 'F' && data[3] == '2'
}
