package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

// ///////////////////////////////////////////////
// Constant Value Tests
// ///////////////////////////////////////////////

func TestConstantValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ConfigFile", ConfigFile, "palettegen.toml"},
		{"InputFile", InputFile, "colors.txt"},
		{"LogFile", LogFile, "palettegen.log"},
		{"CSSFile", CSSFile, "palette.css"},
		{"HTMLFile", HTMLFile, "index.html"},
		{"MarkdownFile", MarkdownFile, "GUIDELINES.md"},
		{"TailwindFile", TailwindFile, "tailwind.config.js"},
		{"PaletteImageFile", PaletteImageFile, "palette.png"},
		{"LockFile", LockFile, ".palettegen.lock"},
		{"BinaryName", BinaryName, "palettegen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// SwatchFile
// ///////////////////////////////////////////////

func TestSwatchFile(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"fire-red", "fire-red.png"},
		{"ocean-blue", "ocean-blue.png"},
		{"x", "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := SwatchFile(tt.slug); got != tt.want {
				t.Errorf("SwatchFile(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// OutDir Method Tests
// ///////////////////////////////////////////////

func TestOutDirMethods(t *testing.T) {
	root := filepath.Join("home", "user", "palette", "dist")
	d := OutDir{Root: root}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"File", d.File("palette.css"), filepath.Join(root, "palette.css")},
		{"Swatch", d.Swatch("fire-red"), filepath.Join(root, "fire-red.png")},
		{"Lock", d.Lock(), filepath.Join(root, ".palettegen.lock")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestOutDirEmptyRoot(t *testing.T) {
	d := OutDir{Root: ""}

	// With an empty root, methods should return just the filename.
	if got := d.File(CSSFile); got != CSSFile {
		t.Errorf("File() with empty root = %q, want %q", got, CSSFile)
	}
	if got := d.Lock(); got != LockFile {
		t.Errorf("Lock() with empty root = %q, want %q", got, LockFile)
	}
}

// ///////////////////////////////////////////////
// Cache Directory Tests
// ///////////////////////////////////////////////

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir: %v", err)
	}
	if filepath.Base(dir) != "palettegen" {
		t.Errorf("CacheDir() = %q, want a palettegen subdirectory", dir)
	}
}

func TestFontCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := FontCacheDir()
	if err != nil {
		t.Fatalf("FontCacheDir: %v", err)
	}
	if filepath.Base(dir) != "fonts" {
		t.Errorf("FontCacheDir() = %q, want a fonts subdirectory", dir)
	}
	if !strings.Contains(dir, "palettegen") {
		t.Errorf("FontCacheDir() = %q, want it under the palettegen cache root", dir)
	}
}
