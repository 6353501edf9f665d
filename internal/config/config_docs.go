package config

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// The genconfig tool uses [FieldDoc] values to annotate the generated config.default.toml.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "image.name_font_size")
// to their [FieldDoc] entries. The genconfig tool uses this map to annotate the
// generated config.default.toml with inline comments and alternative examples.
var ConfigDocs = map[string]FieldDoc{
	// ── Root ──────────────────────────────────────────────────────
	"version": {
		Comment: "Config schema version — do not edit.",
	},

	// ── Input ────────────────────────────────────────────────────
	"input.path": {
		Comment: "Colors file to read. One color per line:\n  RRGGBB # Display Name\nLines starting with # and blank lines are skipped.",
	},
	"input.exclude": {
		Comment: "Glob patterns matched against color slugs (lowercased names,\nspaces replaced with hyphens). Matching colors are dropped from\nevery output.",
		Alternatives: []string{
			`exclude = [`,
			`  "draft-*",`,
			`  "*-deprecated",`,
			`]`,
		},
	},

	// ── Output ───────────────────────────────────────────────────
	"output.dir": {
		Comment: "Directory all artifacts are written to. Created if missing.",
		Alternatives: []string{
			`dir = "dist/palette"`,
		},
	},
	"output.css_file": {
		Comment: "Artifact file names, relative to dir.",
	},
	"output.html_file":     {},
	"output.markdown_file": {},
	"output.tailwind_file": {},
	"output.palette_image": {
		Comment: "Composite grid image of the whole palette.",
	},

	// ── HTML ─────────────────────────────────────────────────────
	"html.title": {
		Comment: "Page title and header text of the interactive preview page.",
		Alternatives: []string{
			`title = "Acme Brand Colors"`,
		},
	},

	// ── Image ────────────────────────────────────────────────────
	"image.enabled": {
		Comment: "Generate PNG swatches. Text outputs are produced either way.",
	},
	"image.size": {
		Comment: "Final swatch edge length in pixels.",
	},
	"image.scale": {
		Comment: "Supersampling factor. Swatches render at size*scale and are\ndownscaled for smooth text edges.",
	},
	"image.name_font_size": {
		Comment: "Label font sizes in points. The composite grid uses slightly\nsmaller labels derived from these.",
	},
	"image.hex_font_size": {},

	// ── Fonts ────────────────────────────────────────────────────
	"fonts.paths": {
		Comment: "Font files to try for swatch labels, in order. TTF, OTF, TTC,\nand WOFF2 are accepted. System monospace fonts are tried next,\nthen the google spec below, then a built-in font.",
		Alternatives: []string{
			`paths = [`,
			`  "/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",`,
			`]`,
		},
	},
	"fonts.google": {
		Comment: "Google Fonts fallback, \"google:FAMILY:WEIGHT\".\nDownloaded once and cached. Empty disables the download step.",
		Alternatives: []string{
			`google = "google:JetBrains Mono:700"`,
		},
	},
	"fonts.cache_dir": {
		Comment: "Where downloaded fonts are cached. Empty uses the user cache\ndirectory (e.g. ~/.cache/palettegen/fonts).",
	},

	// ── Log ──────────────────────────────────────────────────────
	"log": {
		Comment: "Logging configuration",
	},
	"log.level": {
		Comment: "Minimum log level. Options: \"trace\", \"debug\", \"info\", \"warn\", \"error\"",
		Alternatives: []string{
			`level = "debug"`,
			`level = "warn"`,
		},
	},
	"log.file": {
		Comment: "Optional log file (rotated). Empty logs to stderr only.",
		Alternatives: []string{
			`file = "palettegen.log"`,
		},
	},
	"log.max_size_mb": {
		Comment: "Maximum log file size in megabytes before rotation.",
	},
}
