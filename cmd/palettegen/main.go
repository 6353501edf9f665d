// Package main implements the palettegen CLI, which reads a colors file
// and derives the palette artifacts: CSS variables, an HTML preview,
// Markdown guidelines, a Tailwind config, and PNG swatches.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	rootpkg "tools.zach/dev/palettegen"
	"tools.zach/dev/palettegen/internal/atomicfile"
	"tools.zach/dev/palettegen/internal/config"
	"tools.zach/dev/palettegen/internal/fontres"
	"tools.zach/dev/palettegen/internal/logger"
	"tools.zach/dev/palettegen/internal/palette"
	"tools.zach/dev/palettegen/internal/paths"
	"tools.zach/dev/palettegen/internal/render"
	"tools.zach/dev/palettegen/internal/swatch"
	"tools.zach/dev/palettegen/internal/ui"
	"tools.zach/dev/palettegen/internal/update"
	"tools.zach/dev/palettegen/internal/watch"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via ldflags:
//   - goreleaser: -X main.version={{.Version}}  -> "0.1.0"
//   - make build: -X main.version=$(VERSION)    -> "0.0.0-dev+05ffee5"
//
// When ldflags are not set (bare go build), resolveVersion reads the VCS info
// that Go embeds automatically, so dev builds get a useful version string
// without needing git at runtime.
var version = "dev"

// resolveVersion returns the build version string. If [version] was set via
// ldflags at build time it is returned as-is; otherwise VCS revision and dirty
// state embedded by the Go toolchain are used to construct a "dev+<hash>" tag.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Watch Lock Management
// ///////////////////////////////////////////////

// lockToken generates a random 16-character hex token used to prove ownership
// of the lock file, so [removeLock] only deletes the file if this instance
// wrote it.
func lockToken() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// writeLock creates or opens the watch-mode lock file in the output
// directory, acquires an advisory file lock, and writes "PID:TOKEN" content.
// The returned file handle must be kept open for the lifetime of the watcher
// to hold the lock; pass it to [removeLock] on shutdown.
func writeLock(out paths.OutDir, token string) (*os.File, error) {
	f, err := os.OpenFile(out.Lock(), os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock file: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("truncate lock file: %w", err)
	}
	content := fmt.Sprintf("%d:%s", os.Getpid(), token)
	if _, err := f.WriteString(content); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("write lock file: %w", err)
	}
	return f, nil
}

// removeLock releases the advisory lock, closes the file handle, and removes
// the lock file only if the stored token matches, preventing accidental
// removal of a file owned by a different watcher instance.
func removeLock(out paths.OutDir, token string, f *os.File) {
	if f != nil {
		_ = unlockFile(f)
		f.Close()
	}
	data, err := os.ReadFile(out.Lock())
	if err != nil {
		return
	}
	parts := strings.SplitN(string(data), ":", 2)
	if len(parts) == 2 && parts[1] == token {
		os.Remove(out.Lock())
	}
}

// checkStaleLock checks whether another watcher already owns the output
// directory. It attempts to acquire the advisory lock on the lock file; if
// the lock fails, another instance holds it. If the lock succeeds, any
// previous watcher is dead and the stale file is cleaned up.
func checkStaleLock(out paths.OutDir) (alive bool, pid int) {
	f, err := os.OpenFile(out.Lock(), os.O_RDWR, 0o600)
	if err != nil {
		return false, 0
	}

	if lockErr := lockFile(f); lockErr != nil {
		data, _ := os.ReadFile(out.Lock())
		f.Close()
		parts := strings.SplitN(string(data), ":", 2)
		if len(parts) >= 1 {
			if p, convErr := strconv.Atoi(parts[0]); convErr == nil {
				return true, p
			}
		}
		return true, 0
	}

	// Lock acquired -- previous watcher is dead. Clean up stale file.
	_ = unlockFile(f)
	f.Close()
	os.Remove(out.Lock())
	return false, 0
}

// ///////////////////////////////////////////////
// Init Scaffolding
// ///////////////////////////////////////////////

// starterColors seeds -init with a small working palette so the first run
// produces output immediately.
const starterColors = `# One color per line: RRGGBB # Display Name
# Lines starting with "#" are comments.

e63946 # Imperial Red
f1faee # Honeydew
a8dadc # Powder Blue
457b9d # Steel Blue
1d3557 # Prussian Blue
`

// runInit scaffolds a starter config and colors file in the working
// directory, refusing to overwrite either if it already exists.
func runInit() error {
	wrote := false

	if _, err := os.Stat(paths.ConfigFile); os.IsNotExist(err) {
		if err := os.WriteFile(paths.ConfigFile, rootpkg.DefaultConfigTOML, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths.ConfigFile, err)
		}
		ui.Donef("Created %s", paths.ConfigFile)
		wrote = true
	} else {
		ui.Notef("%s already exists, leaving it alone", paths.ConfigFile)
	}

	if _, err := os.Stat(paths.InputFile); os.IsNotExist(err) {
		if err := os.WriteFile(paths.InputFile, []byte(starterColors), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths.InputFile, err)
		}
		ui.Donef("Created %s", paths.InputFile)
		wrote = true
	} else {
		ui.Notef("%s already exists, leaving it alone", paths.InputFile)
	}

	if wrote {
		ui.Stepf("Edit %s and run %s to generate your palette.", paths.InputFile, paths.BinaryName)
	}
	return nil
}

// ///////////////////////////////////////////////
// Image Capability
// ///////////////////////////////////////////////

// buildRenderer constructs the image capability, or returns nil plus a
// human-readable reason when swatch rendering is unavailable. A nil renderer
// is not an error: every text output still runs.
func buildRenderer(cfg *config.Config) (*swatch.Renderer, string) {
	if !cfg.Image.Enabled {
		return nil, "Image generation disabled. Skipping swatch images."
	}

	fnt, err := fontres.Resolve(fontres.Config{
		Paths:    cfg.Fonts.Paths,
		Google:   cfg.Fonts.Google,
		CacheDir: cfg.FontCacheDir(),
	})
	if err != nil {
		slog.Warn("no usable label font", "error", err)
		return nil, "No usable label font found. Skipping swatch images."
	}

	ren, err := swatch.NewRenderer(swatch.Options{
		Size:         cfg.Image.Size,
		Scale:        cfg.Image.Scale,
		NameFontSize: cfg.Image.NameFontSize,
		HexFontSize:  cfg.Image.HexFontSize,
	}, fnt.Font)
	if err != nil {
		slog.Warn("swatch renderer unavailable", "error", err)
		return nil, "Swatch renderer unavailable. Skipping swatch images."
	}

	slog.Debug("swatch renderer ready", "font", fnt.Source)
	return ren, ""
}

// ///////////////////////////////////////////////
// Generation Pipeline
// ///////////////////////////////////////////////

// applyExcludes drops colors whose slug matches a configured exclude glob,
// preserving input order.
func applyExcludes(cfg *config.Config, colors []palette.Color) []palette.Color {
	if len(cfg.Input.Exclude) == 0 {
		return colors
	}
	kept := make([]palette.Color, 0, len(colors))
	for _, c := range colors {
		if cfg.Excluded(c.Slug()) {
			slog.Debug("excluding color", "slug", c.Slug(), "name", c.Name)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// generate runs one full pipeline pass: parse, filter, render every text
// artifact, then rasterize swatches when the image capability is present.
// Nothing is written until parsing and filtering have produced at least one
// color.
func generate(cfg *config.Config, out paths.OutDir, ren *swatch.Renderer, imageNote string) error {
	ui.Stepf("Parsing colors from %s...", cfg.Input.Path)
	colors, err := palette.ParseFile(cfg.Input.Path)
	if err != nil {
		return err
	}
	colors = applyExcludes(cfg, colors)
	if len(colors) == 0 {
		return fmt.Errorf("%w in %s", palette.ErrNoColors, cfg.Input.Path)
	}
	ui.Stepf("Found %d color(s)", len(colors))

	ui.Stepf("Generating CSS file...")
	if err := atomicfile.WriteDirs(out.File(cfg.Output.CSSFile), []byte(render.CSS(colors)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.CSSFile, err)
	}

	ui.Stepf("Generating HTML preview...")
	page := render.HTML(colors, render.HTMLOptions{
		Title:        cfg.HTML.Title,
		CSSFile:      cfg.Output.CSSFile,
		ImageSection: ren != nil,
		PaletteImage: cfg.Output.PaletteImage,
	})
	if err := atomicfile.WriteDirs(out.File(cfg.Output.HTMLFile), []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.HTMLFile, err)
	}

	ui.Stepf("Generating brand guidelines...")
	if err := atomicfile.WriteDirs(out.File(cfg.Output.MarkdownFile), []byte(render.Markdown(colors)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.MarkdownFile, err)
	}

	ui.Stepf("Generating Tailwind config...")
	if err := atomicfile.WriteDirs(out.File(cfg.Output.TailwindFile), []byte(render.Tailwind(colors)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.TailwindFile, err)
	}

	if ren == nil {
		ui.Notef("%s", imageNote)
		slog.Info("image generation skipped", "reason", imageNote)
	} else if err := generateImages(cfg, out, ren, colors); err != nil {
		return err
	}

	summarize(cfg, ren != nil)
	return nil
}

// generateImages rasterizes one swatch PNG per color plus the composite grid.
func generateImages(cfg *config.Config, out paths.OutDir, ren *swatch.Renderer, colors []palette.Color) error {
	ui.Stepf("Generating color swatch images...")
	for _, c := range colors {
		data, err := ren.Swatch(c)
		if err != nil {
			return fmt.Errorf("render swatch %s: %w", c.Slug(), err)
		}
		name := paths.SwatchFile(c.Slug())
		if err := atomicfile.WriteDirs(out.Swatch(c.Slug()), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		ui.Donef("Generated %s", name)
	}

	ui.Stepf("Generating palette image...")
	grid, err := ren.Grid(colors)
	if err != nil {
		return fmt.Errorf("render palette image: %w", err)
	}
	if err := atomicfile.WriteDirs(out.File(cfg.Output.PaletteImage), grid, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.PaletteImage, err)
	}
	ui.Donef("Generated %s", cfg.Output.PaletteImage)
	return nil
}

// summarize prints the closing report listing every artifact written.
func summarize(cfg *config.Config, images bool) {
	ui.Stepf("")
	ui.Donef("All files generated successfully!")
	ui.Notef("  - %s (CSS variables and utilities)", cfg.Output.CSSFile)
	ui.Notef("  - %s (Visual preview)", cfg.Output.HTMLFile)
	ui.Notef("  - %s (Brand guidelines)", cfg.Output.MarkdownFile)
	ui.Notef("  - %s (Tailwind CSS configuration)", cfg.Output.TailwindFile)
	if images {
		ui.Notef("  - Individual color swatch images (.png)")
		ui.Notef("  - Complete palette image (%s)", cfg.Output.PaletteImage)
	}
	ui.Stepf("")
	ui.Stepf("Open %s in your browser to see the palette!", cfg.Output.HTMLFile)
}

// reportRunError surfaces a failed pipeline pass, mapping the sentinel
// conditions to their short user-facing forms.
func reportRunError(err error, inputPath string) {
	switch {
	case errors.Is(err, palette.ErrInputNotFound):
		ui.Errorf("%s not found", inputPath)
	case errors.Is(err, palette.ErrNoColors):
		ui.Errorf("No colors found in %s", inputPath)
	default:
		ui.Errorf("%v", err)
	}
	slog.Error("generation failed", "error", err)
}

// ///////////////////////////////////////////////
// Flag Overlay
// ///////////////////////////////////////////////

// applyFlags overlays explicitly set command-line flags onto the config.
// flag.Visit only sees flags present on the command line, so flag defaults
// never clobber environment or config-file values.
func applyFlags(cfg *config.Config, inputPath, outDir *string, noImages *bool, logLevel *string) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["input"] {
		cfg.Input.Path = *inputPath
	}
	if set["out"] {
		cfg.Output.Dir = *outDir
	}
	if set["no-images"] {
		cfg.Image.Enabled = !*noImages
	}
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

func main() {
	inputPath := flag.String("input", "", "Colors file to read (overrides config)")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	configPath := flag.String("config", paths.ConfigFile, "Config file path")
	watchMode := flag.Bool("watch", false, "Regenerate whenever the colors file changes")
	noImages := flag.Bool("no-images", false, "Skip PNG swatch generation")
	doInit := flag.Bool("init", false, "Scaffold a starter config and colors file, then exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	logLevel := flag.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress progress output (warnings and errors still print)")
	flag.Parse()

	if *showVersion {
		fmt.Println(paths.BinaryName + " " + resolveVersion())
		return
	}

	// Missing .env is fine; anything it defines feeds the PALETTEGEN_*
	// overrides applied below.
	_ = godotenv.Load()

	if *doInit {
		if err := runInit(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: init: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: load config: %v\n", err)
		os.Exit(1)
	}

	// Precedence: flags > environment (including .env) > config file > defaults.
	cfg.ApplyEnv()
	applyFlags(cfg, inputPath, outDir, noImages, logLevel)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: invalid config: %v\n", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		log, logCloser, logErr := logger.NewLogger(cfg.Log.File, level, cfg.Log.MaxSizeMB)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "fatal: init logger: %v\n", logErr)
			os.Exit(1)
		}
		defer logCloser.Close()
		slog.SetDefault(log)
	} else {
		slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, level)))
	}

	ui.SetQuiet(*quiet)

	ver := resolveVersion()
	slog.Info("palettegen starting", "version", ver, "input", cfg.Input.Path, "out", cfg.Output.Dir)

	out := cfg.OutDir()
	if err := os.MkdirAll(out.Root, 0o755); err != nil {
		ui.Errorf("create output directory %s: %v", out.Root, err)
		logger.Fail(slog.Default(), "create output directory", "error", err)
		os.Exit(1)
	}

	ren, imageNote := buildRenderer(cfg)

	if !*watchMode {
		if err := generate(cfg, out, ren, imageNote); err != nil {
			reportRunError(err, cfg.Input.Path)
			os.Exit(1)
		}
		return
	}

	runWatch(cfg, out, ren, imageNote, ver)
}

// ///////////////////////////////////////////////
// Watch Mode
// ///////////////////////////////////////////////

// runWatch holds the output-directory lock and re-runs generation on input
// changes until interrupted. The startup version check lives here rather
// than in one-shot mode: only a long-lived watcher gives the fetch time to
// finish before the process exits.
func runWatch(cfg *config.Config, out paths.OutDir, ren *swatch.Renderer, imageNote, ver string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("update check panic", "error", r)
			}
		}()
		update.Check(ver)
	}()

	if alive, pid := checkStaleLock(out); alive {
		ui.Errorf("another %s watcher is already running for %s (pid %d)", paths.BinaryName, out.Root, pid)
		logger.Fail(slog.Default(), "output directory locked", "pid", pid)
		os.Exit(1)
	}

	token := lockToken()
	lock, err := writeLock(out, token)
	if err != nil {
		ui.Errorf("lock output directory: %v", err)
		logger.Fail(slog.Default(), "failed to lock output directory", "error", err)
		os.Exit(1)
	}
	defer removeLock(out, token, lock)

	watcher, err := watch.New(cfg.Input.Path)
	if err != nil {
		ui.Errorf("watch %s: %v", cfg.Input.Path, err)
		logger.Fail(slog.Default(), "failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if watcher.Polling() {
		slog.Info("using polling mode for file watching")
	}

	// Initial pass. Failures are reported but the watcher keeps running;
	// the next change gets a fresh attempt.
	if err := generate(cfg, out, ren, imageNote); err != nil {
		reportRunError(err, cfg.Input.Path)
	}
	ui.Notef("Watching %s for changes (Ctrl+C to stop)", cfg.Input.Path)

	watchLoop(cfg, out, ren, imageNote, watcher)
}

// watchLoop re-runs the pipeline on every coalesced input change until an
// interrupt or terminate signal arrives.
func watchLoop(cfg *config.Config, out paths.OutDir, ren *swatch.Renderer, imageNote string, w *watch.Watcher) {
	sigCh := signalChannel()

	for {
		select {
		case <-sigCh:
			slog.Info("received shutdown signal")
			ui.Notef("Stopping.")
			return

		case <-w.Events():
			slog.Debug("input change detected", "path", cfg.Input.Path)
			if err := generate(cfg, out, ren, imageNote); err != nil {
				reportRunError(err, cfg.Input.Path)
			}
		}
	}
}
