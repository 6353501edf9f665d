// Package integration provides end-to-end tests for the generation
// pipeline. Each test runs every stage — parse, filter, render, write,
// rasterize — against a real temp directory and verifies the artifacts
// on the filesystem, the way the packages are composed by the CLI.
package integration

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tools.zach/dev/palettegen/internal/atomicfile"
	"tools.zach/dev/palettegen/internal/config"
	"tools.zach/dev/palettegen/internal/fontres"
	"tools.zach/dev/palettegen/internal/palette"
	"tools.zach/dev/palettegen/internal/paths"
	"tools.zach/dev/palettegen/internal/render"
	"tools.zach/dev/palettegen/internal/swatch"
)

// ///////////////////////////////////////////////
// Helpers
// ///////////////////////////////////////////////

// testColors is the fixture palette: a dark, a light, a mid-tone and a
// two-word name, covering both text-color branches and slug derivation.
const testColors = `# fixture palette
1d3557 # Prussian Blue
f1faee # Honeydew
e63946 # Imperial Red
457b9d # Steel Blue
`

// testConfig builds a config pointed at a colors file under dir, with
// small image sizes to keep rasterizing fast.
func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	inputPath := filepath.Join(dir, "colors.txt")
	if err := os.WriteFile(inputPath, []byte(testColors), 0o644); err != nil {
		t.Fatalf("write colors file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.Path = inputPath
	cfg.Image.Size = 40
	cfg.Image.Scale = 1
	cfg.Image.NameFontSize = 10
	cfg.Image.HexFontSize = 8
	return cfg
}

// runPipeline composes the stages the way the CLI does: parse, filter,
// render every text artifact, then rasterize the swatches and grid.
// It returns the colors that survived filtering.
func runPipeline(t *testing.T, cfg *config.Config, outRoot string) []palette.Color {
	t.Helper()
	out := paths.OutDir{Root: outRoot}

	parsed, err := palette.ParseFile(cfg.Input.Path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	colors := make([]palette.Color, 0, len(parsed))
	for _, c := range parsed {
		if cfg.Excluded(c.Slug()) {
			continue
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		t.Fatal("fixture palette filtered to nothing")
	}

	writeText := func(name, content string) {
		t.Helper()
		if err := atomicfile.WriteDirs(out.File(name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	writeText(cfg.Output.CSSFile, render.CSS(colors))
	writeText(cfg.Output.HTMLFile, render.HTML(colors, render.HTMLOptions{
		Title:        cfg.HTML.Title,
		CSSFile:      cfg.Output.CSSFile,
		ImageSection: true,
		PaletteImage: cfg.Output.PaletteImage,
	}))
	writeText(cfg.Output.MarkdownFile, render.Markdown(colors))
	writeText(cfg.Output.TailwindFile, render.Tailwind(colors))

	fnt, err := fontres.Resolve(fontres.Config{CacheDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	ren, err := swatch.NewRenderer(swatch.Options{
		Size:         cfg.Image.Size,
		Scale:        cfg.Image.Scale,
		NameFontSize: cfg.Image.NameFontSize,
		HexFontSize:  cfg.Image.HexFontSize,
	}, fnt.Font)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	for _, c := range colors {
		data, err := ren.Swatch(c)
		if err != nil {
			t.Fatalf("Swatch(%s) error: %v", c.Slug(), err)
		}
		if err := atomicfile.WriteDirs(out.Swatch(c.Slug()), data, 0o644); err != nil {
			t.Fatalf("write swatch %s: %v", c.Slug(), err)
		}
	}
	grid, err := ren.Grid(colors)
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}
	if err := atomicfile.WriteDirs(out.File(cfg.Output.PaletteImage), grid, 0o644); err != nil {
		t.Fatalf("write grid: %v", err)
	}

	return colors
}

// readArtifact reads one generated file or fails the test.
func readArtifact(t *testing.T, outRoot, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outRoot, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

// ///////////////////////////////////////////////
// Tests
// ///////////////////////////////////////////////

func TestPipeline_AllArtifacts(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)

	colors := runPipeline(t, cfg, outRoot)
	if len(colors) != 4 {
		t.Fatalf("parsed %d colors, want 4", len(colors))
	}

	expected := []string{
		cfg.Output.CSSFile,
		cfg.Output.HTMLFile,
		cfg.Output.MarkdownFile,
		cfg.Output.TailwindFile,
		cfg.Output.PaletteImage,
		"prussian-blue.png",
		"honeydew.png",
		"imperial-red.png",
		"steel-blue.png",
	}
	for _, name := range expected {
		if _, err := os.Stat(filepath.Join(outRoot, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestPipeline_ArtifactsAgree(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)

	colors := runPipeline(t, cfg, outRoot)

	css := string(readArtifact(t, outRoot, cfg.Output.CSSFile))
	html := string(readArtifact(t, outRoot, cfg.Output.HTMLFile))
	md := string(readArtifact(t, outRoot, cfg.Output.MarkdownFile))
	tw := string(readArtifact(t, outRoot, cfg.Output.TailwindFile))

	// Every color must appear in every text artifact under the same slug.
	for _, c := range colors {
		slug := c.Slug()
		if !strings.Contains(css, "--color-"+slug+": "+c.Hex+";") {
			t.Errorf("CSS missing base variable for %s", slug)
		}
		if !strings.Contains(css, ".bg-"+slug) {
			t.Errorf("CSS missing .bg-%s utility", slug)
		}
		if !strings.Contains(html, c.UpperHex()) {
			t.Errorf("HTML missing hex display for %s", slug)
		}
		if !strings.Contains(md, c.Name) {
			t.Errorf("Markdown missing section for %q", c.Name)
		}
		if !strings.Contains(tw, "'"+slug+"'") {
			t.Errorf("Tailwind missing key for %s", slug)
		}
		// The Tailwind contract: shade values carry no "#".
		if strings.Contains(tw, "'#") {
			t.Error("Tailwind values must not carry a # prefix")
		}
	}

	// The preview page links the stylesheet and composite by file name.
	if !strings.Contains(html, cfg.Output.CSSFile) {
		t.Error("HTML does not link the stylesheet")
	}
	if !strings.Contains(html, cfg.Output.PaletteImage) {
		t.Error("HTML does not reference the palette image")
	}
}

func TestPipeline_ImageDimensions(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)

	runPipeline(t, cfg, outRoot)

	swatchCfg, err := png.DecodeConfig(bytes.NewReader(readArtifact(t, outRoot, "imperial-red.png")))
	if err != nil {
		t.Fatalf("decode swatch: %v", err)
	}
	if swatchCfg.Width != cfg.Image.Size || swatchCfg.Height != cfg.Image.Size {
		t.Errorf("swatch is %dx%d, want %dx%d",
			swatchCfg.Width, swatchCfg.Height, cfg.Image.Size, cfg.Image.Size)
	}

	// Four colors lay out as min(3,4)=3 columns by 2 rows.
	gridCfg, err := png.DecodeConfig(bytes.NewReader(readArtifact(t, outRoot, cfg.Output.PaletteImage)))
	if err != nil {
		t.Fatalf("decode grid: %v", err)
	}
	if gridCfg.Width != 3*cfg.Image.Size || gridCfg.Height != 2*cfg.Image.Size {
		t.Errorf("grid is %dx%d, want %dx%d",
			gridCfg.Width, gridCfg.Height, 3*cfg.Image.Size, 2*cfg.Image.Size)
	}
}

func TestPipeline_SwatchFillColor(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)

	runPipeline(t, cfg, outRoot)

	img, err := png.Decode(bytes.NewReader(readArtifact(t, outRoot, "imperial-red.png")))
	if err != nil {
		t.Fatalf("decode swatch: %v", err)
	}

	// Corners sit far from the centered labels, so after downsampling they
	// must still hold the exact base color.
	r, g, b, _ := img.At(1, 1).RGBA()
	got := palette.FormatHex(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	if got != "#e63946" {
		t.Errorf("corner pixel = %s, want #e63946", got)
	}
}

func TestPipeline_Deterministic(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	outA := filepath.Join(dir, "a")
	outB := filepath.Join(dir, "b")
	runPipeline(t, cfg, outA)
	runPipeline(t, cfg, outB)

	names := []string{
		cfg.Output.CSSFile,
		cfg.Output.HTMLFile,
		cfg.Output.MarkdownFile,
		cfg.Output.TailwindFile,
		cfg.Output.PaletteImage,
		"imperial-red.png",
	}
	for _, name := range names {
		a := readArtifact(t, outA, name)
		b := readArtifact(t, outB, name)
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between identical runs", name)
		}
	}
}

func TestPipeline_ExcludeFilter(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)
	cfg.Input.Exclude = []string{"steel-*"}

	colors := runPipeline(t, cfg, outRoot)
	if len(colors) != 3 {
		t.Fatalf("kept %d colors, want 3", len(colors))
	}

	css := string(readArtifact(t, outRoot, cfg.Output.CSSFile))
	if strings.Contains(css, "steel-blue") {
		t.Error("excluded color leaked into CSS")
	}
	if _, err := os.Stat(filepath.Join(outRoot, "steel-blue.png")); !os.IsNotExist(err) {
		t.Error("excluded color got a swatch PNG")
	}
}

func TestPipeline_ConfigRoundTrip(t *testing.T) {
	// Drive the pipeline from a config that went through disk, the way a
	// real run does, rather than from an in-memory struct.
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")

	seed := testConfig(t, dir)
	seed.Output.CSSFile = "brand.css"
	seed.HTML.Title = "Acme Brand Colors"
	cfgPath := filepath.Join(dir, paths.ConfigFile)
	if err := seed.Save(cfgPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	runPipeline(t, cfg, outRoot)

	html := string(readArtifact(t, outRoot, cfg.Output.HTMLFile))
	if !strings.Contains(html, "Acme Brand Colors") {
		t.Error("configured title missing from preview page")
	}
	if !strings.Contains(html, "brand.css") {
		t.Error("configured stylesheet name missing from preview page")
	}
	if _, err := os.Stat(filepath.Join(outRoot, "brand.css")); err != nil {
		t.Errorf("renamed stylesheet not written: %v", err)
	}
}

func TestPipeline_NoTempFiles(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "dist")
	cfg := testConfig(t, dir)

	runPipeline(t, cfg, outRoot)

	entries, err := os.ReadDir(outRoot)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("stale temp file found: %s", e.Name())
		}
	}
}
