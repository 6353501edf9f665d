// Package swatch rasterizes palette colors into PNG images: one square
// swatch per color and one composite grid of the whole palette.
//
// The [Renderer] is an explicit capability object. The driver builds it
// once at startup from the resolved font; when image output is disabled
// or the font cannot be resolved, no Renderer exists and every image
// step is skipped while the text outputs still run. There is no hidden
// package-level "images available" state.
package swatch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"tools.zach/dev/palettegen/internal/palette"
)

// ///////////////////////////////////////////////
// Renderer
// ///////////////////////////////////////////////

// Options sizes the rendered images. Zero values take the defaults.
type Options struct {
	// Size is the edge of one square swatch in the final image, in
	// pixels. Default 200.
	Size int
	// Scale is the supersampling factor: drawing happens at Size*Scale
	// and is downsampled for crisp text. Default 2.
	Scale int
	// NameFontSize and HexFontSize are the label sizes on a single
	// swatch, in points at 72 DPI. Defaults 24 and 20. Grid cells draw
	// their labels 4 and 2 points smaller.
	NameFontSize int
	HexFontSize  int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 200
	}
	if o.Scale <= 0 {
		o.Scale = 2
	}
	if o.NameFontSize <= 0 {
		o.NameFontSize = 24
	}
	if o.HexFontSize <= 0 {
		o.HexFontSize = 20
	}
	return o
}

// gridNameDelta and gridHexDelta shrink the grid cell labels relative
// to the single-swatch sizes, keeping the composite a touch denser.
const (
	gridNameDelta = 4
	gridHexDelta  = 2

	swatchLabelGap = 8
	gridLabelGap   = 6
	shadowOffsetPt = 2
)

// Renderer draws swatch PNGs with a fixed font and sizing options.
type Renderer struct {
	opts Options
	font *opentype.Font
}

// NewRenderer builds the image capability around a parsed font.
func NewRenderer(opts Options, fnt *opentype.Font) (*Renderer, error) {
	if fnt == nil {
		return nil, errors.New("no font available")
	}
	return &Renderer{opts: opts.withDefaults(), font: fnt}, nil
}

// ///////////////////////////////////////////////
// Single swatch
// ///////////////////////////////////////////////

// Swatch renders one square swatch: the color fills the canvas, the
// uppercased name sits centered above the uppercased hex code, both in
// the contrast text color with a drop shadow in the inverse color.
// Returns PNG bytes.
func (r *Renderer) Swatch(c palette.Color) ([]byte, error) {
	scale := r.opts.Scale
	edge := r.opts.Size * scale

	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)

	nameFace, err := r.newFace(r.opts.NameFontSize * scale)
	if err != nil {
		return nil, err
	}
	defer nameFace.Close()
	hexFace, err := r.newFace(r.opts.HexFontSize * scale)
	if err != nil {
		return nil, err
	}
	defer hexFace.Close()

	drawLabels(img, img.Bounds(), c, nameFace, hexFace, swatchLabelGap*scale, shadowOffsetPt*scale)

	return encodeDownsampled(img, r.opts.Size, r.opts.Size)
}

// ///////////////////////////////////////////////
// Composite grid
// ///////////////////////////////////////////////

// Grid renders the composite palette image: all swatches in a grid at
// most three columns wide, rows = ceil(n/cols), no spacing between
// cells. Cell labels use the slightly smaller grid type sizes.
func (r *Renderer) Grid(colors []palette.Color) ([]byte, error) {
	if len(colors) == 0 {
		return nil, errors.New("no colors to render")
	}

	cols := min(3, len(colors))
	rows := (len(colors) + cols - 1) / cols

	scale := r.opts.Scale
	cell := r.opts.Size * scale

	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	nameFace, err := r.newFace(max(1, r.opts.NameFontSize-gridNameDelta) * scale)
	if err != nil {
		return nil, err
	}
	defer nameFace.Close()
	hexFace, err := r.newFace(max(1, r.opts.HexFontSize-gridHexDelta) * scale)
	if err != nil {
		return nil, err
	}
	defer hexFace.Close()

	for i, c := range colors {
		col := i % cols
		row := i / cols
		rect := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
		draw.Draw(img, rect, image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
		drawLabels(img, rect, c, nameFace, hexFace, gridLabelGap*scale, shadowOffsetPt*scale)
	}

	return encodeDownsampled(img, cols*r.opts.Size, rows*r.opts.Size)
}

// ///////////////////////////////////////////////
// Drawing helpers
// ///////////////////////////////////////////////

func (r *Renderer) newFace(sizePx int) (font.Face, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// drawLabels draws the name line over the hex line, both centered in
// rect, with a shadow pass under each.
func drawLabels(img draw.Image, rect image.Rectangle, c palette.Color, nameFace, hexFace font.Face, gap, shadowOffset int) {
	nameText := strings.ToUpper(c.Name)
	hexText := c.UpperHex()

	nameBounds, _ := font.BoundString(nameFace, nameText)
	hexBounds, _ := font.BoundString(hexFace, hexText)

	nameW := (nameBounds.Max.X - nameBounds.Min.X).Ceil()
	nameH := (nameBounds.Max.Y - nameBounds.Min.Y).Ceil()
	hexW := (hexBounds.Max.X - hexBounds.Min.X).Ceil()
	hexH := (hexBounds.Max.Y - hexBounds.Min.Y).Ceil()

	cellW := rect.Dx()
	cellH := rect.Dy()

	totalH := nameH + hexH + gap
	startY := rect.Min.Y + (cellH-totalH)/2

	textSrc, shadowSrc := labelSources(c)

	nameX := rect.Min.X + (cellW-nameW)/2 - nameBounds.Min.X.Floor()
	nameY := startY - nameBounds.Min.Y.Floor()
	drawShadowed(img, nameFace, nameText, nameX, nameY, shadowOffset, textSrc, shadowSrc)

	hexX := rect.Min.X + (cellW-hexW)/2 - hexBounds.Min.X.Floor()
	hexY := startY + nameH + gap - hexBounds.Min.Y.Floor()
	drawShadowed(img, hexFace, hexText, hexX, hexY, shadowOffset, textSrc, shadowSrc)
}

func drawShadowed(img draw.Image, face font.Face, text string, x, y, offset int, textSrc, shadowSrc image.Image) {
	d := &font.Drawer{
		Dst:  img,
		Src:  shadowSrc,
		Face: face,
		Dot:  fixed.P(x+offset, y+offset),
	}
	d.DrawString(text)

	d.Src = textSrc
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// labelSources picks the text and shadow fills: white text with black
// shadow on dark colors, the inverse on light ones.
func labelSources(c palette.Color) (textSrc, shadowSrc image.Image) {
	if c.Dark() {
		return image.NewUniform(color.White), image.NewUniform(color.Black)
	}
	return image.NewUniform(color.Black), image.NewUniform(color.White)
}

// encodeDownsampled scales the supersampled canvas to its final size
// with a high-quality kernel and encodes it as PNG.
func encodeDownsampled(img image.Image, w, h int) ([]byte, error) {
	final := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(final, final.Bounds(), img, img.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
