package render

import (
	"fmt"
	"strings"

	"tools.zach/dev/palettegen/internal/palette"
)

// HTMLOptions controls the parts of the preview page that depend on the
// run, not the palette: the page title, the stylesheet link and whether
// the composite-image section is shown at all.
type HTMLOptions struct {
	// Title is the <title> text. Empty means "Color Palette".
	Title string
	// CSSFile is the stylesheet file name the page links. Empty means
	// "palette.css".
	CSSFile string
	// ImageSection emits the copy/download section for the composite
	// image. Leave false when image generation was skipped so the page
	// never references a file that does not exist.
	ImageSection bool
	// PaletteImage is the composite image file name the section
	// references. Empty means "palette.png".
	PaletteImage string
}

// HTML renders the self-contained preview page: a dark grid of color
// blocks with contrast-aware labels, an expandable ten-shade strip per
// color, and copy-to-clipboard behavior. The client-side script is
// static boilerplate carried verbatim.
func HTML(colors []palette.Color, opts HTMLOptions) string {
	if opts.Title == "" {
		opts.Title = "Color Palette"
	}
	if opts.CSSFile == "" {
		opts.CSSFile = "palette.css"
	}
	if opts.PaletteImage == "" {
		opts.PaletteImage = "palette.png"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="stylesheet" href="%s">
`, opts.Title, opts.CSSFile)
	b.WriteString(htmlStyles)

	fmt.Fprintf(&b, `    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="palette-grid" id="paletteGrid">
        <div id="toast" class="toast"></div>
`, strings.ToUpper(opts.Title))

	for _, c := range colors {
		text := c.TextColor()
		fmt.Fprintf(&b, `
        <div class="color-block" style="background-color: %s;" onclick="toggleShades(this, event)">
            <div class="color-name" style="color: %s;">%s</div>
            <div class="color-hex" style="color: %s;">%s</div>
            <div class="shades-backdrop"></div>
            <div class="shades-container" onclick="event.stopPropagation()">
`, c.Hex, text, c.Name, text, c.UpperHex())

		shades := palette.Shades(c)
		for _, key := range palette.ShadeKeys {
			hex := shades[key]
			shadeText := palette.TextColorFor(hex)
			fmt.Fprintf(&b, `
                <div class="shade-block" style="background-color: %s;" onclick="event.stopPropagation(); copyHex('%s')">
                    <div class="shade-label" style="color: %s;">%s</div>
                    <div class="shade-hex" style="color: %s;">%s</div>
                </div>
`, hex, hex, shadeText, key, shadeText, strings.ToUpper(hex))
		}

		b.WriteString(`
            </div>
        </div>
`)
	}

	if opts.ImageSection {
		fmt.Fprintf(&b, `
    </div>
    <div class="palette-image-section">
        <h2>PALETTE IMAGE</h2>
        <div class="image-actions">
            <button class="btn" onclick="copyImage('%s')">COPY IMAGE</button>
            <button class="btn" onclick="downloadImage('%s', 'color_palette.png')">DOWNLOAD IMAGE</button>
        </div>
    </div>
`, opts.PaletteImage, opts.PaletteImage)
	} else {
		b.WriteString("\n    </div>\n")
	}

	b.WriteString(htmlScript)
	return b.String()
}

// htmlStyles is the page stylesheet, closing the head and opening the
// body. The header and grid markup follow it with run-specific values.
const htmlStyles = `    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Fira Code', 'Droid Sans Mono', 'Source Code Pro', 'Courier New', monospace;
            background: #0A0A0A;
            color: #fff;
            padding: 0;
            overflow-x: hidden;
        }

        .header {
            padding: 0.5rem 1rem;
            background: #0A0A0A;
            border-bottom: 1px solid #1a1a1a;
            position: sticky;
            top: 0;
            z-index: 100;
        }

        .header h1 {
            font-size: 1rem;
            font-weight: normal;
            letter-spacing: 2px;
            text-transform: uppercase;
            color: #888;
        }

        .palette-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 0;
        }

        .color-block {
            position: relative;
            aspect-ratio: 1;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            cursor: pointer;
            transition: transform 0.1s, z-index 0.1s;
            border: none;
        }

        .color-block:hover:not(.expanded) {
            transform: scale(1.05);
            z-index: 10;
            box-shadow: 0 0 20px rgba(255,255,255,0.1);
        }

        .color-block.expanded {
            z-index: 15;
        }

        .color-name {
            font-size: 0.7rem;
            font-weight: bold;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 0.3rem;
            text-shadow: 0 0 10px rgba(0,0,0,0.8);
        }

        .color-hex {
            font-size: 0.65rem;
            font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Fira Code', 'Droid Sans Mono', 'Source Code Pro', 'Courier New', monospace;
            text-shadow: 0 0 10px rgba(0,0,0,0.8);
        }

        .shades-backdrop {
            display: none;
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            bottom: 0;
            background: rgba(0, 0, 0, 0.7);
            z-index: 19;
            opacity: 0;
            transition: opacity 0.3s ease-out;
        }

        .color-block.expanded .shades-backdrop {
            display: block;
            opacity: 1;
        }

        .shades-container {
            display: none;
            position: fixed;
            top: auto;
            left: 0;
            right: 0;
            width: 100vw;
            background: #0A0A0A;
            border-top: 1px solid #1a1a1a;
            border-bottom: 1px solid #1a1a1a;
            z-index: 20;
            grid-template-columns: repeat(10, 1fr);
            gap: 0;
            padding: 0.5rem 0;
            max-width: 100%;
            opacity: 0;
            transform: translateY(-20px);
            transition: opacity 0.3s ease-out, transform 0.3s ease-out;
        }

        .color-block.expanded .shades-container {
            display: grid;
            opacity: 1;
            transform: translateY(0);
        }

        .palette-grid {
            position: relative;
        }

        .shade-block {
            aspect-ratio: 1;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            cursor: pointer;
            border: none;
            min-height: 100px;
        }

        .shade-label {
            font-size: 0.6rem;
            margin-bottom: 0.3rem;
            text-shadow: 0 0 5px rgba(0,0,0,0.8);
            font-weight: bold;
        }

        .shade-hex {
            font-size: 0.55rem;
            font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Fira Code', 'Droid Sans Mono', 'Source Code Pro', 'Courier New', monospace;
            text-shadow: 0 0 5px rgba(0,0,0,0.8);
        }

        .palette-image-section {
            margin-top: 0;
            padding: 0.5rem 1rem;
            background: #0A0A0A;
            border-top: 1px solid #1a1a1a;
        }

        .palette-image-section h2 {
            font-size: 0.7rem;
            font-weight: normal;
            text-transform: uppercase;
            letter-spacing: 2px;
            color: #888;
            margin-bottom: 0.5rem;
        }

        .image-actions {
            display: flex;
            gap: 0.5rem;
        }

        .btn {
            padding: 0.3rem 0.6rem;
            border: 1px solid #333;
            background: #1a1a1a;
            color: #fff;
            cursor: pointer;
            font-size: 0.65rem;
            font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Fira Code', 'Droid Sans Mono', 'Source Code Pro', 'Courier New', monospace;
            text-transform: uppercase;
            letter-spacing: 1px;
            transition: all 0.2s;
        }

        .btn:hover {
            background: #2a2a2a;
            border-color: #444;
        }

        .btn:active {
            transform: scale(0.95);
        }

        .toast {
            position: fixed;
            bottom: 1rem;
            right: 1rem;
            background: #1a1a1a;
            color: #fff;
            padding: 0.5rem 1rem;
            border: 1px solid #333;
            font-size: 0.7rem;
            font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Fira Code', 'Droid Sans Mono', 'Source Code Pro', 'Courier New', monospace;
            opacity: 0;
            transform: translateY(10px);
            transition: all 0.3s;
            z-index: 1000;
        }

        .toast.show {
            opacity: 1;
            transform: translateY(0);
        }
    </style>
</head>
<body>
`

// htmlScript is the client-side behavior: toast, shade expansion,
// clipboard copy and image download. Opaque boilerplate.
const htmlScript = `
    <script>
        function showToast(message) {
            const toast = document.getElementById('toast');
            toast.textContent = message;
            toast.classList.add('show');
            setTimeout(() => {
                toast.classList.remove('show');
            }, 2000);
        }

        function closeAllShades() {
            document.querySelectorAll('.color-block.expanded').forEach(block => {
                block.classList.remove('expanded');
            });
        }

        function toggleShades(element, event) {
            if (event) {
                event.stopPropagation();
            }

            document.querySelectorAll('.color-block.expanded').forEach(block => {
                if (block !== element) {
                    block.classList.remove('expanded');
                }
            });

            element.classList.toggle('expanded');

            if (element.classList.contains('expanded')) {
                const shadesContainer = element.querySelector('.shades-container');
                const rect = element.getBoundingClientRect();
                shadesContainer.style.top = (rect.bottom + window.scrollY) + 'px';
            }
        }

        document.addEventListener('click', function(event) {
            const expandedBlock = document.querySelector('.color-block.expanded');
            if (expandedBlock) {
                const backdrop = expandedBlock.querySelector('.shades-backdrop');
                const shadesContainer = expandedBlock.querySelector('.shades-container');
                const colorName = expandedBlock.querySelector('.color-name');
                const colorHex = expandedBlock.querySelector('.color-hex');

                if (backdrop && backdrop.contains(event.target)) {
                    expandedBlock.classList.remove('expanded');
                } else if (!shadesContainer.contains(event.target) &&
                          !colorName.contains(event.target) &&
                          !colorHex.contains(event.target) &&
                          !expandedBlock.contains(event.target)) {
                    expandedBlock.classList.remove('expanded');
                }
            }
        });

        document.addEventListener('keydown', function(event) {
            if (event.key === 'Escape') {
                closeAllShades();
            }
        });

        function copyHex(hex) {
            navigator.clipboard.writeText(hex).then(() => {
                showToast('Copied: ' + hex);
            });
        }

        async function copyImage(imagePath) {
            try {
                const response = await fetch(imagePath);
                const blob = await response.blob();
                await navigator.clipboard.write([
                    new ClipboardItem({ [blob.type]: blob })
                ]);
                showToast('Image copied!');
            } catch (err) {
                console.error('Failed to copy image:', err);
                showToast('Copy failed. Try download.');
            }
        }

        function downloadImage(imagePath, filename) {
            const link = document.createElement('a');
            link.href = imagePath;
            link.download = filename;
            document.body.appendChild(link);
            link.click();
            document.body.removeChild(link);
            showToast('Downloaded!');
        }
    </script>
</body>
</html>
`
