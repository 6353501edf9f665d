package fontres

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	tdfont "github.com/tdewolff/font"

	"tools.zach/dev/palettegen/internal/atomicfile"
)

// httpClient is a lazily-initialized retryablehttp client shared across
// all font downloads. Initialized once via httpClientOnce.
var (
	httpClient     *retryablehttp.Client
	httpClientOnce sync.Once
)

// getHTTPClient returns the shared retryable HTTP client, initializing
// it on first call.
func getHTTPClient() *retryablehttp.Client {
	httpClientOnce.Do(func() {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.HTTPClient.Timeout = 15 * time.Second
		httpClient.Logger = nil // suppress retryablehttp's default logging
	})
	return httpClient
}

// fontURLRe extracts the font file URL from the CSS response.
// Matches: url(https://fonts.gstatic.com/s/inter/v18/xxx.woff2)
var fontURLRe = regexp.MustCompile(`url\((https://fonts\.gstatic\.com/[^)]+)\)`)

// ParseGoogleFontSpec parses a "google:Family:Weight" spec into its
// parts. Returns family, weight, and whether the spec is valid.
func ParseGoogleFontSpec(spec string) (family, weight string, ok bool) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] != "google" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// fetchGoogle downloads a font from Google Fonts, caching the result.
// Returns raw SFNT bytes, converting from WOFF2 if necessary.
func fetchGoogle(spec, cacheDir string) ([]byte, error) {
	family, weight, ok := ParseGoogleFontSpec(spec)
	if !ok {
		return nil, fmt.Errorf("invalid google font spec %q: expected google:FAMILY:WEIGHT", spec)
	}

	var cacheFile string
	if cacheDir != "" {
		cacheFile = filepath.Join(cacheDir, fmt.Sprintf("%s-%s.ttf", family, weight))
		if data, err := os.ReadFile(cacheFile); err == nil {
			return data, nil
		}
	}

	cssURL := fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:wght@%s",
		url.QueryEscape(family), weight)

	client := getHTTPClient()

	// Google serves WOFF2 URLs to modern User-Agents; we have a converter.
	req, err := retryablehttp.NewRequest(http.MethodGet, cssURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching CSS from Google Fonts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Fonts CSS API returned status %d for %s wght@%s", resp.StatusCode, family, weight)
	}

	cssBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading CSS response: %w", err)
	}

	matches := fontURLRe.FindSubmatch(cssBody)
	if matches == nil {
		return nil, fmt.Errorf("no font URL found in Google Fonts CSS response for %s wght@%s", family, weight)
	}
	fontURL := string(matches[1])

	fontResp, err := client.Get(fontURL)
	if err != nil {
		return nil, fmt.Errorf("downloading font file: %w", err)
	}
	defer fontResp.Body.Close()

	if fontResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("font file download returned status %d", fontResp.StatusCode)
	}

	fontData, err := io.ReadAll(io.LimitReader(fontResp.Body, 10<<20)) // 10 MiB limit
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	if isWOFF2(fontData) {
		sfnt, err := tdfont.ToSFNT(fontData)
		if err != nil {
			return nil, fmt.Errorf("converting WOFF2 to SFNT: %w", err)
		}
		fontData = sfnt
	}

	if cacheFile != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			slog.Warn("failed to create font cache dir", "path", cacheDir, "error", err)
		} else if err := atomicfile.Write(cacheFile, fontData, 0o644); err != nil {
			// Non-fatal: the font still renders this run.
			slog.Warn("failed to cache font", "path", cacheFile, "error", err)
		}
	}

	return fontData, nil
}
