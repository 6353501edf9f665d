// Package update surfaces newer palettegen releases via the published
// release manifest. Watch mode fires Check in the background; a hit is a
// log line, never an interrupt.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"tools.zach/dev/palettegen/internal/paths"
	"tools.zach/dev/palettegen/internal/remote"
)

var (
	checkURL     string
	checkURLOnce sync.Once
)

// releaseManifestURL resolves the manifest location once. Empty when no
// repository remote can be determined.
func releaseManifestURL() string {
	checkURLOnce.Do(func() { checkURL = remote.RawURL(paths.ReleaseManifest) })
	return checkURL
}

// ///////////////////////////////////////////////
// Public API
// ///////////////////////////////////////////////

// Check fetches the release manifest and logs when a newer version is
// published. Non-fatal: failures are logged at debug and otherwise ignored.
func Check(current string) {
	url := releaseManifestURL()
	if url == "" {
		slog.Debug("skipping release check: no remote configured")
		return
	}
	latest, err := latestPublished(url)
	if err != nil {
		slog.Debug("release check failed", "error", err)
		return
	}
	if latest == "" || latest == current {
		return
	}
	if versionLess(current, latest) {
		slog.Info("newer release available", "current", current, "latest", latest)
	}
}

// ///////////////////////////////////////////////
// Internal helpers
// ///////////////////////////////////////////////

// latestPublished fetches the release manifest at url and returns the
// version recorded under the "." key, the latest stable release. The body
// read is capped at 64 KiB.
func latestPublished(url string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}

	var manifest map[string]string
	if err := json.Unmarshal(body, &manifest); err != nil {
		return "", fmt.Errorf("decode manifest: %w", err)
	}
	return manifest["."], nil
}

// versionLess reports whether version a precedes b. Only three-part
// numeric versions compare; anything else (including "dev" builds) never
// triggers the notice. A pre-release precedes its own release, so
// "0.1.0-dev" < "0.1.0".
func versionLess(a, b string) bool {
	ta, aok := versionTriple(a)
	tb, bok := versionTriple(b)
	if !aok || !bok {
		return false
	}
	if ta != tb {
		for i := range ta {
			if ta[i] != tb[i] {
				return ta[i] < tb[i]
			}
		}
	}
	return preRelease(a) && !preRelease(b)
}

// preRelease reports whether a version carries a pre-release suffix,
// as in "0.1.0-dev" or "v1.0.0-beta+build".
func preRelease(s string) bool {
	return strings.Contains(strings.TrimPrefix(s, "v"), "-")
}

// versionTriple parses "v1.2.3" or "0.1.0-dev" into its numeric parts.
// Pre-release and build suffixes after "-" or "+" are stripped. ok is
// false when s is not a three-part numeric version.
func versionTriple(s string) (t [3]int, ok bool) {
	s = strings.TrimPrefix(s, "v")
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return t, false
	}
	for i, p := range parts {
		if idx := strings.IndexAny(p, "-+"); idx >= 0 {
			p = p[:idx]
		}
		if p == "" {
			return t, false
		}
		n := 0
		for _, c := range p {
			if c < '0' || c > '9' {
				return t, false
			}
			n = n*10 + int(c-'0')
		}
		t[i] = n
	}
	return t, true
}
