// Package remote locates the project's GitHub repository so other packages
// can build raw-content URLs without hardcoding a fork.
//
// The owner/repo pair resolves once, on first use. Release builds pin it
// with ldflags; otherwise it is parsed from the local git origin, and when
// neither yields a value every URL comes back empty.
package remote

import (
	"context"
	"log/slog"
	"os/exec"
	"regexp"
	"sync"
	"time"
)

// Pinned at release time via:
//
//	-X tools.zach/dev/palettegen/internal/remote.ldOwner=...
//	-X tools.zach/dev/palettegen/internal/remote.ldRepo=...
var (
	ldOwner string
	ldRepo  string
)

var (
	resolveOnce sync.Once
	owner       string
	repo        string
)

// originRe pulls owner and repo out of a GitHub origin URL, accepting both
// the HTTPS (github.com/) and SSH (github.com:) forms.
var originRe = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/.]+)`)

// parseOrigin extracts the owner/repo pair from a git remote URL.
func parseOrigin(url string) (string, string, bool) {
	m := originRe.FindStringSubmatch(url)
	if len(m) != 3 {
		return "", "", false
	}
	return m[1], m[2], true
}

// resolve fills owner and repo on first call, preferring the ldflags pin
// over the local git origin.
func resolve() {
	resolveOnce.Do(func() {
		if ldOwner != "" && ldRepo != "" {
			owner, repo = ldOwner, ldRepo
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		out, err := exec.CommandContext(ctx, "git", "remote", "get-url", "origin").Output()
		if err != nil {
			slog.Debug("remote: no ldflags pin and no usable git origin", "error", err)
			return
		}
		if o, r, ok := parseOrigin(string(out)); ok {
			owner, repo = o, r
		}
	})
}

// RawURL returns the raw.githubusercontent.com URL for path on the main
// branch, or the empty string when the repository is unknown.
func RawURL(path string) string {
	resolve()
	if owner == "" || repo == "" {
		return ""
	}
	return "https://raw.githubusercontent.com/" + owner + "/" + repo + "/main/" + path
}
