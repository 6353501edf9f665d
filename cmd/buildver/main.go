// Package main prints a SemVer-style build version string for use in ldflags.
// Cross-platform replacement for the Unix-only git describe + date pipeline.
//
// Output format depends on git state:
//
//	No tags, clean:     0.0.0-dev+05ffee5
//	No tags, dirty:     0.0.0-dev+05ffee5.dirty
//	On tag v0.1.0:      0.1.0
//	Dirty tag:          0.1.0-dirty
//	3 past v0.1.0:      0.1.0-dev.3+g1234567
//	Same but dirty:     0.1.0-dev.3+g1234567.dirty
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"tools.zach/dev/palettegen/internal/paths"
)

func main() {
	fmt.Print(buildVersion())
}

// buildVersion assembles the version from git state. Tagged trees go
// through git describe; untagged trees fall back to the release manifest's
// root version plus the abbreviated commit hash.
func buildVersion() string {
	if out, err := exec.Command("git", "describe", "--tags", "--match", "v*", "--dirty").Output(); err == nil {
		return describeVersion(strings.TrimSpace(string(out)))
	}

	base := rootVersion(paths.ReleaseManifest)
	out, err := exec.Command("git", "rev-parse", "--short=7", "HEAD").Output()
	if err != nil {
		return base + "-dev"
	}
	hash := strings.TrimSpace(string(out))

	if worktreeDirty() {
		return fmt.Sprintf("%s-dev+%s.dirty", base, hash)
	}
	return fmt.Sprintf("%s-dev+%s", base, hash)
}

// pastTagRe matches the <tag>-<N>-g<hash> form git describe emits when
// commits exist past the newest tag.
var pastTagRe = regexp.MustCompile(`^(.+)-(\d+)-(g[0-9a-f]+)$`)

// describeVersion converts git describe output into a SemVer string:
// the v prefix goes, "-dirty" becomes a suffix or build-metadata marker,
// and the commits-past-tag form is rewritten as "<tag>-dev.<N>+g<hash>".
func describeVersion(desc string) string {
	dirty := strings.HasSuffix(desc, "-dirty")
	clean := strings.TrimPrefix(strings.TrimSuffix(desc, "-dirty"), "v")

	if m := pastTagRe.FindStringSubmatch(clean); m != nil {
		meta := m[3]
		if dirty {
			meta += ".dirty"
		}
		return fmt.Sprintf("%s-dev.%s+%s", m[1], m[2], meta)
	}

	if dirty {
		return clean + "-dirty"
	}
	return clean
}

// worktreeDirty reports whether the working tree has uncommitted changes.
func worktreeDirty() bool {
	out, err := exec.Command("git", "status", "--porcelain").Output()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// rootVersion reads the version under the "." key of the release manifest
// at path, the same file the runtime update check fetches. Missing file,
// bad JSON, or a missing root entry all fall back to "0.0.0".
func rootVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "0.0.0"
	}
	var manifest map[string]string
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "0.0.0"
	}
	if v, ok := manifest["."]; ok && v != "" {
		return v
	}
	return "0.0.0"
}
