// Package main implements the genconfig tool that writes config.default.toml
// from config.ExampleConfig().
//
// It is invoked by go generate via the directive in internal/config/config.go.
package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/palettegen/internal/config"
)

func main() {
	text, err := render(config.ExampleConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	// go generate runs from the package directory (internal/config/).
	// With go.mod at root, ../../ reaches the repo root where configdata.go
	// embeds config.default.toml — single source of truth.
	outPath := "../../config.default.toml"
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote config.default.toml\n")
}

// render encodes cfg as TOML and annotates it from [config.ConfigDocs]:
// a file header, a banner per section, comment lines above documented keys,
// and commented-out alternatives below them. Documented keys the encoder
// left out are appended to their section, so every option shows up in the
// generated file.
func render(cfg *config.Config) (string, error) {
	var raw bytes.Buffer
	if err := toml.NewEncoder(&raw).Encode(cfg); err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	out := []string{
		"# ///////////////////////////////////////////////",
		"# Palettegen Configuration",
		"# ///////////////////////////////////////////////",
		"",
	}

	var section []string         // current [a.b] path
	emitted := map[string]bool{} // doc keys already written

	for _, line := range strings.Split(raw.String(), "\n") {
		trimmed := strings.TrimSpace(line)

		// The encoder's blank lines are dropped; spacing is ours.
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[[") {
			// Close out the previous section before switching.
			out = appendOmitted(out, section, emitted)

			name := strings.Trim(trimmed, "[] ")
			section = strings.Split(name, ".")

			out = append(out, "", fmt.Sprintf("# ///// %s /////", sectionTitle(name)), "")
			if doc, ok := config.ConfigDocs[name]; ok && doc.Comment != "" {
				for _, cl := range strings.Split(doc.Comment, "\n") {
					out = append(out, "# "+cl)
				}
			}
			out = append(out, trimmed)
			continue
		}

		// Continuation and comment lines pass through unindented.
		if !strings.Contains(trimmed, "=") || strings.HasPrefix(trimmed, "#") {
			out = append(out, trimmed)
			continue
		}

		key := strings.TrimSpace(strings.SplitN(trimmed, "=", 2)[0])
		path := key
		if len(section) > 0 {
			path = strings.Join(section, ".") + "." + key
		}
		emitted[path] = true

		doc, ok := config.ConfigDocs[path]
		if !ok {
			out = append(out, trimmed)
			continue
		}
		if doc.Comment != "" {
			for _, cl := range strings.Split(doc.Comment, "\n") {
				out = append(out, "# "+cl)
			}
		}
		out = append(out, trimmed)
		for _, alt := range doc.Alternatives {
			out = append(out, "# "+alt)
		}
	}
	out = appendOmitted(out, section, emitted)

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n", nil
}

// appendOmitted adds the documented keys of section that the encoder left
// out, typically zero values behind omitempty tags. Only their comments and
// commented-out alternatives are written, sorted by key for stable output.
func appendOmitted(out []string, section []string, emitted map[string]bool) []string {
	if len(section) == 0 {
		return out
	}
	prefix := strings.Join(section, ".") + "."

	var missing []string
	for path := range config.ConfigDocs {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok || strings.Contains(rest, ".") || emitted[path] {
			continue
		}
		missing = append(missing, path)
	}
	sort.Strings(missing)

	for _, path := range missing {
		doc := config.ConfigDocs[path]
		out = append(out, "")
		if doc.Comment != "" {
			for _, cl := range strings.Split(doc.Comment, "\n") {
				out = append(out, "# "+cl)
			}
		}
		for _, alt := range doc.Alternatives {
			out = append(out, "# "+alt)
		}
		emitted[path] = true
	}
	return out
}

// sectionTitle derives the banner label from a section header: the last
// dotted segment, first letter upper-cased. "image" yields "Image".
func sectionTitle(section string) string {
	parts := strings.Split(section, ".")
	last := parts[len(parts)-1]
	if last == "" {
		return ""
	}
	return strings.ToUpper(last[:1]) + last[1:]
}
