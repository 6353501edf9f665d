package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// ///////////////////////////////////////////////
// Colors file parsing
// ///////////////////////////////////////////////

// ErrInputNotFound marks a colors file that does not exist. Callers
// match it with errors.Is to distinguish a missing file from a broken
// one.
var ErrInputNotFound = errors.New("colors file not found")

// ErrNoColors marks a run where parsing (or filtering) left zero usable
// entries. The driver aborts before writing anything when it sees this.
var ErrNoColors = errors.New("no colors found")

// lineRe matches one record: six hex digits, a "#" separator, then the
// display name.
var lineRe = regexp.MustCompile(`^([0-9a-fA-F]{6})\s*#\s*(.+)$`)

// Parse reads newline-delimited records of the form "RRGGBB # Name".
// Blank lines and lines starting with "#" are comments. Lines that
// match neither form are skipped with a debug log. Order is preserved
// and duplicates are kept.
func Parse(r io.Reader) ([]Color, error) {
	var colors []Color
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			slog.Debug("skipping unrecognized line", "line", lineNo, "text", line)
			continue
		}
		c, err := New(m[1], strings.TrimSpace(m[2]))
		if err != nil {
			slog.Debug("skipping unparsable color", "line", lineNo, "error", err)
			continue
		}
		colors = append(colors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading colors: %w", err)
	}
	return colors, nil
}

// ParseFile parses the colors file at path. A missing file is reported
// as [ErrInputNotFound]; an existing file with zero records parses to
// an empty slice and a nil error, leaving the no-colors decision to the
// caller.
func ParseFile(path string) ([]Color, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening colors file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
