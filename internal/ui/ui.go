// Package ui prints user-facing progress and status lines, kept separate
// from the structured diagnostic log. Colors respect the NO_COLOR and
// FORCE_COLOR environment variables.
package ui

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
)

// ///////////////////////////////////////////////
// Color Support
// ///////////////////////////////////////////////

var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()

	// quiet suppresses Stepf/Donef/Notef output when set.
	quiet atomic.Bool
)

func init() {
	if forceColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich reports whether the terminal supports colored output.
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// SetQuiet suppresses progress output. Warnings and errors still print.
func SetQuiet(q bool) { quiet.Store(q) }

// Quiet reports whether progress output is suppressed.
func Quiet() bool { return quiet.Load() }

// ///////////////////////////////////////////////
// Styled Text
// ///////////////////////////////////////////////

// Success returns success-styled text.
func Success(format string, a ...any) string {
	return styled(color.New(color.FgGreen), format, a...)
}

// Info returns informational styled text.
func Info(format string, a ...any) string {
	return styled(color.New(color.FgCyan), format, a...)
}

// Warn returns warning-styled text.
func Warn(format string, a ...any) string {
	return styled(color.New(color.FgYellow), format, a...)
}

// Error returns error-styled text.
func Error(format string, a ...any) string {
	return styled(color.New(color.FgRed), format, a...)
}

// Muted returns secondary/hint text.
func Muted(format string, a ...any) string {
	return styled(color.New(color.FgHiBlack), format, a...)
}

// Bold returns bold text for headings.
func Bold(format string, a ...any) string {
	return styled(color.New(color.Bold), format, a...)
}

// styled applies c when rich output is available, plain Sprintf otherwise.
func styled(c *color.Color, format string, a ...any) string {
	if !IsRich() {
		return fmt.Sprintf(format, a...)
	}
	return c.Sprintf(format, a...)
}

// ///////////////////////////////////////////////
// Progress Output
// ///////////////////////////////////////////////

// Stepf prints a progress line to stdout unless quiet mode is on.
func Stepf(format string, a ...any) {
	if quiet.Load() {
		return
	}
	fmt.Fprintf(os.Stdout, format+"\n", a...)
}

// Donef prints a green check followed by the formatted message.
func Donef(format string, a ...any) {
	if quiet.Load() {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", Success("✓"), fmt.Sprintf(format, a...))
}

// Notef prints a muted notice line to stdout unless quiet mode is on.
func Notef(format string, a ...any) {
	if quiet.Load() {
		return
	}
	fmt.Fprintln(os.Stdout, Muted(format, a...))
}

// Warnf prints a warning line to stderr. Quiet mode does not suppress it.
func Warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warn("!"), fmt.Sprintf(format, a...))
}

// Errorf prints an error line to stderr. Quiet mode does not suppress it.
func Errorf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error("✗"), fmt.Sprintf(format, a...))
}
