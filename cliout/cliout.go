// Package cliout provides styled terminal output for the launcher commands,
// with ANSI colors, Unicode symbols, and ASCII fallbacks for consoles that
// cannot display them.
package cliout

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols with ASCII fallbacks
const (
	symbolCheck   = "✓"
	symbolCross   = "✗"
	symbolWarning = "⚠"
	symbolInfo    = "ℹ"

	asciiCheck   = "[+]"
	asciiCross   = "[-]"
	asciiWarning = "[!]"
	asciiInfo    = "[i]"
)

var (
	mu      sync.RWMutex
	noColor = false
)

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor enables color output regardless of prior setting.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

func paint(color, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return color + s + Reset
}

// supportsUnicode detects if the terminal supports Unicode symbols.
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, ConEmu, and PowerShell handle
		// Unicode; plain legacy consoles get the ASCII fallbacks.
		if os.Getenv("WT_SESSION") != "" {
			return true
		}
		if os.Getenv("TERM_PROGRAM") == "vscode" {
			return true
		}
		if os.Getenv("ConEmuPID") != "" {
			return true
		}
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}
		if os.Getenv("TERM") != "" {
			return true
		}
		return false
	}
	return true
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", paint(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", paint(BrightGreen, getIcon(symbolCheck, asciiCheck)), msg)
}

// Error prints an error message with a red cross.
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", paint(BrightRed, getIcon(symbolCross, asciiCross)), msg)
}

// Warning prints a warning message with a yellow triangle.
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", paint(BrightYellow, getIcon(symbolWarning, asciiWarning)), msg)
}

// Info prints an info message with a blue info icon.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", paint(BrightBlue, getIcon(symbolInfo, asciiInfo)), msg)
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Printf("   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Hint prints compact hints on a single line with bullet separators.
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Println(paint(Dim, strings.Join(hints, " • ")))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
