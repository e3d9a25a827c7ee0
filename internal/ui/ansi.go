// Package ui holds the console helpers used by the non-interactive
// commands: colors, themes and framed panels.
package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in color when stdout is a terminal or color is forced.
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(w io.Writer, msg string)   { Fprint(w, Current().Success, Current().SymOK+" "+msg) }
func Fail(w io.Writer, msg string) { Fprint(w, Current().Error, Current().SymFail+" "+msg) }

func Fprint(w io.Writer, color, msg string) { fmt.Fprintln(w, C(color, msg)) }
