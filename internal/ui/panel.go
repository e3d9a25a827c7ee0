package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return utf8.RuneCountInString(stripANSI(s)) }

// BrickLine renders one code as a console brick.
func BrickLine(code string) string {
	return C(Current().Accent, Current().Brick) + " " + code
}

// Panel returns lines framed with the current theme.
func Panel(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := visibleWidth(ln); w > maxw {
			maxw = w
		}
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		pad := strings.Repeat(" ", maxw-visibleWidth(ln))
		b.WriteString(t.V + " " + ln + pad + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// PrintPanel writes Panel(lines) to w.
func PrintPanel(w io.Writer, lines []string) {
	fmt.Fprint(w, Panel(lines))
}
