package ui

import "strings"

// Theme bundles palette, symbols and box borders.
// All helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	Brick                                         string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymOK, SymFail                                string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		Brick:    "▌",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymOK: "✔", SymFail: "✖",
	}
}

// SetTheme picks classic, neon or mono; unknown names mean classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Brick:    "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Brick:    "#",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymOK: "ok", SymFail: "error:",
		}
	default:
		current = classic()
	}
}

func Current() Theme { return current }
