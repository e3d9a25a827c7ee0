// Package format turns raw scanner payloads into display codes.
package format

import (
	"strings"

	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/model"
)

const (
	// Delimiter separates the fields of a barcode payload.
	Delimiter = "*"
	// Sentinel stands in for the payload when the barcode has too few fields.
	Sentinel = "N/A"

	payloadIndex = 2
	minSegments  = 4
)

// Segment returns the third *-delimited field of raw, or Sentinel when raw
// holds fewer than three delimiters.
func Segment(raw string) string {
	parts := strings.Split(raw, Delimiter)
	if len(parts) < minSegments {
		return Sentinel
	}
	return parts[payloadIndex]
}

// Format prefixes the extracted segment with s.Prefix.
// s.CodeLength is stored by the settings panel but does not affect the output.
func Format(raw string, s config.Settings) model.Code {
	return model.Code(s.Prefix + Segment(raw))
}
