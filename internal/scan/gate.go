package scan

import "strings"

// Gate decides whether scans are formatted and recorded. A closed gate still
// lets the scanner produce bricks, just empty ones.
type Gate interface {
	Allow() bool
}

// HostGate opens when the running host matches the host the copy was
// activated for. An empty Expected means no activation is required.
type HostGate struct {
	Expected string
	Actual   string
}

func (g HostGate) Allow() bool {
	if g.Expected == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(g.Actual), strings.TrimSpace(g.Expected))
}

// OpenGate always allows.
type OpenGate struct{}

func (OpenGate) Allow() bool { return true }
