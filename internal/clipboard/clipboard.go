// Package clipboard copies text to the system clipboard, falling back to an
// OSC 52 escape sequence when no platform clipboard is reachable (SSH
// sessions, headless Linux without xclip/xsel).
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var errNoClipboard = errors.New("no clipboard available")

type Clipboard struct {
	native    func(string) error
	supported bool
	term      io.Writer
	tmux      bool
}

// New returns a clipboard that falls back to writing OSC 52 to term.
func New(term io.Writer) *Clipboard {
	return &Clipboard{
		native:    atotto.WriteAll,
		supported: !atotto.Unsupported,
		term:      term,
		tmux:      os.Getenv("TMUX") != "",
	}
}

// Copy tries the platform clipboard first. The returned error is only
// informative; callers are expected to carry on.
func (c *Clipboard) Copy(text string) error {
	var nativeErr error
	if c.supported {
		if nativeErr = c.native(text); nativeErr == nil {
			return nil
		}
	}
	if c.term == nil {
		if nativeErr == nil {
			nativeErr = errNoClipboard
		}
		return fmt.Errorf("copy: %w", nativeErr)
	}
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.term); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
