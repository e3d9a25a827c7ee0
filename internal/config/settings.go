package config

import (
	"errors"
	"fmt"
)

// Defaults used when nothing else is configured.
const (
	DefaultPrefix     = "8#"
	DefaultCodeLength = 8
	DefaultBeep       = true

	MinCodeLength = 1
	MaxCodeLength = 50
)

// ErrInvalidCodeLength is returned when a code length falls outside
// [MinCodeLength, MaxCodeLength].
var ErrInvalidCodeLength = errors.New("code length out of range")

// Settings are the values the user can change from the settings panel.
// They live in memory only and reset to the startup values on restart.
type Settings struct {
	Prefix      string
	CodeLength  int
	BeepEnabled bool
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Prefix:      DefaultPrefix,
		CodeLength:  DefaultCodeLength,
		BeepEnabled: DefaultBeep,
	}
}

// SetPrefix replaces the prefix. Any string, including the empty one, is accepted.
func (s *Settings) SetPrefix(p string) { s.Prefix = p }

// SetCodeLength stores n if it is in range. Out-of-range values leave the
// previous value in place and report ErrInvalidCodeLength.
func (s *Settings) SetCodeLength(n int) error {
	if err := ValidateCodeLength(n); err != nil {
		return err
	}
	s.CodeLength = n
	return nil
}

// SetBeepEnabled toggles the scan beep.
func (s *Settings) SetBeepEnabled(on bool) { s.BeepEnabled = on }

func ValidateCodeLength(n int) error {
	if n < MinCodeLength || n > MaxCodeLength {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidCodeLength, n, MinCodeLength, MaxCodeLength)
	}
	return nil
}
