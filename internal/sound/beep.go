// Package sound plays the scan confirmation beep.
package sound

import "io"

// bell is BEL; the terminal picks pitch and length of the tone.
const bell = "\a"

// Beeper rings the terminal bell on w.
type Beeper struct {
	w io.Writer
}

func NewBeeper(w io.Writer) *Beeper {
	return &Beeper{w: w}
}

// Beep rings once. Any write failure is dropped.
func (b *Beeper) Beep() {
	if b == nil || b.w == nil {
		return
	}
	_, _ = io.WriteString(b.w, bell)
}
