package tui

import (
	"io"
	"os"
	"sync"
)

// Output is the terminal the program renders to. Writes are serialized so
// the bell and clipboard escape sequences sent from commands never land in
// the middle of a frame. The embedded file keeps Fd available so Bubble Tea
// still detects the TTY.
type Output struct {
	*os.File
	mu sync.Mutex
	w  io.Writer
}

func NewOutput(f *os.File) *Output {
	return &Output{File: f, w: f}
}

func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// WriteString shadows (*os.File).WriteString, which would skip the lock.
func (o *Output) WriteString(s string) (int, error) {
	return o.Write([]byte(s))
}
