package store

import "github.com/Makepad-fr/brickscan/internal/model"

// DefaultHistorySize is how many copied codes the history keeps.
const DefaultHistorySize = 5

// History keeps the most recently acknowledged codes, newest first.
type History struct {
	capacity int
	codes    []model.Code
}

// NewHistory builds a history bounded to capacity; non-positive values
// fall back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{capacity: capacity, codes: make([]model.Code, 0, capacity+1)}
}

// Record puts code at the front and drops the oldest entry past capacity.
func (h *History) Record(code model.Code) {
	h.codes = append(h.codes, "")
	copy(h.codes[1:], h.codes)
	h.codes[0] = code
	if len(h.codes) > h.capacity {
		h.codes = h.codes[:h.capacity]
	}
}

// List returns a snapshot, newest first.
func (h *History) List() []model.Code {
	out := make([]model.Code, len(h.codes))
	copy(out, h.codes)
	return out
}

// At returns the i-th newest code.
func (h *History) At(i int) (model.Code, bool) {
	if i < 0 || i >= len(h.codes) {
		return "", false
	}
	return h.codes[i], true
}

func (h *History) Len() int { return len(h.codes) }
