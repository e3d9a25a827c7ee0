// Package store holds the in-memory scan list and copy history.
// Neither store is safe for concurrent use; the scan controller owns both
// and mutates them from a single goroutine.
package store

import "github.com/Makepad-fr/brickscan/internal/model"

// Scans is the ordered list of codes shown as bricks and not yet acknowledged.
// Duplicates are allowed; there is no upper bound.
type Scans struct {
	entries []model.Entry
	newID   func() model.EntryID
}

func NewScans() *Scans {
	return &Scans{newID: model.NewEntryID}
}

// Add appends code and returns the handle the presentation binds its brick to.
func (s *Scans) Add(code model.Code) model.EntryID {
	id := s.newID()
	s.entries = append(s.entries, model.Entry{ID: id, Code: code})
	return id
}

// Acknowledge removes the entry and returns its code. The second call for the
// same id finds nothing and returns false.
func (s *Scans) Acknowledge(id model.EntryID) (model.Code, bool) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e.Code, true
		}
	}
	return "", false
}

// Entries returns a copy in display order.
func (s *Scans) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Scans) Len() int { return len(s.entries) }
