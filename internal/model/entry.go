package model

import "github.com/rs/xid"

// Code is a formatted barcode: the configured prefix followed by the
// extracted segment. Values are never mutated once produced.
type Code string

// EntryID binds a displayed brick to its scan entry.
type EntryID string

// NewEntryID returns a fresh, sortable entry handle.
func NewEntryID() EntryID { return EntryID(xid.New().String()) }

// Entry is a brick in the scan list waiting to be acknowledged.
// Placeholder entries carry no code and are never recorded anywhere.
type Entry struct {
	ID          EntryID
	Code        Code
	Placeholder bool
}
