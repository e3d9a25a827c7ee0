package scan

import "github.com/Makepad-fr/brickscan/internal/model"

//go:generate mockgen -destination "mock_presenter_test.go" -package $GOPACKAGE -write_package_comment=false github.com/Makepad-fr/brickscan/internal/scan Presenter

// Presenter is everything the controller needs from the screen, the speaker
// and the clipboard. Implementations must not fail loudly: copy and beep
// errors are theirs to swallow.
type Presenter interface {
	// ShowEntry appends a brick to the scan list.
	ShowEntry(e model.Entry)
	// RemoveEntry drops the brick bound to id.
	RemoveEntry(id model.EntryID)
	// RenderHistory redraws the history list, newest first.
	RenderHistory(codes []model.Code)
	// Notify shows a transient message; a newer call replaces an older one.
	Notify(msg string)
	Beep()
	Copy(text string)
}
