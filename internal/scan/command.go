package scan

import "github.com/Makepad-fr/brickscan/internal/model"

// Command is an input event routed through Controller.Dispatch.
type Command interface {
	command()
}

// ScanSubmitted carries the capture field contents when the terminator key
// was pressed.
type ScanSubmitted struct {
	Raw string
}

// EntryAcknowledged is sent when the user activates a brick in the scan list.
type EntryAcknowledged struct {
	ID model.EntryID
}

// HistoryCopied is sent when the user activates a brick in the history list.
type HistoryCopied struct {
	Index int
}

// Setting names a field of the settings panel.
type Setting string

const (
	SettingPrefix     Setting = "prefix"
	SettingCodeLength Setting = "code_length"
	SettingBeep       Setting = "beep"
)

// SettingChanged commits one settings field. Value is the raw control text.
type SettingChanged struct {
	Setting Setting
	Value   string
}

func (ScanSubmitted) command()     {}
func (EntryAcknowledged) command() {}
func (HistoryCopied) command()     {}
func (SettingChanged) command()    {}
