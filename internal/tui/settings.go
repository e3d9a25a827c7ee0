package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/scan"
)

type settingsField int

const (
	fieldPrefix settingsField = iota
	fieldLength
	fieldBeep
	fieldCount
)

// settingsForm is the settings panel. Each field is committed when the user
// presses enter on it or leaves it, mirroring an input's change event.
type settingsForm struct {
	prefix textinput.Model
	length textinput.Model
	beep   bool
	field  settingsField
}

func newSettingsForm() settingsForm {
	p := textinput.New()
	p.Prompt = "Prefix:      "
	p.CharLimit = 32

	l := textinput.New()
	l.Prompt = "Code length: "
	l.CharLimit = 3
	l.Placeholder = fmt.Sprintf("%d-%d", config.MinCodeLength, config.MaxCodeLength)

	return settingsForm{prefix: p, length: l}
}

// load fills the form with the current settings and focuses the first field.
func (f *settingsForm) load(s config.Settings) {
	f.prefix.SetValue(s.Prefix)
	f.length.SetValue(strconv.Itoa(s.CodeLength))
	f.beep = s.BeepEnabled
	f.field = fieldPrefix
	f.focusField()
}

func (f *settingsForm) focusField() {
	f.prefix.Blur()
	f.length.Blur()
	switch f.field {
	case fieldPrefix:
		f.prefix.Focus()
	case fieldLength:
		f.length.Focus()
	}
}

// commit returns the command for the focused field.
func (f *settingsForm) commit() scan.SettingChanged {
	switch f.field {
	case fieldPrefix:
		return scan.SettingChanged{Setting: scan.SettingPrefix, Value: f.prefix.Value()}
	case fieldLength:
		return scan.SettingChanged{Setting: scan.SettingCodeLength, Value: strings.TrimSpace(f.length.Value())}
	default:
		return scan.SettingChanged{Setting: scan.SettingBeep, Value: strconv.FormatBool(f.beep)}
	}
}

func (f *settingsForm) move(delta int) {
	f.field = settingsField((int(f.field) + delta + int(fieldCount)) % int(fieldCount))
	f.focusField()
}

func (f *settingsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldPrefix:
		f.prefix, cmd = f.prefix.Update(msg)
	case fieldLength:
		f.length, cmd = f.length.Update(msg)
	}
	return cmd
}

func (f settingsForm) view() string {
	box := "[ ]"
	if f.beep {
		box = "[x]"
	}
	beep := "Beep:        " + box
	if f.field == fieldBeep {
		beep = selectedStyle.Render(beep)
	}
	lines := []string{
		titleStyle.Render("Settings"),
		"",
		f.prefix.View(),
		f.length.View(),
		beep,
		"",
		helpStyle.Render("tab/↑↓ move • enter apply • space toggle beep • esc close"),
	}
	return strings.Join(lines, "\n")
}
