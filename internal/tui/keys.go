package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit      key.Binding
	SwitchFocus key.Binding
	Activate    key.Binding
	Settings    key.Binding
	History     key.Binding
	Close       key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "scan")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "bricks/input")),
		Activate:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "copy")),
		Settings:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
		History:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Activate, k.Settings, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchFocus, k.Activate},
		{k.Settings, k.History, k.Close, k.Quit},
	}
}
