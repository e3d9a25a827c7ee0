package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/brickscan/internal/model"
)

// brickItem adapts a scan entry to bubbles/list.Item.
type brickItem struct {
	entry model.Entry
}

func (i brickItem) FilterValue() string { return string(i.entry.Code) }

// historyItem is a brick in the history panel.
type historyItem struct {
	code model.Code
}

func (i historyItem) FilterValue() string { return string(i.code) }

func historyItems(codes []model.Code) []list.Item {
	out := make([]list.Item, 0, len(codes))
	for _, c := range codes {
		out = append(out, historyItem{code: c})
	}
	return out
}

// brickDelegate draws every item as a single-line brick.
type brickDelegate struct{}

func (d brickDelegate) Height() int                               { return 1 }
func (d brickDelegate) Spacing() int                              { return 0 }
func (d brickDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d brickDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var code string
	switch it := item.(type) {
	case brickItem:
		code = string(it.entry.Code)
	case historyItem:
		code = string(it.code)
	default:
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+brickStyle.Render(code))
}

func newBrickList(title string, items []list.Item) list.Model {
	l := list.New(items, brickDelegate{}, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("brick", "bricks")
	return l
}
