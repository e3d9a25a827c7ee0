package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/brickscan/internal/model"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Beeper plays the scan beep.
type Beeper interface {
	Beep()
}

// op is a deferred change to the screen, applied inside Update.
type op func(m *Model) tea.Cmd

// gateway implements scan.Presenter. The controller calls it synchronously
// from Update; the calls are queued and applied to the model right after.
type gateway struct {
	ops    []op
	clip   Copier
	beeper Beeper
	log    *slog.Logger
}

func newGateway(clip Copier, beeper Beeper, log *slog.Logger) *gateway {
	return &gateway{clip: clip, beeper: beeper, log: log}
}

func (g *gateway) ShowEntry(e model.Entry) {
	g.ops = append(g.ops, func(m *Model) tea.Cmd {
		return m.bricks.InsertItem(len(m.bricks.Items()), brickItem{entry: e})
	})
}

func (g *gateway) RemoveEntry(id model.EntryID) {
	g.ops = append(g.ops, func(m *Model) tea.Cmd {
		for i, it := range m.bricks.Items() {
			if b, ok := it.(brickItem); ok && b.entry.ID == id {
				m.bricks.RemoveItem(i)
				if n := len(m.bricks.Items()); n > 0 && m.bricks.Index() >= n {
					m.bricks.Select(n - 1)
				}
				break
			}
		}
		if len(m.bricks.Items()) == 0 && m.focus == focusBricks {
			m.focusInput()
		}
		return nil
	})
}

func (g *gateway) RenderHistory(codes []model.Code) {
	g.ops = append(g.ops, func(m *Model) tea.Cmd {
		return m.history.SetItems(historyItems(codes))
	})
}

func (g *gateway) Notify(msg string) {
	g.ops = append(g.ops, func(m *Model) tea.Cmd {
		return m.showToast(msg)
	})
}

func (g *gateway) Beep() {
	if g.beeper == nil {
		return
	}
	b := g.beeper
	g.ops = append(g.ops, func(*Model) tea.Cmd {
		return func() tea.Msg {
			b.Beep()
			return nil
		}
	})
}

func (g *gateway) Copy(text string) {
	if g.clip == nil {
		return
	}
	clip, log := g.clip, g.log
	g.ops = append(g.ops, func(*Model) tea.Cmd {
		return func() tea.Msg {
			if err := clip.Copy(text); err != nil {
				log.Debug("clipboard copy failed", "error", err)
			}
			return nil
		}
	})
}

func (g *gateway) drain() []op {
	ops := g.ops
	g.ops = nil
	return ops
}
