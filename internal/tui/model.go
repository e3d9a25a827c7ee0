// Package tui is the terminal front end: a capture field fed by a
// keyboard-wedge scanner, the brick list, and the history and settings panels.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/scan"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusBricks
	// focusNone follows an acknowledgment until the refocus timer fires.
	focusNone
)

type panelKind int

const (
	panelNone panelKind = iota
	panelSettings
	panelHistory
)

const (
	refocusDelay    = 100 * time.Millisecond
	defaultToastTTL = 1200 * time.Millisecond
)

type toastExpiredMsg struct{ seq int }

type refocusMsg struct{}

// Options wire the model to its collaborators.
type Options struct {
	Settings      config.Settings
	Gate          scan.Gate
	Clipboard     Copier
	Beeper        Beeper
	ToastDuration time.Duration
	Logger        *slog.Logger
	// Output is the terminal shared with Clipboard and Beeper. Nil means
	// Bubble Tea's default, stdout.
	Output *Output
}

type Model struct {
	ctrl *scan.Controller
	gw   *gateway

	input   textinput.Model
	bricks  list.Model
	history list.Model
	form    settingsForm
	help    help.Model
	keys    keyMap

	focus     focusArea
	panel     panelKind
	autoFocus bool

	toast    string
	toastSeq int
	toastTTL time.Duration

	width, height int
	log           *slog.Logger
}

// New builds the model and the controller behind it.
func New(opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ttl := opt.ToastDuration
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	gw := newGateway(opt.Clipboard, opt.Beeper, log)

	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "Scan a barcode..."
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		ctrl:      scan.New(opt.Settings, opt.Gate, gw, scan.WithLogger(log)),
		gw:        gw,
		input:     ti,
		bricks:    newBrickList("Scans", nil),
		history:   newBrickList("History", nil),
		form:      newSettingsForm(),
		help:      help.New(),
		keys:      defaultKeys(),
		focus:     focusInput,
		autoFocus: true,
		toastTTL:  ttl,
		width:     80,
		height:    24,
		log:       log,
	}
	m.history.SetStatusBarItemName("code", "codes")
	m.resize()
	return m
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opt Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}
	p := tea.NewProgram(New(opt), popts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case toastExpiredMsg:
		// a newer toast restarted the timer
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case refocusMsg:
		if m.autoFocus && m.panel == panelNone && m.focus == focusNone {
			m.focusInput()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.panel {
		case panelSettings:
			return m.updateSettings(msg)
		case panelHistory:
			return m.updateHistory(msg)
		}
		switch m.focus {
		case focusBricks:
			return m.updateBricks(msg)
		case focusNone:
			return m.updateBlurred(msg)
		}
		return m.updateInput(msg)
	}

	var inCmd, listCmd tea.Cmd
	m.input, inCmd = m.input.Update(msg)
	m.bricks, listCmd = m.bricks.Update(msg)
	return m, tea.Batch(inCmd, listCmd)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		raw := m.input.Value()
		m.input.SetValue("")
		return m, m.dispatch(scan.ScanSubmitted{Raw: raw})
	case key.Matches(msg, m.keys.SwitchFocus):
		if len(m.bricks.Items()) > 0 {
			m.focus = focusBricks
			m.input.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Settings):
		return m, m.openSettings()
	case key.Matches(msg, m.keys.History):
		return m, m.openHistory()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBricks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Activate):
		b, ok := m.bricks.SelectedItem().(brickItem)
		if !ok {
			return m, nil
		}
		cmd := m.dispatch(scan.EntryAcknowledged{ID: b.entry.ID})
		if m.focus == focusBricks {
			// the activated brick is gone; wait before taking keys again
			m.focus = focusNone
		}
		return m, tea.Batch(cmd, refocusAfter(refocusDelay))
	case key.Matches(msg, m.keys.SwitchFocus, m.keys.Close):
		m.focusInput()
		return m, nil
	case key.Matches(msg, m.keys.Settings):
		return m, m.openSettings()
	case key.Matches(msg, m.keys.History):
		return m, m.openHistory()
	case msg.Type == tea.KeyRunes:
		return m.redirectToInput(msg)
	}
	var cmd tea.Cmd
	m.bricks, cmd = m.bricks.Update(msg)
	return m, cmd
}

// updateBlurred drops everything but typed characters, which belong to
// the next scan.
func (m Model) updateBlurred(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		return m.redirectToInput(msg)
	}
	return m, nil
}

func (m Model) redirectToInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.focusInput()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+s":
		cmd := m.dispatch(m.form.commit())
		m.closePanel()
		return m, cmd
	case "tab", "down":
		cmd := m.dispatch(m.form.commit())
		m.form.move(1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.dispatch(m.form.commit())
		m.form.move(-1)
		return m, cmd
	case "enter":
		return m, m.dispatch(m.form.commit())
	case " ":
		if m.form.field == fieldBeep {
			m.form.beep = !m.form.beep
			return m, m.dispatch(m.form.commit())
		}
	}
	return m, m.form.update(msg)
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close, m.keys.History):
		m.closePanel()
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		if len(m.history.Items()) == 0 {
			return m, nil
		}
		return m, m.dispatch(scan.HistoryCopied{Index: m.history.Index()})
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// dispatch runs cmd through the controller and applies whatever it asked
// the screen to do.
func (m *Model) dispatch(cmd scan.Command) tea.Cmd {
	if err := m.ctrl.Dispatch(cmd); err != nil {
		m.log.Error("dispatch", "command", fmt.Sprintf("%T", cmd), "error", err)
	}
	var cmds []tea.Cmd
	for _, o := range m.gw.drain() {
		cmds = append(cmds, o(m))
	}
	return tea.Batch(cmds...)
}

func (m *Model) showToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) openSettings() tea.Cmd {
	m.panel = panelSettings
	m.autoFocus = false
	m.input.Blur()
	m.form.load(m.ctrl.Settings())
	return textinput.Blink
}

func (m *Model) openHistory() tea.Cmd {
	m.panel = panelHistory
	m.autoFocus = false
	m.input.Blur()
	return m.history.SetItems(historyItems(m.ctrl.History()))
}

func (m *Model) closePanel() {
	m.panel = panelNone
	m.autoFocus = true
	m.form.prefix.Blur()
	m.form.length.Blur()
	m.focusInput()
}

// ready reports whether the next scan will land in the capture field.
func (m Model) ready() bool {
	return m.autoFocus && m.panel == panelNone && m.focus == focusInput
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.input.Width = w - 6
	listHeight := m.height - 12
	if listHeight < 3 {
		listHeight = 3
	}
	m.bricks.SetSize(w, listHeight)
	m.history.SetSize(w-4, 12)
	m.help.Width = w
}

func refocusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return refocusMsg{} })
}

func (m Model) View() string {
	state := successStyle.Render("ready")
	if !m.ready() {
		state = errorStyle.Render("not ready")
	}
	header := fmt.Sprintf("%s   %s %d  %s %d   %s",
		titleStyle.Render("Brickscan"),
		pendingStyle.Render("●"), len(m.bricks.Items()),
		accentStyle.Render("↺"), len(m.ctrl.History()),
		state,
	)

	var body string
	switch m.panel {
	case panelSettings:
		body = panelBox().Render(m.form.view())
	case panelHistory:
		body = panelBox().Render(m.history.View())
	default:
		body = inputBox(m.ready()).Render(m.input.View()) + "\n" + m.bricks.View()
	}

	lines := []string{header, body}
	if m.toast != "" {
		lines = append(lines, toastStyle.Render(m.toast))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, helpStyle.Render(m.help.View(m.keys)))
	return panelString(strings.Join(lines, "\n"))
}

func panelString(inner string) string {
	return panelBox().Render(inner)
}
