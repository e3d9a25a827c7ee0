// Package scan turns scanner input into bricks and moves acknowledged
// bricks into the copy history.
package scan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Makepad-fr/brickscan/internal/config"
	"github.com/Makepad-fr/brickscan/internal/format"
	"github.com/Makepad-fr/brickscan/internal/model"
	"github.com/Makepad-fr/brickscan/internal/store"
)

// CopiedMessage is the notification shown after a code is copied.
const CopiedMessage = "Copied!"

// ErrUnknownSetting is returned by Dispatch for a SettingChanged naming no
// known field.
var ErrUnknownSetting = errors.New("unknown setting")

// Controller owns the settings and both stores. It is driven from a single
// goroutine (the UI event loop) and does no locking.
type Controller struct {
	settings     config.Settings
	scans        *store.Scans
	history      *store.History
	placeholders map[model.EntryID]struct{}

	gate Gate
	out  Presenter
	log  *slog.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithHistorySize overrides the history capacity.
func WithHistorySize(n int) Option {
	return func(c *Controller) { c.history = store.NewHistory(n) }
}

// New builds a controller starting from s. A nil gate allows everything.
func New(s config.Settings, gate Gate, out Presenter, opts ...Option) *Controller {
	if gate == nil {
		gate = OpenGate{}
	}
	c := &Controller{
		settings:     s,
		scans:        store.NewScans(),
		history:      store.NewHistory(store.DefaultHistorySize),
		placeholders: make(map[model.EntryID]struct{}),
		gate:         gate,
		out:          out,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dispatch routes a command to its handler.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd := cmd.(type) {
	case ScanSubmitted:
		c.HandleScan(cmd.Raw)
	case EntryAcknowledged:
		c.Acknowledge(cmd.ID)
	case HistoryCopied:
		c.CopyHistory(cmd.Index)
	case SettingChanged:
		return c.applySetting(cmd)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
	return nil
}

// HandleScan processes one terminator keystroke worth of input.
func (c *Controller) HandleScan(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if !c.gate.Allow() {
		id := model.NewEntryID()
		c.placeholders[id] = struct{}{}
		c.log.Warn("activation check failed, showing placeholder")
		c.out.ShowEntry(model.Entry{ID: id, Placeholder: true})
		c.beep()
		return
	}
	code := format.Format(raw, c.settings)
	id := c.scans.Add(code)
	c.log.Debug("scan recorded", "id", id, "code", code)
	c.out.ShowEntry(model.Entry{ID: id, Code: code})
	c.beep()
}

// Acknowledge handles activation of a brick. It reports false when the
// brick was already acknowledged, in which case nothing happens.
func (c *Controller) Acknowledge(id model.EntryID) bool {
	if _, ok := c.placeholders[id]; ok {
		delete(c.placeholders, id)
		c.out.RemoveEntry(id)
		return true
	}
	code, ok := c.scans.Acknowledge(id)
	if !ok {
		c.log.Debug("ignoring repeated acknowledgment", "id", id)
		return false
	}
	c.out.Copy(string(code))
	c.out.Notify(CopiedMessage)
	c.out.RemoveEntry(id)
	c.history.Record(code)
	c.out.RenderHistory(c.history.List())
	c.log.Info("code copied", "code", code)
	return true
}

// CopyHistory copies the i-th newest history code without changing history.
func (c *Controller) CopyHistory(i int) bool {
	code, ok := c.history.At(i)
	if !ok {
		return false
	}
	c.out.Copy(string(code))
	c.out.Notify(CopiedMessage)
	return true
}

// SetPrefix replaces the prefix used for subsequent scans.
func (c *Controller) SetPrefix(p string) {
	c.settings.SetPrefix(p)
}

// SetCodeLength stores n when it is in range and silently keeps the
// previous value otherwise.
func (c *Controller) SetCodeLength(n int) {
	if err := c.settings.SetCodeLength(n); err != nil {
		c.log.Debug("code length ignored", "error", err)
	}
}

func (c *Controller) SetBeepEnabled(on bool) {
	c.settings.SetBeepEnabled(on)
}

// Settings returns the current settings.
func (c *Controller) Settings() config.Settings { return c.settings }

// Entries returns the codes still waiting for acknowledgment. Placeholders
// are not part of it.
func (c *Controller) Entries() []model.Entry { return c.scans.Entries() }

// History returns the copy history, newest first.
func (c *Controller) History() []model.Code { return c.history.List() }

func (c *Controller) applySetting(cmd SettingChanged) error {
	switch cmd.Setting {
	case SettingPrefix:
		c.SetPrefix(cmd.Value)
	case SettingCodeLength:
		n, err := strconv.Atoi(strings.TrimSpace(cmd.Value))
		if err != nil {
			c.log.Debug("code length ignored", "value", cmd.Value)
			return nil
		}
		c.SetCodeLength(n)
	case SettingBeep:
		on, err := strconv.ParseBool(strings.TrimSpace(cmd.Value))
		if err != nil {
			c.log.Debug("beep value ignored", "value", cmd.Value)
			return nil
		}
		c.SetBeepEnabled(on)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, cmd.Setting)
	}
	return nil
}

func (c *Controller) beep() {
	if c.settings.BeepEnabled {
		c.out.Beep()
	}
}
