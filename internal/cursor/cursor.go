// Package cursor maintains the current position in the navigation index
// and executes move and activate operations with wraparound.
package cursor

import (
	"go.uber.org/zap"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
)

// State is the cursor lifecycle state.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Activator invokes an element's primary action. The cursor does not know
// how activation happens on the surrounding page; adapters do.
type Activator interface {
	Activate(e index.Entry) error
}

// ActivatorFunc adapts a function to the Activator port.
type ActivatorFunc func(e index.Entry) error

func (f ActivatorFunc) Activate(e index.Entry) error { return f(e) }

// Cursor is the navigation state machine. All failures surface as
// feedback; Apply never returns an error to the caller.
type Cursor struct {
	fb        *feedback.Channel
	activator Activator
	logger    *zap.Logger

	state State
	ix    *index.Index
	pos   int
}

// New creates an idle cursor. A nil activator makes Activate a no-op
// (feedback still plays).
func New(fb *feedback.Channel, activator Activator, logger *zap.Logger) *Cursor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cursor{fb: fb, activator: activator, logger: logger}
}

// State returns the lifecycle state.
func (c *Cursor) State() State { return c.state }

// Position returns the 0-based cursor position. Undefined when the index
// is empty or the cursor idle.
func (c *Cursor) Position() int { return c.pos }

// Len returns the size of the current index.
func (c *Cursor) Len() int {
	if c.ix == nil {
		return 0
	}
	return c.ix.Len()
}

// Current returns the focused entry, or false when the index is empty or
// the cursor idle.
func (c *Cursor) Current() (index.Entry, bool) {
	if c.state != Active || c.ix == nil || c.ix.Len() == 0 {
		return index.Entry{}, false
	}
	return c.ix.At(c.pos), true
}

// Start activates the cursor over a freshly built index, positions it at
// the first element, and emits feedback for it. An empty index still
// activates but reports there is nothing to navigate.
func (c *Cursor) Start(ix *index.Index) {
	c.ix = ix
	c.pos = 0
	c.state = Active
	c.logger.Info("navigation started", zap.Int("elements", ix.Len()))

	c.fb.Say(c.messages().Started(ix.Len()))
	if ix.Len() == 0 {
		c.fb.Say(c.messages().NothingToNavigate())
		return
	}
	c.announce(feedback.Center)
}

// Stop deactivates the cursor and silences in-flight feedback.
func (c *Cursor) Stop() {
	if c.state == Idle {
		return
	}
	c.state = Idle
	c.fb.Silence()
	c.fb.Say(c.messages().Stopped())
	c.logger.Info("navigation stopped")
}

// Rebuild swaps in a rescanned index, clamping the cursor so the
// invariant pos ∈ [0, len-1] holds whenever len > 0.
func (c *Cursor) Rebuild(ix *index.Index) {
	c.ix = ix
	if c.pos >= ix.Len() {
		c.pos = 0
	}
	c.logger.Debug("index rebuilt", zap.Int("elements", ix.Len()), zap.Int("pos", c.pos))
}

// Apply executes a navigation action. Unknown or unrecognized actions are
// reported through feedback; the cursor never moves on them.
func (c *Cursor) Apply(a command.Action) {
	if c.state != Active {
		return
	}
	if a.Kind == command.KindCancel {
		c.Stop()
		return
	}

	if c.ix == nil || c.ix.Len() == 0 {
		c.fb.Say(c.messages().NothingToNavigate())
		return
	}

	n := c.ix.Len()
	switch a.Kind {
	case command.KindNext:
		c.pos = (c.pos + 1) % n
		c.announce(feedback.Right)
	case command.KindPrevious:
		if c.pos == 0 {
			c.pos = n - 1
		} else {
			c.pos--
		}
		c.announce(feedback.Left)
	case command.KindFirst:
		c.pos = 0
		c.announce(feedback.Center)
	case command.KindLast:
		c.pos = n - 1
		c.announce(feedback.Center)
	case command.KindRepeat:
		c.announce(feedback.Center)
	case command.KindActivate:
		c.activate()
	case command.KindGoTo:
		if target := c.ix.FindCategory(a.Category); target >= 0 {
			c.pos = target
			c.announce(feedback.Center)
		} else {
			c.fb.Say(c.messages().NotFound(a.Category))
		}
	case command.KindUnrecognized:
		c.fb.Say(c.messages().Unrecognized(a.Input))
	default:
		c.logger.Warn("unhandled action", zap.Stringer("action", a))
	}
}

// activate invokes the focused element's primary action and confirms it.
// Activation does not move the cursor.
func (c *Cursor) activate() {
	e := c.ix.At(c.pos)
	if c.activator != nil {
		if err := c.activator.Activate(e); err != nil {
			c.logger.Warn("activation failed", zap.Int("id", e.ID), zap.Error(err))
			c.fb.Say(c.messages().ActivationFailed(e.Label))
			return
		}
	}
	c.fb.ActivationCue()
	c.fb.Say(c.messages().Activated(e.Label))
	c.logger.Info("element activated", zap.Int("id", e.ID), zap.String("label", e.Label))
}

func (c *Cursor) announce(dir feedback.Direction) {
	e := c.ix.At(c.pos)
	c.fb.PlayCue(c.pos, c.ix.Len(), dir)
	c.fb.Announce(e, c.pos, c.ix.Len())
}

func (c *Cursor) messages() feedback.Messages {
	return feedback.MessagesFor(c.fb.Settings.Get().Locale)
}
