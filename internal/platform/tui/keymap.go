package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "r", "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// KeyTracker turns key presses into held keys.
//
// Terminals report presses and auto-repeats but never releases, so a key is
// treated as held for a short window after each press. The first press gets
// the longer initial window to cover the keyboard's repeat delay; presses
// that arrive while the key is already held only need to bridge the gap to
// the next auto-repeat.
type KeyTracker struct {
	initialHold time.Duration
	repeatHold  time.Duration
	until       map[core.Action]time.Time
}

// NewKeyTracker creates a tracker from the controls config.
func NewKeyTracker(cfg config.ControlsConfig) *KeyTracker {
	return &KeyTracker{
		initialHold: seconds(cfg.InitialHold),
		repeatHold:  seconds(cfg.RepeatHold),
		until:       make(map[core.Action]time.Time),
	}
}

// Press records a press of the action at the given time.
// Pressing one direction releases the other.
func (kt *KeyTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}

	switch a {
	case core.ActionLeft:
		delete(kt.until, core.ActionRight)
	case core.ActionRight:
		delete(kt.until, core.ActionLeft)
	}

	hold := kt.initialHold
	if kt.Held(a, now) {
		hold = kt.repeatHold
	}
	if end := now.Add(hold); end.After(kt.until[a]) {
		kt.until[a] = end
	}
}

// Held reports whether the action's window is still open at now.
func (kt *KeyTracker) Held(a core.Action, now time.Time) bool {
	end, ok := kt.until[a]
	return ok && now.Before(end)
}

// Frame returns the actions held at now and drops expired ones.
func (kt *KeyTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, end := range kt.until {
		if now.Before(end) {
			frame.Set(a)
		} else {
			delete(kt.until, a)
		}
	}
	return frame
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
