package termview

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/invaders/engine/core"
)

// KeyLatch converts key press events into held actions. Terminals report
// presses and auto-repeats but no releases, so an action stays held for
// HoldFor after its last event.
type KeyLatch struct {
	HoldFor time.Duration
	until   [core.ActionMax]time.Time
}

func NewKeyLatch(holdFor time.Duration) *KeyLatch {
	return &KeyLatch{HoldFor: holdFor}
}

// Press marks a as held from now
func (l *KeyLatch) Press(a core.Action, now time.Time) {
	l.until[a] = now.Add(l.HoldFor)
}

// Snapshot returns the actions still held at now
func (l *KeyLatch) Snapshot(now time.Time) core.Input {
	var in core.Input
	for a, until := range l.until {
		if now.Before(until) {
			in = in.With(core.Action(a))
		}
	}
	return in
}

// Handle applies a key event and reports whether it asks to quit.
// Arrows or A/D move, space fires, Esc, Q or Ctrl-C quit.
func (l *KeyLatch) Handle(ev *tcell.EventKey) (quit bool) {
	now := ev.When()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		l.Press(core.ActionMoveLeft, now)
	case tcell.KeyRight:
		l.Press(core.ActionMoveRight, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			l.Press(core.ActionMoveLeft, now)
		case 'd', 'D':
			l.Press(core.ActionMoveRight, now)
		case ' ':
			l.Press(core.ActionFire, now)
		case 'q', 'Q':
			return true
		}
	}
	return false
}
