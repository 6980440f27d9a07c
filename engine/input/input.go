package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/invaders/engine/core"
)

// Bindings maps each action to the keys that trigger it
type Bindings struct {
	Actions [core.ActionMax][]ebiten.Key
	Quit    []ebiten.Key
}

// DefaultBindings returns arrows/A/D to move, space to fire and escape to quit
func DefaultBindings() Bindings {
	var b Bindings
	b.Actions[core.ActionMoveLeft] = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	b.Actions[core.ActionMoveRight] = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	b.Actions[core.ActionFire] = []ebiten.Key{ebiten.KeySpace}
	b.Quit = []ebiten.Key{ebiten.KeyEscape}
	return b
}

// ParseBindings builds bindings from action names to key names, as found in
// the input section of the config. Actions missing from keys keep their
// default keys.
func ParseBindings(keys map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, names := range keys {
		parsed := make([]ebiten.Key, 0, len(names))
		for _, n := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(n)); err != nil {
				return Bindings{}, fmt.Errorf("binding %s: unknown key %q", name, n)
			}
			parsed = append(parsed, k)
		}
		if name == "quit" {
			b.Quit = parsed
			continue
		}
		a, ok := core.ParseAction(name)
		if !ok {
			return Bindings{}, fmt.Errorf("binding %s: unknown action", name)
		}
		b.Actions[a] = parsed
	}
	return b, nil
}

// Snapshot folds the pressed state of every bound key into an input
// snapshot. pressed abstracts the keyboard so the mapping can be tested
// without a window.
func (b *Bindings) Snapshot(pressed func(ebiten.Key) bool) core.Input {
	var in core.Input
	for a, keys := range b.Actions {
		for _, k := range keys {
			if pressed(k) {
				in = in.With(core.Action(a))
				break
			}
		}
	}
	return in
}

// Keyboard tracks keyboard state per frame
type Keyboard struct {
	Bindings Bindings
	current  core.Input
	quit     bool
}

func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{Bindings: b}
}

// Update should be called every frame
func (k *Keyboard) Update() {
	k.current = k.Bindings.Snapshot(ebiten.IsKeyPressed)
	k.quit = false
	for _, key := range k.Bindings.Quit {
		if inpututil.IsKeyJustPressed(key) {
			k.quit = true
			break
		}
	}
}

// Input returns the snapshot taken by the last Update
func (k *Keyboard) Input() core.Input {
	return k.current
}

// QuitRequested returns true if a quit key was just pressed this frame
func (k *Keyboard) QuitRequested() bool {
	return k.quit
}
