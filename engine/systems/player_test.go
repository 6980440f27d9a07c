package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/invaders/engine/core"
)

var (
	left  = core.InputOf(core.ActionMoveLeft)
	right = core.InputOf(core.ActionMoveRight)
	fire  = core.InputOf(core.ActionFire)
)

func newPlayerWorld(x int) (*core.World, *Player) {
	w := core.NewWorld(core.DefaultRules())
	p := NewPlayer(x, 440)
	w.AddEntity(p)
	return w, p
}

func projectiles(w *core.World) []*Projectile {
	var out []*Projectile
	for _, e := range w.Entities() {
		if p, ok := e.(*Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestPlayerSize(t *testing.T) {
	_, p := newPlayerWorld(0)
	assert.Equal(t, core.Rect{X: 0, Y: 440, W: 26, H: 16}, p.Bounds())
}

func TestPlayerMoves(t *testing.T) {
	w, p := newPlayerWorld(100)

	p.React(w, left, time.Time{}, 1)
	assert.Equal(t, 90, p.X)

	p.React(w, right, time.Time{}, 2)
	p.React(w, right, time.Time{}, 3)
	assert.Equal(t, 110, p.X)

	p.React(w, 0, time.Time{}, 4)
	assert.Equal(t, 110, p.X)
}

func TestPlayerLeftBoundary(t *testing.T) {
	for _, x := range []int{0, 5, 10} {
		w, p := newPlayerWorld(x)
		p.React(w, left, time.Time{}, 1)
		assert.Equal(t, x, p.X, "x=%d - step <= 0 must not move", x)
	}

	w, p := newPlayerWorld(11)
	p.React(w, left, time.Time{}, 1)
	assert.Equal(t, 1, p.X)
}

func TestPlayerRightBoundary(t *testing.T) {
	// 604 + 26 + 10 == 640
	for _, x := range []int{604, 610} {
		w, p := newPlayerWorld(x)
		p.React(w, right, time.Time{}, 1)
		assert.Equal(t, x, p.X, "x=%d + width + step >= 640 must not move", x)
	}

	w, p := newPlayerWorld(603)
	p.React(w, right, time.Time{}, 1)
	assert.Equal(t, 613, p.X)
}

func TestPlayerActionPriority(t *testing.T) {
	w, p := newPlayerWorld(100)
	all := core.InputOf(core.ActionMoveLeft, core.ActionMoveRight, core.ActionFire)

	p.React(w, all, time.Time{}, 1)
	assert.Equal(t, 90, p.X, "left wins")
	assert.Empty(t, projectiles(w), "one action per tick")

	p.React(w, core.InputOf(core.ActionMoveRight, core.ActionFire), time.Time{}, 2)
	assert.Equal(t, 100, p.X, "right beats fire")
	assert.Empty(t, projectiles(w))
}

func TestPlayerBlockedMoveFallsThroughToFire(t *testing.T) {
	w, p := newPlayerWorld(5)
	p.React(w, core.InputOf(core.ActionMoveLeft, core.ActionFire), time.Time{}, 1)
	assert.Equal(t, 5, p.X)
	assert.Len(t, projectiles(w), 1)
}

func TestPlayerFiresFromGunPoint(t *testing.T) {
	bus := core.NewEventBus()
	w, p := newPlayerWorld(100)
	w.SetEventBus(bus)

	var fired []core.Rect
	bus.On(core.EvtProjectileFired, func(e core.Event) { fired = append(fired, e.Payload.(core.Rect)) })

	p.React(w, fire, time.Time{}, 7)
	bus.Dispatch()

	shots := projectiles(w)
	require.Len(t, shots, 1)
	assert.Equal(t, 113, shots[0].X)
	assert.Equal(t, 432, shots[0].Y)
	assert.Equal(t, []core.Rect{shots[0].Bounds()}, fired)

	last, ok := p.LastShot()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), last)
}

func TestPlayerFireCooldown(t *testing.T) {
	cases := []struct {
		gap  uint64
		want int
	}{
		{1, 1},
		{10, 1},
		{20, 1},
		{21, 2},
		{40, 2},
	}
	for _, tc := range cases {
		w, p := newPlayerWorld(100)
		p.React(w, fire, time.Time{}, 5)
		p.React(w, fire, time.Time{}, 5+tc.gap)
		assert.Len(t, projectiles(w), tc.want, "gap of %d frames", tc.gap)
	}
}

func TestPlayerCooldownIgnoredShotKeepsTimer(t *testing.T) {
	w, p := newPlayerWorld(100)
	p.React(w, fire, time.Time{}, 1)
	p.React(w, fire, time.Time{}, 15)
	p.React(w, fire, time.Time{}, 22)
	assert.Len(t, projectiles(w), 2, "frame 22 is 21 frames after the last real shot")
}
