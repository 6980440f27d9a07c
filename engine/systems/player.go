package systems

import (
	"time"

	"github.com/1siamBot/invaders/engine/core"
)

// Player is the ship at the bottom of the field
type Player struct {
	core.Base
	lastShot uint64
	hasShot  bool
}

func NewPlayer(x, y int) *Player {
	return &Player{Base: core.NewBase(x, y, playerSheet)}
}

func (p *Player) Kind() core.Kind { return core.KindPlayer }

// LastShot returns the frame of the last shot, if any
func (p *Player) LastShot() (uint64, bool) {
	return p.lastShot, p.hasShot
}

// React performs at most one action per tick: left beats right beats fire.
// A move blocked by the field edge yields to the next held action. Shots on
// cooldown are ignored.
func (p *Player) React(w *core.World, in core.Input, _ time.Time, frame uint64) {
	rules := w.Rules()
	width, _ := p.Size()

	switch {
	case in.Held(core.ActionMoveLeft) && p.X-rules.PlayerStepX > 0:
		p.X -= rules.PlayerStepX
	case in.Held(core.ActionMoveRight) && p.X+width+rules.PlayerStepX < rules.FieldWidth:
		p.X += rules.PlayerStepX
	case in.Held(core.ActionFire):
		if p.hasShot && frame-p.lastShot <= rules.FireCooldown {
			return
		}
		shot := NewProjectile(p.X+rules.GunPointX, p.Y+rules.GunPointY)
		w.AddEntity(shot)
		p.lastShot, p.hasShot = frame, true
		if bus := w.EventBus(); bus != nil {
			bus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: frame, Payload: shot.Bounds()})
		}
	}
}
