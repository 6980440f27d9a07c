package systems

import (
	"time"

	"github.com/1siamBot/invaders/engine/core"
)

// Projectile is a player shot travelling straight up
type Projectile struct {
	core.Base
}

func NewProjectile(x, y int) *Projectile {
	return &Projectile{Base: core.NewBase(x, y, projectileSheet)}
}

func (p *Projectile) Kind() core.Kind { return core.KindProjectile }

// React moves the shot on every ProjectileMoveEvery-th frame and destroys
// the first entity in world order that it hits. One kill per tick at most.
func (p *Projectile) React(w *core.World, _ core.Input, _ time.Time, frame uint64) {
	rules := w.Rules()
	if frame%rules.ProjectileMoveEvery != 0 {
		return
	}

	p.Y -= rules.ProjectileStepY
	defer p.NextFrame()

	bounds := p.Bounds()
	for _, el := range w.Entities() {
		if el.DestroyableBy(p) && bounds.Overlaps(el.Bounds()) {
			w.Destroy(el, p)
			return
		}
	}

	if bounds.Bottom() < 0 {
		w.RemoveEntity(p)
	}
}
