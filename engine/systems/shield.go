package systems

import "github.com/1siamBot/invaders/engine/core"

// Shield is a passive barrier. Projectiles pass through it; it only goes
// away when the formation gets close enough to wipe every shield.
type Shield struct {
	core.Base
}

func NewShield(x, y int) *Shield {
	return &Shield{Base: core.NewBase(x, y, shieldSheet)}
}

func (s *Shield) Kind() core.Kind { return core.KindShield }
