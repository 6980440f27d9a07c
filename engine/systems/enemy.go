package systems

import (
	"fmt"
	"time"

	"github.com/1siamBot/invaders/engine/core"
)

// Enemy is one invader of the formation. Its Step field is the formation
// phase: (0, budget) marches right, budget descends, (budget, 2*budget)
// marches left, 2*budget descends and restarts the cycle.
type Enemy struct {
	core.Base
	kind   core.Kind
	Budget int
}

// NewEnemy creates an enemy of kind KindEnemy1, KindEnemy2 or KindEnemy3
// that turns after budget horizontal steps.
func NewEnemy(kind core.Kind, x, y, budget int) *Enemy {
	sheet := enemySheet(kind)
	if sheet == nil {
		panic(fmt.Sprintf("systems: %s is not an enemy kind", kind))
	}
	return &Enemy{Base: core.NewBase(x, y, sheet), kind: kind, Budget: budget}
}

func enemySheet(kind core.Kind) core.Sheet {
	switch kind {
	case core.KindEnemy1, core.KindEnemy2, core.KindEnemy3:
		return SheetFor(kind)
	}
	return nil
}

func (e *Enemy) Kind() core.Kind { return e.kind }

func (e *Enemy) IsEnemy() bool { return true }

// DestroyableBy is always true: whatever checks it may destroy an enemy.
func (e *Enemy) DestroyableBy(core.Entity) bool { return true }

// React marches the enemy on every EnemyMoveEvery-th frame.
func (e *Enemy) React(w *core.World, _ core.Input, _ time.Time, frame uint64) {
	rules := w.Rules()
	if frame%rules.EnemyMoveEvery != 0 {
		return
	}

	e.Step++
	switch {
	case e.Step < e.Budget:
		e.X += rules.EnemyStepX
	case e.Step == e.Budget:
		e.Y += rules.EnemyStepY
	case e.Step < 2*e.Budget:
		e.X -= rules.EnemyStepX
	default:
		e.Y += rules.EnemyStepY
		e.Step = 0
	}

	if e.Y >= rules.ShieldWipeY {
		w.DestroyAllShields()
	}
	if e.Y >= rules.InvasionY {
		w.TriggerGameOver()
	}

	e.NextFrame()
}
