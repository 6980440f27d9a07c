package systems

import "github.com/1siamBot/invaders/engine/core"

// formationRow places one row of the starting formation
type formationRow struct {
	kind    core.Kind
	originX int
	y       int
}

var standardFormation = []formationRow{
	{core.KindEnemy1, 34, 20},
	{core.KindEnemy1, 34, 70},
	{core.KindEnemy2, 31, 120},
	{core.KindEnemy2, 31, 170},
	{core.KindEnemy3, 30, 220},
}

// NewStandardWorld creates a world holding the opening wave
func NewStandardWorld(rules core.Rules) *core.World {
	w := core.NewWorld(rules)
	PopulateWave(w)
	return w
}

// PopulateWave adds the player, the enemy formation and the shields, in
// that order.
func PopulateWave(w *core.World) {
	rules := w.Rules()

	w.AddEntity(NewPlayer(20, rules.FieldHeight-40))

	for _, row := range standardFormation {
		for c := 0; c < rules.FormationColumns; c++ {
			x := row.originX + c*rules.FormationSpacing
			w.AddEntity(NewEnemy(row.kind, x, row.y, rules.EnemyStepBudget))
		}
	}

	shieldY := rules.FieldHeight - 100
	for _, x := range []int{
		rules.FieldWidth/3 - 140,
		rules.FieldWidth*2/3 - 140,
		rules.FieldWidth - 140,
	} {
		w.AddEntity(NewShield(x, shieldY))
	}
}

// PlayerOf returns the player entity, or nil if the world has none
func PlayerOf(w *core.World) *Player {
	for _, e := range w.Entities() {
		if p, ok := e.(*Player); ok {
			return p
		}
	}
	return nil
}
