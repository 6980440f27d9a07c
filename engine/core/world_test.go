package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var probeSheet = MustSheet(1, []string{"11", "11"})

// probe is a scriptable entity that records the frames it reacted on
type probe struct {
	Base
	kind    Kind
	reacted []uint64
	onReact func(w *World)
}

func newProbe(kind Kind) *probe {
	return &probe{Base: NewBase(0, 0, probeSheet), kind: kind}
}

func (p *probe) Kind() Kind { return p.kind }

func (p *probe) IsEnemy() bool {
	return p.kind == KindEnemy1 || p.kind == KindEnemy2 || p.kind == KindEnemy3
}

func (p *probe) React(w *World, _ Input, _ time.Time, frame uint64) {
	p.reacted = append(p.reacted, frame)
	if p.onReact != nil {
		p.onReact(w)
	}
}

func TestAddAndRemoveEntity(t *testing.T) {
	w := NewWorld(DefaultRules())
	a, b := newProbe(KindPlayer), newProbe(KindShield)
	w.AddEntity(a)
	w.AddEntity(b)
	require.Equal(t, 2, w.Len())

	w.RemoveEntity(a)
	assert.Equal(t, []Entity{b}, w.Entities())
	assert.False(t, w.Contains(a))
	assert.True(t, w.Contains(b))

	// absent entity: no-op
	w.RemoveEntity(a)
	w.RemoveEntity(newProbe(KindEnemy1))
	assert.Equal(t, 1, w.Len())
}

func TestRemoveEntityFirstReferenceOnly(t *testing.T) {
	w := NewWorld(DefaultRules())
	a := newProbe(KindShield)
	w.AddEntity(a)
	w.AddEntity(a)

	w.RemoveEntity(a)
	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains(a))

	w.RemoveEntity(a)
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Contains(a))
}

func TestEntitiesIsACopy(t *testing.T) {
	w := NewWorld(DefaultRules())
	w.AddEntity(newProbe(KindPlayer))

	list := w.Entities()
	list[0] = nil
	assert.NotNil(t, w.Entities()[0])
}

func TestDestroyAllShields(t *testing.T) {
	bus := NewEventBus()
	w := NewWorld(DefaultRules())
	w.SetEventBus(bus)

	player := newProbe(KindPlayer)
	enemy := newProbe(KindEnemy2)
	w.AddEntity(player)
	w.AddEntity(newProbe(KindShield))
	w.AddEntity(newProbe(KindShield))
	w.AddEntity(enemy)
	w.AddEntity(newProbe(KindShield))

	var wiped []int
	bus.On(EvtShieldsWiped, func(e Event) { wiped = append(wiped, e.Payload.(int)) })

	w.DestroyAllShields()
	assert.Equal(t, []Entity{player, enemy}, w.Entities())

	w.DestroyAllShields()
	bus.Dispatch()
	assert.Equal(t, []int{3}, wiped, "a wipe with nothing left emits nothing")
}

func TestReactOrderAndSnapshot(t *testing.T) {
	w := NewWorld(DefaultRules())
	var order []Kind
	record := func(p *probe) func(*World) {
		return func(*World) { order = append(order, p.kind) }
	}

	player := newProbe(KindPlayer)
	enemy := newProbe(KindEnemy1)
	shield := newProbe(KindShield)
	for _, p := range []*probe{player, enemy, shield} {
		p.onReact = record(p)
		w.AddEntity(p)
	}

	spawned := newProbe(KindProjectile)
	player.onReact = func(w *World) {
		order = append(order, KindPlayer)
		if !w.Contains(spawned) {
			w.AddEntity(spawned)
		}
	}

	w.React(0, time.Time{}, 1)
	assert.Equal(t, []Kind{KindPlayer, KindEnemy1, KindShield}, order)
	assert.Empty(t, spawned.reacted, "entities added mid-pass wait for the next pass")

	w.React(0, time.Time{}, 2)
	assert.Equal(t, []uint64{2}, spawned.reacted)
	assert.Equal(t, uint64(2), w.Frame())
}

func TestReactToleratesRemovalDuringPass(t *testing.T) {
	w := NewWorld(DefaultRules())
	first := newProbe(KindEnemy1)
	victim := newProbe(KindEnemy1)
	survivor := newProbe(KindEnemy1)
	w.AddEntity(first)
	w.AddEntity(victim)
	w.AddEntity(survivor)

	// first removes itself and the entity right after it
	first.onReact = func(w *World) {
		w.RemoveEntity(victim)
		w.RemoveEntity(first)
	}

	w.React(0, time.Time{}, 1)
	assert.Equal(t, []uint64{1}, first.reacted)
	assert.Empty(t, victim.reacted)
	assert.Equal(t, []uint64{1}, survivor.reacted, "survivor is neither skipped nor run twice")
	assert.Equal(t, []Entity{survivor}, w.Entities())
}

func TestWinConditionAfterLastEnemy(t *testing.T) {
	bus := NewEventBus()
	w := NewWorld(DefaultRules())
	w.SetEventBus(bus)
	w.AddEntity(newProbe(KindPlayer))
	enemy := newProbe(KindEnemy3)
	w.AddEntity(enemy)

	w.React(0, time.Time{}, 1)
	require.Equal(t, StatePlaying, w.State())

	var over []GameOverPayload
	bus.On(EvtGameOver, func(e Event) { over = append(over, e.Payload.(GameOverPayload)) })

	w.RemoveEntity(enemy)
	w.React(0, time.Time{}, 2)
	bus.Dispatch()
	assert.Equal(t, StateGameOver, w.State())
	assert.True(t, w.Won())
	assert.Equal(t, []GameOverPayload{{Won: true}}, over)
}

func TestGameOverIsTerminal(t *testing.T) {
	w := NewWorld(DefaultRules())
	enemy := newProbe(KindEnemy1)
	w.AddEntity(enemy)

	w.TriggerGameOver()
	w.TriggerGameOver()
	assert.Equal(t, StateGameOver, w.State())
	assert.False(t, w.Won())

	w.React(0, time.Time{}, 5)
	assert.Empty(t, enemy.reacted, "no reactions once the game is over")
}

func TestDestroyResolvesCollision(t *testing.T) {
	bus := NewEventBus()
	w := NewWorld(DefaultRules())
	w.SetEventBus(bus)
	player := newProbe(KindPlayer)
	enemy := newProbe(KindEnemy2)
	shot := newProbe(KindProjectile)
	w.AddEntity(player)
	w.AddEntity(enemy)
	w.AddEntity(shot)

	var kills []DestroyedPayload
	var scores []int
	bus.On(EvtEntityDestroyed, func(e Event) { kills = append(kills, e.Payload.(DestroyedPayload)) })
	bus.On(EvtScoreChanged, func(e Event) { scores = append(scores, e.Payload.(int)) })

	w.Destroy(enemy, shot)
	bus.Dispatch()

	assert.Equal(t, []Entity{player}, w.Entities())
	assert.Equal(t, 1, w.Score())
	require.Len(t, kills, 1)
	assert.Equal(t, KindEnemy2, kills[0].Victim)
	assert.Equal(t, KindProjectile, kills[0].By)
	assert.Equal(t, []int{1}, scores)
}

func TestEnemyCount(t *testing.T) {
	w := NewWorld(DefaultRules())
	w.AddEntity(newProbe(KindPlayer))
	w.AddEntity(newProbe(KindEnemy1))
	w.AddEntity(newProbe(KindEnemy2))
	w.AddEntity(newProbe(KindShield))
	assert.Equal(t, 2, w.EnemyCount())
}
