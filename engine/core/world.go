package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// World owns every live entity, the score and the game state
type World struct {
	rules    Rules
	bus      *EventBus
	entities []Entity
	members  map[Entity]int // reference counts, for membership checks mid-pass
	score    int
	state    GameState
	frame    uint64
	won      bool
}

// NewWorld creates an empty world playing by the given rules
func NewWorld(rules Rules) *World {
	return &World{
		rules:   rules,
		members: make(map[Entity]int),
	}
}

// SetEventBus makes the world publish gameplay events on bus
func (w *World) SetEventBus(bus *EventBus) { w.bus = bus }

func (w *World) EventBus() *EventBus { return w.bus }

func (w *World) Rules() Rules { return w.rules }

// Score returns the number of enemies destroyed so far
func (w *World) Score() int { return w.score }

func (w *World) State() GameState { return w.state }

// Won reports whether the game ended with every enemy destroyed
func (w *World) Won() bool { return w.won }

// Frame returns the frame of the last reaction pass
func (w *World) Frame() uint64 { return w.frame }

// Len returns the number of live entities
func (w *World) Len() int { return len(w.entities) }

// Entities returns the live entities in insertion order. The slice is a
// copy; mutate the world through its methods.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Contains reports whether e is currently in the world
func (w *World) Contains(e Entity) bool {
	return w.members[e] > 0
}

// EnemyCount returns the number of live entities that are enemies
func (w *World) EnemyCount() int {
	n := 0
	for _, e := range w.entities {
		if e.IsEnemy() {
			n++
		}
	}
	return n
}

// AddEntity appends e to the world
func (w *World) AddEntity(e Entity) {
	w.entities = append(w.entities, e)
	w.members[e]++
}

// RemoveEntity removes the first reference to e. Removing an entity that is
// not in the world does nothing.
func (w *World) RemoveEntity(e Entity) {
	for i, el := range w.entities {
		if el == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			w.release(e)
			return
		}
	}
}

func (w *World) release(e Entity) {
	if w.members[e] <= 1 {
		delete(w.members, e)
		return
	}
	w.members[e]--
}

// DestroyAllShields removes every shield
func (w *World) DestroyAllShields() {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if e.Kind() == KindShield {
			w.release(e)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	if removed > 0 {
		w.emit(EvtShieldsWiped, removed)
	}
}

// TriggerGameOver ends the game. Further calls have no effect.
func (w *World) TriggerGameOver() {
	if w.state == StateGameOver {
		return
	}
	w.state = StateGameOver
	w.emit(EvtGameOver, GameOverPayload{Won: w.won, Score: w.score})
}

// IncrementScore adds one point
func (w *World) IncrementScore() {
	w.score++
	w.emit(EvtScoreChanged, w.score)
}

// Destroy resolves a collision: victim and attacker leave the world and
// the score goes up by one.
func (w *World) Destroy(victim, by Entity) {
	w.RemoveEntity(victim)
	w.RemoveEntity(by)
	w.emit(EvtEntityDestroyed, DestroyedPayload{Victim: victim.Kind(), By: by.Kind(), Bounds: victim.Bounds()})
	w.IncrementScore()
}

// React runs one reaction pass. Every entity present at the start of the
// pass reacts once, in insertion order, unless an earlier reaction removed
// it. Entities added during the pass first react on the next one.
func (w *World) React(in Input, now time.Time, frame uint64) {
	if w.state == StateGameOver {
		return
	}
	w.frame = frame

	snapshot := w.Entities()
	for _, e := range snapshot {
		if !w.Contains(e) {
			continue
		}
		e.React(w, in, now, frame)
	}

	if w.EnemyCount() == 0 && w.state == StatePlaying {
		w.won = true
		w.TriggerGameOver()
	}
}

func (w *World) emit(t EventType, payload interface{}) {
	if w.bus == nil {
		return
	}
	w.bus.Emit(Event{Type: t, Tick: w.frame, Payload: payload})
}
