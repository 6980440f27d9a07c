package core

import (
	"time"

	"go.uber.org/zap"
)

// GameLoop drives the World with a monotonically increasing frame counter
type GameLoop struct {
	World       *World
	TickRate    float64 // fixed ticks per second
	Clock       func() time.Time
	log         *zap.Logger
	frame       uint64
	accumulator float64
	lastTime    time.Time
	started     bool
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(w *World, tickRate float64, log *zap.Logger) *GameLoop {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameLoop{
		World:    w,
		TickRate: tickRate,
		Clock:    time.Now,
		log:      log,
	}
}

// Step runs exactly one tick: one reaction pass followed by event dispatch.
// It returns false once the game is over.
func (gl *GameLoop) Step(in Input) bool {
	if gl.Done() {
		return false
	}
	if !gl.started {
		gl.started = true
		gl.log.Info("game started",
			zap.Int("entities", gl.World.Len()),
			zap.Int("enemies", gl.World.EnemyCount()),
			zap.Float64("tick_rate", gl.TickRate))
	}

	gl.frame++
	gl.World.React(in, gl.Clock(), gl.frame)
	if bus := gl.World.EventBus(); bus != nil {
		bus.Dispatch()
	}

	if ce := gl.log.Check(zap.DebugLevel, "tick"); ce != nil {
		ce.Write(
			zap.Uint64("frame", gl.frame),
			zap.Stringer("input", in),
			zap.Int("entities", gl.World.Len()),
			zap.Int("score", gl.World.Score()))
	}

	if gl.Done() {
		gl.log.Info("game over",
			zap.Uint64("frame", gl.frame),
			zap.Int("score", gl.World.Score()),
			zap.Bool("won", gl.World.Won()))
		return false
	}
	return true
}

// Update should be called every render frame by drivers that do not pace
// ticks themselves. It runs the simulation at a fixed timestep and returns
// the number of ticks executed.
func (gl *GameLoop) Update(in Input) int {
	now := gl.Clock()
	if gl.lastTime.IsZero() {
		gl.lastTime = now
	}
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	steps := 0
	for gl.accumulator >= dt && !gl.Done() {
		gl.accumulator -= dt
		gl.Step(in)
		steps++
	}
	if gl.Done() {
		gl.accumulator = 0
	}
	return steps
}

// Frame returns the current simulation frame
func (gl *GameLoop) Frame() uint64 {
	return gl.frame
}

// Done reports whether the world reached its terminal state
func (gl *GameLoop) Done() bool {
	return gl.World.State() == StateGameOver
}
