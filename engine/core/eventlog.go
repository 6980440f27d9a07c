package core

import "go.uber.org/zap"

// LogEvents subscribes log to every gameplay event on bus
func LogEvents(bus *EventBus, log *zap.Logger) {
	bus.On(EvtProjectileFired, func(e Event) {
		log.Debug("projectile fired", zap.Uint64("frame", e.Tick))
	})
	bus.On(EvtEntityDestroyed, func(e Event) {
		p, _ := e.Payload.(DestroyedPayload)
		log.Debug("entity destroyed",
			zap.Uint64("frame", e.Tick),
			zap.Stringer("victim", p.Victim),
			zap.Stringer("by", p.By),
			zap.Int("x", p.Bounds.X),
			zap.Int("y", p.Bounds.Y))
	})
	bus.On(EvtScoreChanged, func(e Event) {
		score, _ := e.Payload.(int)
		log.Debug("score", zap.Uint64("frame", e.Tick), zap.Int("score", score))
	})
	bus.On(EvtShieldsWiped, func(e Event) {
		n, _ := e.Payload.(int)
		log.Info("shields wiped", zap.Uint64("frame", e.Tick), zap.Int("count", n))
	})
	bus.On(EvtGameOver, func(e Event) {
		p, _ := e.Payload.(GameOverPayload)
		log.Info("game over event",
			zap.Uint64("frame", e.Tick),
			zap.Bool("won", p.Won),
			zap.Int("score", p.Score))
	})
}
