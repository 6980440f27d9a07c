package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/1siamBot/invaders/engine/core"
)

// Runner drives a game loop from terminal events and redraws on a ticker
type Runner struct {
	Loop        *core.GameLoop
	View        *View
	Keys        *KeyLatch
	RenderEvery time.Duration
	Log         *zap.Logger
}

// Run blocks until the game is over, the user quits or ctx is cancelled.
// It reports whether the game reached its end.
func (r *Runner) Run(ctx context.Context) bool {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	screen := r.View.Screen

	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.RenderEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("terminal loop cancelled", zap.Error(ctx.Err()))
			return false

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if r.Keys.Handle(ev) {
					log.Info("quit requested", zap.Uint64("frame", r.Loop.Frame()))
					return false
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			r.Loop.Update(r.Keys.Snapshot(now))
			r.View.Draw(r.Loop.World)
			screen.Show()
			if r.Loop.Done() {
				return true
			}
		}
	}
}
