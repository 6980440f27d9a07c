package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
	"github.com/1siamBot/invaders/engine/replay"
	"github.com/1siamBot/invaders/engine/systems"
)

// frames stepped past the last recorded input before giving up
const tail = 100_000

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: invaders-replay <replay file>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.LoadOrDefault(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	rp, err := replay.Load(path)
	if err != nil {
		return err
	}
	log.Info("replay loaded",
		zap.String("path", path),
		zap.Int("records", len(rp.Records)),
		zap.Uint64("last_frame", rp.LastFrame()))

	w := systems.NewStandardWorld(cfg.Rules())
	bus := core.NewEventBus()
	core.LogEvents(bus, log)
	w.SetEventBus(bus)

	gl := core.NewGameLoop(w, cfg.Loop.TickRate, log)
	frames := rp.Play(gl, rp.LastFrame()+tail)

	log.Info("replay finished",
		zap.Uint64("frames", frames),
		zap.Int("score", w.Score()),
		zap.Stringer("state", w.State()),
		zap.Bool("won", w.Won()))
	return nil
}
