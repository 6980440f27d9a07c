package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
	"github.com/1siamBot/invaders/engine/systems"
	"github.com/1siamBot/invaders/engine/termview"
)

const (
	// EnvLog overrides the log file; stderr would tear the screen
	EnvLog     = "INVADERS_LOG"
	defaultLog = "invaders-term.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logPath := defaultLog
	if p := os.Getenv(EnvLog); p != "" {
		logPath = p
	}
	log, err := config.NewFileLogger(cfg.Logging, logPath)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := systems.NewStandardWorld(cfg.Rules())
	bus := core.NewEventBus()
	core.LogEvents(bus, log)
	w.SetEventBus(bus)

	r := &termview.Runner{
		Loop:        core.NewGameLoop(w, cfg.Loop.TickRate, log),
		View:        termview.NewView(screen, cfg.Render),
		Keys:        termview.NewKeyLatch(time.Duration(cfg.Input.HoldMillis) * time.Millisecond),
		RenderEvery: time.Second / 60,
		Log:         log,
	}
	if r.Run(ctx) {
		// leave the final frame up until a key is pressed
		for {
			if _, ok := screen.PollEvent().(*tcell.EventKey); ok {
				break
			}
		}
	}
	log.Info("exit", zap.Int("score", w.Score()), zap.Stringer("state", w.State()))
	return nil
}
