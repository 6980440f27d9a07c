package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
	"github.com/1siamBot/invaders/engine/input"
	"github.com/1siamBot/invaders/engine/render"
	"github.com/1siamBot/invaders/engine/replay"
	"github.com/1siamBot/invaders/engine/systems"
)

// EnvRecord names the environment variable holding a replay output path
const EnvRecord = "INVADERS_RECORD"

// Game implements ebiten.Game interface
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	gameLoop *core.GameLoop
	keyboard *input.Keyboard
	renderer *render.Renderer
	recorder *replay.Replay
}

func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	bindings, err := input.ParseBindings(cfg.Input.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	w := systems.NewStandardWorld(cfg.Rules())
	bus := core.NewEventBus()
	core.LogEvents(bus, log)
	w.SetEventBus(bus)

	return &Game{
		cfg:      cfg,
		log:      log,
		gameLoop: core.NewGameLoop(w, cfg.Loop.TickRate, log),
		keyboard: input.NewKeyboard(bindings),
		renderer: render.NewRenderer(cfg.Render),
	}, nil
}

// Update runs one tick per call; ebiten paces calls at the tick rate
func (g *Game) Update() error {
	g.keyboard.Update()
	if g.keyboard.QuitRequested() {
		g.log.Info("quit requested", zap.Uint64("frame", g.gameLoop.Frame()))
		return ebiten.Termination
	}
	if g.gameLoop.Done() {
		return nil
	}

	in := g.keyboard.Input()
	if g.recorder != nil {
		if err := g.recorder.Record(g.gameLoop.Frame()+1, in); err != nil {
			return err
		}
	}
	g.gameLoop.Step(in)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.gameLoop.World)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Game.FieldWidth, g.cfg.Game.FieldHeight
}

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
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	game, err := NewGame(cfg, log)
	if err != nil {
		return err
	}

	if path := os.Getenv(EnvRecord); path != "" {
		game.recorder, err = replay.NewRecorder(path)
		if err != nil {
			return err
		}
		defer func() {
			if err := game.recorder.Close(); err != nil {
				log.Error("close replay", zap.Error(err))
			}
		}()
		log.Info("recording replay", zap.String("path", path))
	}

	ebiten.SetWindowSize(
		int(float64(cfg.Game.FieldWidth)*cfg.Render.Scale),
		int(float64(cfg.Game.FieldHeight)*cfg.Render.Scale))
	ebiten.SetWindowTitle(cfg.Render.Title)
	ebiten.SetTPS(int(cfg.Loop.TickRate))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("exit",
		zap.Int("score", game.gameLoop.World.Score()),
		zap.Stringer("state", game.gameLoop.World.State()))
	return nil
}
