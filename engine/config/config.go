package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/1siamBot/invaders/engine/core"
)

// EnvPath names the environment variable that overrides DefaultPath.
const (
	EnvPath     = "INVADERS_CONFIG"
	DefaultPath = "config/invaders.toml"
)

type Config struct {
	Game    GameConfig    `toml:"game" yaml:"game"`
	Loop    LoopConfig    `toml:"loop" yaml:"loop"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type GameConfig struct {
	FieldWidth  int `toml:"field_width" yaml:"field_width"`
	FieldHeight int `toml:"field_height" yaml:"field_height"`

	PlayerStepX  int    `toml:"player_step_x" yaml:"player_step_x"`
	FireCooldown uint64 `toml:"fire_cooldown" yaml:"fire_cooldown"` // frames
	GunPointX    int    `toml:"gun_point_x" yaml:"gun_point_x"`
	GunPointY    int    `toml:"gun_point_y" yaml:"gun_point_y"`

	EnemyStepX      int    `toml:"enemy_step_x" yaml:"enemy_step_x"`
	EnemyStepY      int    `toml:"enemy_step_y" yaml:"enemy_step_y"`
	EnemyStepBudget int    `toml:"enemy_step_budget" yaml:"enemy_step_budget"`
	EnemyMoveEvery  uint64 `toml:"enemy_move_every" yaml:"enemy_move_every"`
	ShieldWipeY     int    `toml:"shield_wipe_y" yaml:"shield_wipe_y"`
	InvasionY       int    `toml:"invasion_y" yaml:"invasion_y"`

	ProjectileStepY     int    `toml:"projectile_step_y" yaml:"projectile_step_y"`
	ProjectileMoveEvery uint64 `toml:"projectile_move_every" yaml:"projectile_move_every"`

	FormationColumns int `toml:"formation_columns" yaml:"formation_columns"`
	FormationSpacing int `toml:"formation_spacing" yaml:"formation_spacing"`
}

type LoopConfig struct {
	TickRate float64 `toml:"tick_rate" yaml:"tick_rate"` // ticks per second
}

type RenderConfig struct {
	Title      string   `toml:"title" yaml:"title"`
	Scale      float64  `toml:"scale" yaml:"scale"` // window size multiplier
	Foreground [3]uint8 `toml:"foreground" yaml:"foreground"`
	Background [3]uint8 `toml:"background" yaml:"background"`
	ScoreX     int      `toml:"score_x" yaml:"score_x"`
	ScoreY     int      `toml:"score_y" yaml:"score_y"`
}

// InputConfig maps action names ("left", "right", "fire", "quit") to key
// names understood by the frontend.
type InputConfig struct {
	Keys map[string][]string `toml:"keys" yaml:"keys"`
	// HoldMillis is how long a terminal key press counts as held.
	HoldMillis int `toml:"hold_millis" yaml:"hold_millis"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Defaults returns the classic configuration
func Defaults() *Config {
	r := core.DefaultRules()
	return &Config{
		Game: GameConfig{
			FieldWidth:          r.FieldWidth,
			FieldHeight:         r.FieldHeight,
			PlayerStepX:         r.PlayerStepX,
			FireCooldown:        r.FireCooldown,
			GunPointX:           r.GunPointX,
			GunPointY:           r.GunPointY,
			EnemyStepX:          r.EnemyStepX,
			EnemyStepY:          r.EnemyStepY,
			EnemyStepBudget:     r.EnemyStepBudget,
			EnemyMoveEvery:      r.EnemyMoveEvery,
			ShieldWipeY:         r.ShieldWipeY,
			InvasionY:           r.InvasionY,
			ProjectileStepY:     r.ProjectileStepY,
			ProjectileMoveEvery: r.ProjectileMoveEvery,
			FormationColumns:    r.FormationColumns,
			FormationSpacing:    r.FormationSpacing,
		},
		Loop: LoopConfig{
			TickRate: 50,
		},
		Render: RenderConfig{
			Title:      "Space Invaders",
			Scale:      1,
			Foreground: [3]uint8{255, 240, 200},
			Background: [3]uint8{20, 20, 40},
			ScoreX:     20,
			ScoreY:     20,
		},
		Input: InputConfig{
			Keys: map[string][]string{
				"left":  {"ArrowLeft", "A"},
				"right": {"ArrowRight", "D"},
				"fire":  {"Space"},
				"quit":  {"Escape"},
			},
			HoldMillis: 150,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML or YAML file, chosen by extension, on top of Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Path returns the config path from the environment, or DefaultPath
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Rules converts the game section into simulation rules
func (c *Config) Rules() core.Rules {
	g := c.Game
	return core.Rules{
		FieldWidth:          g.FieldWidth,
		FieldHeight:         g.FieldHeight,
		PlayerStepX:         g.PlayerStepX,
		FireCooldown:        g.FireCooldown,
		GunPointX:           g.GunPointX,
		GunPointY:           g.GunPointY,
		EnemyStepX:          g.EnemyStepX,
		EnemyStepY:          g.EnemyStepY,
		EnemyStepBudget:     g.EnemyStepBudget,
		EnemyMoveEvery:      g.EnemyMoveEvery,
		ShieldWipeY:         g.ShieldWipeY,
		InvasionY:           g.InvasionY,
		ProjectileStepY:     g.ProjectileStepY,
		ProjectileMoveEvery: g.ProjectileMoveEvery,
		FormationColumns:    g.FormationColumns,
		FormationSpacing:    g.FormationSpacing,
	}
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("loop: tick rate must be positive, got %v", c.Loop.TickRate)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render: scale must be positive, got %v", c.Render.Scale)
	}
	for name := range c.Input.Keys {
		if name == "quit" {
			continue
		}
		if _, ok := core.ParseAction(name); !ok {
			return fmt.Errorf("input: unknown action %q", name)
		}
	}
	if c.Input.HoldMillis < 0 {
		return fmt.Errorf("input: hold_millis must not be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}
	return nil
}
