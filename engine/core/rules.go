package core

import "fmt"

// Rules holds every tunable of the simulation. All distances are in logical
// pixels, all rates in frames.
type Rules struct {
	FieldWidth  int
	FieldHeight int

	PlayerStepX  int
	FireCooldown uint64 // frames that must pass (exclusive) between two shots
	GunPointX    int    // projectile spawn offset from the player's top-left corner
	GunPointY    int

	EnemyStepX      int
	EnemyStepY      int
	EnemyStepBudget int    // horizontal sub-steps before the formation turns
	EnemyMoveEvery  uint64 // enemies react on frame % EnemyMoveEvery == 0
	ShieldWipeY     int    // enemy depth that removes every shield
	InvasionY       int    // enemy depth that ends the game

	ProjectileStepY     int
	ProjectileMoveEvery uint64

	FormationColumns int
	FormationSpacing int
}

// DefaultRules returns the classic arcade tuning.
func DefaultRules() Rules {
	return Rules{
		FieldWidth:  640,
		FieldHeight: 480,

		PlayerStepX:  10,
		FireCooldown: 20,
		GunPointX:    13,
		GunPointY:    -8,

		EnemyStepX:      3,
		EnemyStepY:      10,
		EnemyStepBudget: 20,
		EnemyMoveEvery:  10,
		ShieldWipeY:     370,
		InvasionY:       410,

		ProjectileStepY:     5,
		ProjectileMoveEvery: 2,

		FormationColumns: 11,
		FormationSpacing: 50,
	}
}

// Validate rejects rule sets the simulation cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.FieldWidth <= 0 || r.FieldHeight <= 0:
		return fmt.Errorf("playfield must be positive, got %dx%d", r.FieldWidth, r.FieldHeight)
	case r.PlayerStepX <= 0:
		return fmt.Errorf("player step must be positive, got %d", r.PlayerStepX)
	case r.EnemyStepBudget <= 0:
		return fmt.Errorf("enemy step budget must be positive, got %d", r.EnemyStepBudget)
	case r.EnemyMoveEvery == 0 || r.ProjectileMoveEvery == 0:
		return fmt.Errorf("move rates must be non-zero")
	case r.InvasionY < r.ShieldWipeY:
		return fmt.Errorf("invasion depth %d is above shield wipe depth %d", r.InvasionY, r.ShieldWipeY)
	case r.FormationColumns < 0 || r.FormationSpacing < 0:
		return fmt.Errorf("formation layout must not be negative")
	}
	return nil
}
