package systems

import "github.com/1siamBot/invaders/engine/core"

// Sprite sheets, one pattern per animation frame. Patterns are upscaled by
// core.SpriteScale when the package initializes.
var (
	playerSheet = core.MustSheet(core.SpriteScale, []string{
		"0000001000000",
		"0000011100000",
		"0000011100000",
		"0111111111110",
		"1111111111111",
		"1111111111111",
		"1111111111111",
		"1111111111111",
	})

	projectileSheet = core.MustSheet(core.SpriteScale, []string{
		"001",
		"010",
		"100",
		"010",
		"001",
	}, []string{
		"010",
		"101",
		"010",
		"101",
		"010",
	})

	enemy1Sheet = core.MustSheet(core.SpriteScale, []string{
		"00011000",
		"00111100",
		"01111110",
		"11011011",
		"11111111",
		"01011010",
		"10000001",
		"01000010",
	}, []string{
		"00011000",
		"00111100",
		"01111110",
		"11011011",
		"11111111",
		"00100100",
		"01011010",
		"10100101",
	})

	enemy2Sheet = core.MustSheet(core.SpriteScale, []string{
		"00100000100",
		"00010001000",
		"00111111100",
		"01101110110",
		"11111111111",
		"10111111101",
		"10100000101",
		"00011011000",
	}, []string{
		"00100000100",
		"10010001001",
		"10111111101",
		"11101110111",
		"11111111111",
		"01111111110",
		"00100000100",
		"01000000010",
	})

	enemy3Sheet = core.MustSheet(core.SpriteScale, []string{
		"000011110000",
		"011111111110",
		"111111111111",
		"111001100111",
		"111111111111",
		"001110011100",
		"011001100110",
		"001100001100",
	}, []string{
		"000011110000",
		"011111111110",
		"111111111111",
		"111001100111",
		"111111111111",
		"000110011000",
		"001101101100",
		"110000000011",
	})

	shieldSheet = core.MustSheet(core.SpriteScale, []string{
		"0000111111111111110000",
		"0001111111111111111000",
		"0011111111111111111100",
		"0111111111111111111110",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111111111111111111",
		"1111111000000001111111",
		"1111110000000000111111",
		"1111100000000000011111",
		"1111100000000000011111",
	})
)

// SheetFor returns the sprite sheet drawn for kind.
func SheetFor(kind core.Kind) core.Sheet {
	switch kind {
	case core.KindPlayer:
		return playerSheet
	case core.KindEnemy1:
		return enemy1Sheet
	case core.KindEnemy2:
		return enemy2Sheet
	case core.KindEnemy3:
		return enemy3Sheet
	case core.KindProjectile:
		return projectileSheet
	case core.KindShield:
		return shieldSheet
	}
	return nil
}
