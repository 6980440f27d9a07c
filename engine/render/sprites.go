package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/invaders/engine/core"
)

type spriteKey struct {
	kind  core.Kind
	frame int
}

// SpriteManager turns entity bitmaps into GPU images, once per kind and
// animation frame.
type SpriteManager struct {
	images map[spriteKey]*ebiten.Image
}

func NewSpriteManager() *SpriteManager {
	return &SpriteManager{images: make(map[spriteKey]*ebiten.Image)}
}

// Image returns the white-on-transparent image of e's current frame. The
// bitmap is already at playfield scale, one bitmap pixel per image pixel.
func (sm *SpriteManager) Image(e core.Entity) *ebiten.Image {
	key := spriteKey{kind: e.Kind(), frame: e.Frame()}
	if img, ok := sm.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(BitmapImage(e.Sprite()))
	sm.images[key] = img
	return img
}

// Len returns the number of cached images
func (sm *SpriteManager) Len() int {
	return len(sm.images)
}

// BitmapImage rasterizes b: set pixels become opaque white, the rest stay
// transparent so a color scale can tint the sprite.
func BitmapImage(b core.Bitmap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.At(x, y) {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}
