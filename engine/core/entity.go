package core

import "time"

// Kind identifies the concrete type of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy1
	KindEnemy2
	KindEnemy3
	KindProjectile
	KindShield
	KindMax
)

var kindNames = [KindMax]string{
	KindPlayer:     "player",
	KindEnemy1:     "enemy1",
	KindEnemy2:     "enemy2",
	KindEnemy3:     "enemy3",
	KindProjectile: "projectile",
	KindShield:     "shield",
}

func (k Kind) String() string {
	if k < KindMax {
		return kindNames[k]
	}
	return "unknown"
}

// Entity is anything that lives in the World. React is the only per-tick
// extension point; the rest are capability queries.
type Entity interface {
	Kind() Kind
	Bounds() Rect
	Sprite() Bitmap
	Frame() int
	IsEnemy() bool
	// DestroyableBy reports whether other colliding with this entity
	// destroys it.
	DestroyableBy(other Entity) bool
	React(w *World, in Input, now time.Time, frame uint64)
}

// ---- Base ----

// Base carries the shape, position and animation state shared by all kinds.
// Concrete kinds embed it and must provide Kind themselves.
type Base struct {
	X, Y  int
	Step  int // kind-specific counter; the formation phase for enemies
	sheet Sheet
	frame int
}

// NewBase positions an entity with the given sprite sheet.
func NewBase(x, y int, sheet Sheet) Base {
	if len(sheet) == 0 {
		panic("core: entity without sprite sheet")
	}
	return Base{X: x, Y: y, sheet: sheet}
}

// Size returns the entity's fixed width and height.
func (b *Base) Size() (w, h int) { return b.sheet.Size() }

func (b *Base) Bounds() Rect {
	w, h := b.sheet.Size()
	return Rect{X: b.X, Y: b.Y, W: w, H: h}
}

// Sprite returns the bitmap of the current animation frame.
func (b *Base) Sprite() Bitmap { return b.sheet[b.frame] }

func (b *Base) Frame() int { return b.frame }

// NextFrame advances the animation, wrapping at the end of the sheet.
func (b *Base) NextFrame() {
	b.frame = (b.frame + 1) % len(b.sheet)
}

func (b *Base) IsEnemy() bool { return false }

func (b *Base) DestroyableBy(Entity) bool { return false }

func (b *Base) React(*World, Input, time.Time, uint64) {}
