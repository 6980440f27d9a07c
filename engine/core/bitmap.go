package core

import (
	"errors"
	"fmt"
)

// SpriteScale is the upscale applied to every sprite pattern: one logical
// pattern pixel becomes a SpriteScale x SpriteScale block on the playfield.
const SpriteScale = 2

// Bitmap is a fixed-size boolean pixel grid.
type Bitmap struct {
	W, H int
	bits []bool
}

// ParseBitmap builds a bitmap from rows of '0' and '1'.
func ParseBitmap(rows []string) (Bitmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Bitmap{}, errors.New("empty sprite pattern")
	}
	b := Bitmap{W: len(rows[0]), H: len(rows)}
	b.bits = make([]bool, b.W*b.H)
	for y, row := range rows {
		if len(row) != b.W {
			return Bitmap{}, fmt.Errorf("row %d has width %d, want %d", y, len(row), b.W)
		}
		for x, c := range []byte(row) {
			switch c {
			case '0':
			case '1':
				b.bits[y*b.W+x] = true
			default:
				return Bitmap{}, fmt.Errorf("row %d col %d: invalid pixel %q", y, x, c)
			}
		}
	}
	return b, nil
}

// At reports whether pixel (x, y) is set. Out of range pixels are unset.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.bits[y*b.W+x]
}

// Count returns the number of set pixels.
func (b Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Upscale returns a copy where every pixel is replaced by an n x n block.
func (b Bitmap) Upscale(n int) Bitmap {
	if n <= 1 {
		return b
	}
	out := Bitmap{W: b.W * n, H: b.H * n}
	out.bits = make([]bool, out.W*out.H)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			out.bits[y*out.W+x] = b.bits[(y/n)*b.W+x/n]
		}
	}
	return out
}

// Sheet is the ordered animation sequence of one entity kind.
type Sheet []Bitmap

// MustSheet parses and upscales the given patterns. Sprite data is static,
// so any malformed pattern panics.
func MustSheet(scale int, patterns ...[]string) Sheet {
	if len(patterns) == 0 {
		panic("core: sprite sheet without frames")
	}
	sheet := make(Sheet, 0, len(patterns))
	for i, p := range patterns {
		b, err := ParseBitmap(p)
		if err != nil {
			panic(fmt.Sprintf("core: sprite frame %d: %v", i, err))
		}
		b = b.Upscale(scale)
		if i > 0 && (b.W != sheet[0].W || b.H != sheet[0].H) {
			panic(fmt.Sprintf("core: sprite frame %d is %dx%d, want %dx%d", i, b.W, b.H, sheet[0].W, sheet[0].H))
		}
		sheet = append(sheet, b)
	}
	return sheet
}

// Size returns the frame dimensions shared by the whole sheet.
func (s Sheet) Size() (w, h int) {
	return s[0].W, s[0].H
}
