// Package termview renders the playfield in a terminal and turns key events
// into held-action snapshots.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
)

// View draws the world on a tcell screen. Row 0 holds the score; every other
// cell shows two vertically stacked sub-pixels using half-block glyphs.
type View struct {
	Screen tcell.Screen
	Style  tcell.Style // foreground on background
	grid   []bool
}

func NewView(screen tcell.Screen, cfg config.RenderConfig) *View {
	fg, bg := cfg.Foreground, cfg.Background
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg[0]), int32(fg[1]), int32(fg[2]))).
		Background(tcell.NewRGBColor(int32(bg[0]), int32(bg[1]), int32(bg[2])))
	return &View{Screen: screen, Style: style}
}

// Draw rasterizes the world into the screen's back buffer. Call Show to
// present it.
func (v *View) Draw(w *core.World) {
	cols, rows := v.Screen.Size()
	v.Screen.Fill(' ', v.Style)
	if cols <= 0 || rows <= 1 {
		return
	}

	gw, gh := cols, (rows-1)*2
	v.rasterize(w, gw, gh)

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			top := v.grid[(2*r)*gw+c]
			bottom := v.grid[(2*r+1)*gw+c]
			if ch := halfBlock(top, bottom); ch != ' ' {
				v.Screen.SetContent(c, r+1, ch, nil, v.Style)
			}
		}
	}

	v.drawText(0, 0, fmt.Sprintf("SCORE %d", w.Score()))
	if w.State() == core.StateGameOver {
		msg := "GAME OVER"
		if w.Won() {
			msg = "YOU WIN"
		}
		v.drawText((cols-len(msg))/2, rows/2, msg)
	}
}

// rasterize maps every lit entity pixel of the playfield onto a gw x gh grid
func (v *View) rasterize(w *core.World, gw, gh int) {
	if cap(v.grid) < gw*gh {
		v.grid = make([]bool, gw*gh)
	}
	v.grid = v.grid[:gw*gh]
	for i := range v.grid {
		v.grid[i] = false
	}

	rules := w.Rules()
	for _, e := range w.Entities() {
		b := e.Bounds()
		sprite := e.Sprite()
		for py := 0; py < sprite.H; py++ {
			fy := b.Y + py
			if fy < 0 || fy >= rules.FieldHeight {
				continue
			}
			gy := fy * gh / rules.FieldHeight
			for px := 0; px < sprite.W; px++ {
				fx := b.X + px
				if fx < 0 || fx >= rules.FieldWidth || !sprite.At(px, py) {
					continue
				}
				v.grid[gy*gw+fx*gw/rules.FieldWidth] = true
			}
		}
	}
}

func (v *View) drawText(x, y int, s string) {
	for i, r := range s {
		v.Screen.SetContent(x+i, y, r, nil, v.Style)
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}
