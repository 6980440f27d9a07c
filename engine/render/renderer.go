package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
)

// Renderer draws the world onto an Ebitengine screen
type Renderer struct {
	Sprites    *SpriteManager
	Foreground color.RGBA
	Background color.RGBA
	ScoreX     int
	ScoreY     int
	face       text.Face
}

// NewRenderer creates a renderer with the colors and score position of cfg
func NewRenderer(cfg config.RenderConfig) *Renderer {
	return &Renderer{
		Sprites:    NewSpriteManager(),
		Foreground: RGB(cfg.Foreground),
		Background: RGB(cfg.Background),
		ScoreX:     cfg.ScoreX,
		ScoreY:     cfg.ScoreY,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

// RGB converts a config color triple to an opaque color
func RGB(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Draw clears the screen, draws every entity in world order and then the
// score.
func (r *Renderer) Draw(screen *ebiten.Image, w *core.World) {
	screen.Fill(r.Background)

	for _, e := range w.Entities() {
		b := e.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(b.X), float64(b.Y))
		op.ColorScale.ScaleWithColor(r.Foreground)
		screen.DrawImage(r.Sprites.Image(e), op)
	}

	r.drawScore(screen, w.Score())
	if w.State() == core.StateGameOver {
		r.drawBanner(screen, Banner(w))
	}
}

// Banner returns the end-of-game message, or "" while playing
func Banner(w *core.World) string {
	switch {
	case w.State() != core.StateGameOver:
		return ""
	case w.Won():
		return "YOU WIN"
	}
	return "GAME OVER"
}

// drawBanner centers msg on the screen with a filled strip behind it
func (r *Renderer) drawBanner(screen *ebiten.Image, msg string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := text.Measure(msg, r.face, 0)
	cx, cy := float64(sw)/2, float64(sh)/2

	vector.DrawFilledRect(screen, 0, float32(cy-th), float32(sw), float32(2*th), r.Background, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-tw/2, cy-th/2)
	op.ColorScale.ScaleWithColor(r.Foreground)
	text.Draw(screen, msg, r.face, op)
}

func (r *Renderer) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.ScoreX), float64(r.ScoreY))
	op.ColorScale.ScaleWithColor(r.Foreground)
	text.Draw(screen, strconv.Itoa(score), r.face, op)
}
