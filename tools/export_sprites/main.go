// Tool to export the built-in sprite sheets as PNG files, one per animation
// frame, tinted with the configured foreground color.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/invaders/engine/config"
	"github.com/1siamBot/invaders/engine/core"
	"github.com/1siamBot/invaders/engine/render"
	"github.com/1siamBot/invaders/engine/systems"
)

func main() {
	outDir := filepath.Join("assets", "sprites")
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := run(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	cfg, err := config.LoadOrDefault(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	fg := render.RGB(cfg.Render.Foreground)
	scale := cfg.Render.Scale
	for kind := core.Kind(0); kind < core.KindMax; kind++ {
		for i, frame := range systems.SheetFor(kind) {
			img := tint(render.BitmapImage(frame), fg)
			if scale != 1 {
				img = upscale(img, scale)
			}
			path := filepath.Join(outDir, fmt.Sprintf("%s_%d.png", kind, i))
			if err := savePNG(path, img); err != nil {
				return err
			}
			fmt.Println("  →", path)
		}
	}
	return nil
}

// tint recolors every opaque pixel
func tint(img *image.RGBA, c color.RGBA) *image.RGBA {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func upscale(img *image.RGBA, scale float64) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
