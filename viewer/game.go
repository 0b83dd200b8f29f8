// Package viewer shows a gosieray.Canvas in an ebiten window.
package viewer

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/gosieray"
)

var frameColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}

type Game struct {
	canvas *gosieray.Canvas
	img    *ebiten.Image
	scale  int
}

// NewGame wraps c for display, magnified by scale (at least 1).
func NewGame(c *gosieray.Canvas, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		canvas: c,
		scale:  scale,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		// the canvas is an image.Image, upload it once
		g.img = ebiten.NewImageFromImage(g.canvas)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	w, h := g.Layout(0, 0)
	vector.StrokeRect(screen, 0, 0, float32(w), float32(h), 1, frameColor, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%dx%d  FPS: %0.2f", g.canvas.Width(), g.canvas.Height(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width() * g.scale, g.canvas.Height() * g.scale
}

// Run opens a window showing c and blocks until it is closed or Escape is
// pressed.
func Run(c *gosieray.Canvas, title string, scale int) error {
	if c.Width() == 0 || c.Height() == 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width(), c.Height(), ErrEmptyCanvas)
	}
	g := NewGame(c, scale)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	log.Printf("Showing %dx%d canvas", c.Width(), c.Height())
	// Termination from Update makes RunGame return nil
	return ebiten.RunGame(g)
}
