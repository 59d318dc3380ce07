package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/mapview"
)

// GeoM converts a mapview world transform into an ebiten.GeoM.
func GeoM(m f64.Aff3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Renderer draws a controller's content image clipped to its container.
type Renderer struct {
	// HideLabel suppresses the zoom percentage in the container's corner.
	HideLabel bool

	canvas *ebiten.Image
}

// Draw renders img as the content of ctrl onto screen. img is stretched to
// the content node's Width x Height.
func (r *Renderer) Draw(screen, img *ebiten.Image, ctrl *mapview.Controller) {
	container := ctrl.Container()
	content := ctrl.Content()

	w := int(math.Ceil(container.Width))
	h := int(math.Ceil(container.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if r.canvas == nil || r.canvas.Bounds().Dx() != w || r.canvas.Bounds().Dy() != h {
		if r.canvas != nil {
			r.canvas.Deallocate()
		}
		r.canvas = ebiten.NewImage(w, h)
	}
	r.canvas.Clear()

	// Content into the canvas, whose origin is the container's top-left.
	b := img.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(
			content.Width/float64(b.Dx())*content.ScaleX,
			content.Height/float64(b.Dy())*content.ScaleY,
		)
		op.GeoM.Translate(content.X+container.Width/2, content.Y+container.Height/2)
		op.Filter = ebiten.FilterLinear
		r.canvas.DrawImage(img, op)
	}

	// Canvas onto the screen through the container's world transform.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-container.Width/2, -container.Height/2)
	op.GeoM.Concat(GeoM(container.WorldTransform()))
	screen.DrawImage(r.canvas, op)

	if !r.HideLabel {
		rect := container.ScreenRect()
		ebitenutil.DebugPrintAt(screen, ctrl.Label(), int(rect.X)+4, int(rect.Y)+4)
	}
}
