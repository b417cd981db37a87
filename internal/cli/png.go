package cli

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/overlayui/flexbox"
)

// pngScale is how many pixels one layout unit maps to.
const pngScale = 32

// pngPalette cycles per nesting depth, mirroring the ANSI renderer.
var pngPalette = [][3]float64{
	{0.26, 0.52, 0.96},
	{0.22, 0.74, 0.45},
	{0.95, 0.77, 0.06},
	{0.77, 0.38, 0.91},
	{0.13, 0.78, 0.86},
}

// RenderPNG rasterizes a computed layout into a PNG at path. Each node is
// drawn as a stroked rectangle colored by nesting depth; labels, keyed by
// node id, are drawn at the rectangle center.
func RenderPNG(l *flexbox.Layout, labels map[string]string, path string) error {
	target := l.Target()
	w, h := int(target.Width*pngScale), int(target.Height*pngScale)
	if w < 1 || h < 1 {
		return fmt.Errorf("target %gx%g is too small to render", target.Width, target.Height)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(0.09, 0.09, 0.11)
	dc.Clear()

	l.Walk(func(n flexbox.Node, depth int) {
		abs, ok := l.AbsolutePosition(n.ID())
		if !ok {
			return
		}
		r := n.Result()

		x, y := abs.X*pngScale, abs.Y*pngScale
		rw, rh := r.Size.Width*pngScale, r.Size.Height*pngScale
		if rw <= 0 || rh <= 0 {
			return
		}

		c := pngPalette[depth%len(pngPalette)]
		dc.SetRGBA(c[0], c[1], c[2], 0.15)
		dc.DrawRectangle(x, y, rw, rh)
		dc.Fill()

		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(2)
		dc.DrawRectangle(x+1, y+1, rw-2, rh-2)
		dc.Stroke()

		if label, ok := labels[n.ID()]; ok {
			dc.SetRGB(0.95, 0.95, 0.95)
			dc.DrawStringAnchored(label, x+rw/2, y+rh/2, 0.5, 0.5)
		}
	})

	return dc.SavePNG(path)
}
