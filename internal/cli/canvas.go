package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/overlayui/flexbox"
)

// canvas is a terminal cell grid the computed tree is rasterized onto.
// Layout coordinates are treated as cell coordinates, rounded to the
// nearest cell.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

type cell struct {
	r     rune
	depth int
}

// depthColors cycles per nesting level so sibling regions stay readable.
var depthColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

func newCanvas(width, height int) *canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(x, y int, r rune, depth int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, depth: depth}
}

// drawRect draws a bordered rectangle. Rectangles thinner than two cells
// degrade to a filled run so they stay visible.
func (c *canvas) drawRect(x, y, w, h, depth int) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == 1 || h == 1 {
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				c.set(x+dx, y+dy, '#', depth)
			}
		}
		return
	}

	c.set(x, y, '┌', depth)
	c.set(x+w-1, y, '┐', depth)
	c.set(x, y+h-1, '└', depth)
	c.set(x+w-1, y+h-1, '┘', depth)
	for dx := 1; dx < w-1; dx++ {
		c.set(x+dx, y, '─', depth)
		c.set(x+dx, y+h-1, '─', depth)
	}
	for dy := 1; dy < h-1; dy++ {
		c.set(x, y+dy, '│', depth)
		c.set(x+w-1, y+dy, '│', depth)
	}
}

// drawLabel writes text inside the rectangle's interior, clipped to fit.
func (c *canvas) drawLabel(x, y, w int, text string, depth int) {
	if w < 3 {
		return
	}
	runes := []rune(text)
	if len(runes) > w-2 {
		runes = runes[:w-2]
	}
	for i, r := range runes {
		c.set(x+1+i, y, r, depth)
	}
}

// String renders the grid with one lipgloss style per nesting depth.
func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range row {
			if cl.r == ' ' {
				sb.WriteByte(' ')
				continue
			}
			style := depthColors[cl.depth%len(depthColors)]
			sb.WriteString(style.Render(string(cl.r)))
		}
	}
	return sb.String()
}

// RenderANSI rasterizes a computed layout into a colored terminal string.
// Labels, keyed by node id, are drawn inside the matching rectangles.
func RenderANSI(l *flexbox.Layout, labels map[string]string) string {
	target := l.Target()
	cv := newCanvas(round(target.Width), round(target.Height))

	l.Walk(func(n flexbox.Node, depth int) {
		abs, ok := l.AbsolutePosition(n.ID())
		if !ok {
			return
		}
		r := n.Result()
		x, y := round(abs.X), round(abs.Y)
		w, h := round(r.Size.Width), round(r.Size.Height)
		cv.drawRect(x, y, w, h, depth)
		if label, ok := labels[n.ID()]; ok {
			cv.drawLabel(x, y+h/2, w, label, depth)
		}
	})

	return cv.String()
}

func round(v float64) int {
	if math.IsInf(v, 1) {
		return 0
	}
	return int(math.Round(v))
}
