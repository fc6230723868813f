package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

var (
	pageFill  = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	pageEdge  = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	cutStroke = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// PreviewView draws the page outline with the current cut lines.
type PreviewView struct {
	page  *canvas.Rectangle
	lines *fyne.Container
	size  fyne.Size
	box   *fyne.Container
}

// NewPreviewView creates a preview for a page of the given size in points.
// A zero size falls back to a square page.
func NewPreviewView(pageWidth, pageHeight float64) *PreviewView {
	pv := &PreviewView{size: fitPage(pageWidth, pageHeight)}

	pv.page = canvas.NewRectangle(pageFill)
	pv.page.StrokeColor = pageEdge
	pv.page.StrokeWidth = 1
	pv.page.Resize(pv.size)

	pv.lines = container.NewWithoutLayout()
	inner := container.NewWithoutLayout(pv.page, pv.lines)
	pv.box = container.NewCenter(container.NewGridWrap(pv.size, inner))

	pv.Show([]float64{0, 1}, []float64{0, 1})
	return pv
}

// Container returns the preview's container.
func (pv *PreviewView) Container() *fyne.Container {
	return pv.box
}

// Show redraws the cut lines for the given crop boundaries.
func (pv *PreviewView) Show(vertical, horizontal []float64) {
	var objs []fyne.CanvasObject
	for _, x := range interiorCuts(vertical) {
		px := float32(x) * pv.size.Width
		objs = append(objs, newCutLine(fyne.NewPos(px, 0), fyne.NewPos(px, pv.size.Height)))
	}
	for _, y := range interiorCuts(horizontal) {
		py := float32(y) * pv.size.Height
		objs = append(objs, newCutLine(fyne.NewPos(0, py), fyne.NewPos(pv.size.Width, py)))
	}
	pv.lines.Objects = objs
	pv.lines.Refresh()
}

// LineCount returns the number of cut lines currently drawn.
func (pv *PreviewView) LineCount() int {
	return len(pv.lines.Objects)
}

func newCutLine(from, to fyne.Position) *canvas.Line {
	l := canvas.NewLine(cutStroke)
	l.StrokeWidth = theme.SeparatorThicknessSize() * 2
	l.Position1 = from
	l.Position2 = to
	return l
}

// interiorCuts drops the page edges 0 and 1.
func interiorCuts(cuts []float64) []float64 {
	out := make([]float64, 0, len(cuts))
	for _, c := range cuts {
		if c > 0 && c < 1 {
			out = append(out, c)
		}
	}
	return out
}

// fitPage scales a page size into the preview box.
func fitPage(w, h float64) fyne.Size {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	scale := min(PreviewMaxWidth/w, PreviewMaxHeight/h)
	return fyne.NewSize(float32(w*scale), float32(h*scale))
}
