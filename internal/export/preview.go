package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"gridsplit/internal/model"
)

const (
	defaultPreviewWidth = 400
	previewMargin       = 16
	defaultAspect       = 1.4142 // A-series portrait
)

// PreviewOptions controls SavePreview.
type PreviewOptions struct {
	Path   string
	Format string // "svg" or "png"; empty = from Path extension
	Layout *model.Layout
	Width  int // pixels including margins; 0 = 400
}

// previewGeometry holds the page outline and cut positions in pixels.
type previewGeometry struct {
	width, height int
	x0, y0        float64
	pageW, pageH  float64
	cols, rows    []float64 // cut positions, outer edges included
}

func newPreviewGeometry(l *model.Layout, width int) previewGeometry {
	if width <= 0 {
		width = defaultPreviewWidth
	}
	aspect := defaultAspect
	if l.PageWidth > 0 && l.PageHeight > 0 {
		aspect = l.PageHeight / l.PageWidth
	}

	g := previewGeometry{
		width: width,
		x0:    previewMargin,
		y0:    previewMargin,
		pageW: float64(width - 2*previewMargin),
	}
	g.pageH = g.pageW * aspect
	g.height = int(g.pageH) + 2*previewMargin

	for _, c := range l.VerticalCrops {
		g.cols = append(g.cols, g.x0+c*g.pageW)
	}
	for _, c := range l.HorizontalCrops {
		g.rows = append(g.rows, g.y0+c*g.pageH)
	}
	return g
}

// interior returns the cut positions without the page edges.
func interior(cuts []float64) []float64 {
	if len(cuts) <= 2 {
		return nil
	}
	return cuts[1 : len(cuts)-1]
}

// SavePreview renders the page outline, cut lines and tile numbers of a layout.
func SavePreview(opts PreviewOptions) error {
	if opts.Layout == nil {
		return fmt.Errorf("preview: layout is required")
	}
	if err := opts.Layout.Validate(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}

	g := newPreviewGeometry(opts.Layout, opts.Width)
	switch format {
	case "svg":
		return saveSVG(opts.Path, g)
	case "png":
		return savePNG(opts.Path, g)
	default:
		return fmt.Errorf("preview: unsupported format %q (want svg or png)", format)
	}
}

func saveSVG(path string, g previewGeometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg file: %w", err)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(g.width, g.height)
	canvas.Rect(0, 0, g.width, g.height, "fill:#f0f0f0")
	canvas.Rect(int(g.x0), int(g.y0), int(g.pageW), int(g.pageH), "fill:white;stroke:#333;stroke-width:2")

	for _, x := range interior(g.cols) {
		canvas.Line(int(x), int(g.y0), int(x), int(g.y0+g.pageH), "stroke:#d33;stroke-width:1;stroke-dasharray:6,4")
	}
	for _, y := range interior(g.rows) {
		canvas.Line(int(g.x0), int(y), int(g.x0+g.pageW), int(y), "stroke:#d33;stroke-width:1;stroke-dasharray:6,4")
	}

	n := 1
	for r := 0; r+1 < len(g.rows); r++ {
		for c := 0; c+1 < len(g.cols); c++ {
			cx := int((g.cols[c] + g.cols[c+1]) / 2)
			cy := int((g.rows[r] + g.rows[r+1]) / 2)
			canvas.Text(cx, cy, strconv.Itoa(n), "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:14px;fill:#888")
			n++
		}
	}
	canvas.End()

	if err := f.Close(); err != nil {
		return fmt.Errorf("write svg file: %w", err)
	}
	return nil
}

func savePNG(path string, g previewGeometry) error {
	dc := gg.NewContext(g.width, g.height)
	dc.SetRGB(0.94, 0.94, 0.94)
	dc.Clear()

	dc.DrawRectangle(g.x0, g.y0, g.pageW, g.pageH)
	dc.SetRGB(1, 1, 1)
	dc.FillPreserve()
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetRGB(0.83, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.SetDash(6, 4)
	for _, x := range interior(g.cols) {
		dc.DrawLine(x, g.y0, x, g.y0+g.pageH)
		dc.Stroke()
	}
	for _, y := range interior(g.rows) {
		dc.DrawLine(g.x0, y, g.x0+g.pageW, y)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetRGB(0.53, 0.53, 0.53)
	n := 1
	for r := 0; r+1 < len(g.rows); r++ {
		for c := 0; c+1 < len(g.cols); c++ {
			cx := (g.cols[c] + g.cols[c+1]) / 2
			cy := (g.rows[r] + g.rows[r+1]) / 2
			dc.DrawStringAnchored(strconv.Itoa(n), cx, cy, 0.5, 0.5)
			n++
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png file: %w", err)
	}
	return nil
}
