package model

import (
	"fmt"
	"time"
)

// Crop holds crop margins as fractions of the page size, trimmed from each side.
type Crop struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// VisibleWidth returns the fraction of the page width left after cropping.
func (c Crop) VisibleWidth() float64 {
	return 1 - c.Left - c.Right
}

// VisibleHeight returns the fraction of the page height left after cropping.
func (c Crop) VisibleHeight() float64 {
	return 1 - c.Top - c.Bottom
}

// Tile is one output page of a grid split.
type Tile struct {
	Row  int  `yaml:"row"` // 0-based, top to bottom
	Col  int  `yaml:"col"` // 0-based, left to right
	Crop Crop `yaml:"crop"`
}

// Size returns the tile dimensions for a page of pageW x pageH points.
func (t Tile) Size(pageW, pageH float64) (w, h float64) {
	return pageW * t.Crop.VisibleWidth(), pageH * t.Crop.VisibleHeight()
}

// Layout is a confirmed grid split: the crop boundaries of both axes plus
// the page it was prepared for.
type Layout struct {
	ID              string    // e.g. "20261017-101500-01"
	Created         time.Time
	Session         string    // dialog session that produced the layout
	VerticalCrops   []float64 // column boundaries, 0..1
	HorizontalCrops []float64 // row boundaries, 0..1
	PageWidth       float64   // points; 0 = unknown
	PageHeight      float64   // points; 0 = unknown
}

// Columns returns the number of tile columns.
func (l *Layout) Columns() int {
	return max(len(l.VerticalCrops)-1, 0)
}

// Rows returns the number of tile rows.
func (l *Layout) Rows() int {
	return max(len(l.HorizontalCrops)-1, 0)
}

// TileCount returns the number of output pages per source page.
func (l *Layout) TileCount() int {
	return l.Columns() * l.Rows()
}

// Tiles returns the tiles in row-major order for a page already cropped by base.
// Boundaries are taken relative to the visible area of the page.
func (l *Layout) Tiles(base Crop) []Tile {
	w := base.VisibleWidth()
	h := base.VisibleHeight()

	tiles := make([]Tile, 0, l.TileCount())
	for r := 0; r < l.Rows(); r++ {
		y0, y1 := l.HorizontalCrops[r], l.HorizontalCrops[r+1]
		for c := 0; c < l.Columns(); c++ {
			x0, x1 := l.VerticalCrops[c], l.VerticalCrops[c+1]
			tiles = append(tiles, Tile{
				Row: r,
				Col: c,
				Crop: Crop{
					Left:   base.Left + x0*w,
					Right:  base.Right + (1-x1)*w,
					Top:    base.Top + y0*h,
					Bottom: base.Bottom + (1-y1)*h,
				},
			})
		}
	}
	return tiles
}

// Validate checks that both boundary sequences start at 0, end at 1 and
// strictly increase.
func (l *Layout) Validate() error {
	if err := validateCrops("vertical", l.VerticalCrops); err != nil {
		return err
	}
	return validateCrops("horizontal", l.HorizontalCrops)
}

func validateCrops(name string, crops []float64) error {
	if len(crops) < 2 {
		return fmt.Errorf("%s crops need at least 2 boundaries, got %d", name, len(crops))
	}
	if crops[0] != 0 {
		return fmt.Errorf("%s crops must start at 0, got %g", name, crops[0])
	}
	if last := crops[len(crops)-1]; last != 1 {
		return fmt.Errorf("%s crops must end at 1, got %g", name, last)
	}
	for i := 1; i < len(crops); i++ {
		if crops[i] <= crops[i-1] {
			return fmt.Errorf("%s crops must strictly increase: %g after %g", name, crops[i], crops[i-1])
		}
	}
	return nil
}
