package export

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridsplit/internal/model"
)

// layoutFile is the on-disk form of a layout handed to the page cropper.
type layoutFile struct {
	ID      string    `yaml:"id"`
	Created time.Time `yaml:"created"`
	Session string    `yaml:"session,omitempty"`
	Page    *pageSize `yaml:"page,omitempty"`
	Crops   struct {
		Vertical   []float64 `yaml:"vertical"`
		Horizontal []float64 `yaml:"horizontal"`
	} `yaml:"crops"`
	Tiles []model.Tile `yaml:"tiles"`
}

type pageSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WriteYAML writes a layout with its crop boundaries and tile crops.
func WriteYAML(path string, l *model.Layout) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	doc := layoutFile{
		ID:      l.ID,
		Created: l.Created,
		Session: l.Session,
		Tiles:   l.Tiles(model.Crop{}),
	}
	doc.Crops.Vertical = l.VerticalCrops
	doc.Crops.Horizontal = l.HorizontalCrops
	if l.PageWidth > 0 && l.PageHeight > 0 {
		doc.Page = &pageSize{Width: l.PageWidth, Height: l.PageHeight}
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write yaml file: %w", err)
	}
	return nil
}

// ReadYAML loads a layout written by WriteYAML. Tiles are derived again from
// the crop boundaries rather than trusted from the file.
func ReadYAML(path string) (*model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml file: %w", err)
	}

	var doc layoutFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	l := &model.Layout{
		ID:              doc.ID,
		Created:         doc.Created,
		Session:         doc.Session,
		VerticalCrops:   doc.Crops.Vertical,
		HorizontalCrops: doc.Crops.Horizontal,
	}
	if doc.Page != nil {
		l.PageWidth = doc.Page.Width
		l.PageHeight = doc.Page.Height
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", path, err)
	}
	return l, nil
}
