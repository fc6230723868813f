package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gridsplit/internal/model"
)

var csvHeaders = []string{
	"layout_id",
	"row",
	"col",
	"left",
	"right",
	"top",
	"bottom",
	"width_pt",
	"height_pt",
}

// WriteCSV writes one row per tile of each layout to a CSV file
// (semicolon-separated), creating it with headers if it doesn't exist, or
// appending rows if it does.
func WriteCSV(path string, layouts []model.Layout) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, l := range layouts {
		for _, t := range l.Tiles(model.Crop{}) {
			// Sizes are empty when the page size is unknown
			widthPt, heightPt := "", ""
			if l.PageWidth > 0 && l.PageHeight > 0 {
				tw, th := t.Size(l.PageWidth, l.PageHeight)
				widthPt = fmt.Sprintf("%.2f", tw)
				heightPt = fmt.Sprintf("%.2f", th)
			}

			row := []string{
				l.ID,
				strconv.Itoa(t.Row + 1),
				strconv.Itoa(t.Col + 1),
				fmt.Sprintf("%.4f", t.Crop.Left),
				fmt.Sprintf("%.4f", t.Crop.Right),
				fmt.Sprintf("%.4f", t.Crop.Top),
				fmt.Sprintf("%.4f", t.Crop.Bottom),
				widthPt,
				heightPt,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
