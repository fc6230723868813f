package format

import (
	"fmt"
	"strings"

	"gridsplit/internal/model"
	"gridsplit/internal/partition"
)

var (
	indexHeader = map[partition.Direction]string{
		partition.Vertical:   "#Col",
		partition.Horizontal: "#Row",
	}
	percentHeader = map[partition.Direction]string{
		partition.Vertical:   "Width in %",
		partition.Horizontal: "Height in %",
	}
	axisTitle = map[partition.Direction]string{
		partition.Vertical:   "Columns",
		partition.Horizontal: "Rows",
	}
	splitsLabel = map[partition.Direction]string{
		partition.Vertical:   "Vertical Splits",
		partition.Horizontal: "Horizontal Splits",
	}
	evenLabel = map[partition.Direction]string{
		partition.Vertical:   "Equal column width",
		partition.Horizontal: "Equal row height",
	}
)

// SplitsLabel returns the split-count label for an axis.
func SplitsLabel(d partition.Direction) string {
	return splitsLabel[d]
}

// EvenLabel returns the even-mode check label for an axis.
func EvenLabel(d partition.Direction) string {
	return evenLabel[d]
}

// AxisTitle returns the frame title for an axis ("Columns" or "Rows").
func AxisTitle(d partition.Direction) string {
	return axisTitle[d]
}

// IndexHeader returns the index column heading for an axis.
func IndexHeader(d partition.Direction) string {
	return indexHeader[d]
}

// PercentHeader returns the percentage column heading for an axis.
func PercentHeader(d partition.Direction) string {
	return percentHeader[d]
}

// FormatAxisHeader returns a header line for an axis table.
func FormatAxisHeader(d partition.Direction) string {
	return fmt.Sprintf("%-6s %12s", indexHeader[d], percentHeader[d])
}

// FormatEntry produces a single table line for a partition entry.
func FormatEntry(e partition.Entry) string {
	return fmt.Sprintf("%-6d %11d%%", e.Index, e.Percent)
}

// FormatAxis renders the partition table of one axis.
func FormatAxis(d partition.Direction, a *partition.Axis) string {
	var b strings.Builder

	mode := "equal"
	if !a.Even() {
		mode = "manual"
	}
	b.WriteString(fmt.Sprintf("%s: %d (%s)\n", axisTitle[d], a.SplitCount(), mode))
	b.WriteString(FormatAxisHeader(d))
	b.WriteString("\n")
	for _, e := range a.Entries() {
		b.WriteString(FormatEntry(e))
		b.WriteString("\n")
	}
	if sum := a.Sum(); sum != 100 {
		b.WriteString(fmt.Sprintf("WARNING: shares sum to %d%%\n", sum))
	}
	return b.String()
}

// FormatCrops renders crop boundaries as a bracketed list with three decimals.
func FormatCrops(crops []float64) string {
	parts := make([]string, len(crops))
	for i, c := range crops {
		parts[i] = fmt.Sprintf("%.3f", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatLayout produces a human-readable description of a confirmed layout.
func FormatLayout(l *model.Layout) string {
	var b strings.Builder

	b.WriteString("=== Grid Layout ===\n")
	if l.ID != "" {
		b.WriteString(fmt.Sprintf("Layout:          %s\n", l.ID))
	}
	if !l.Created.IsZero() {
		b.WriteString(fmt.Sprintf("Created:         %s\n", l.Created.Format("2006-01-02 15:04:05")))
	}
	b.WriteString(fmt.Sprintf("Grid:            %d columns x %d rows (%d pages)\n", l.Columns(), l.Rows(), l.TileCount()))
	b.WriteString(fmt.Sprintf("Column cuts:     %s\n", FormatCrops(l.VerticalCrops)))
	b.WriteString(fmt.Sprintf("Row cuts:        %s\n", FormatCrops(l.HorizontalCrops)))

	hasPage := l.PageWidth > 0 && l.PageHeight > 0
	if hasPage {
		b.WriteString(fmt.Sprintf("Page:            %.0f x %.0f pt\n", l.PageWidth, l.PageHeight))
	}

	if l.TileCount() > 1 {
		b.WriteString("\n--- Tiles ---\n")
		for _, t := range l.Tiles(model.Crop{}) {
			line := fmt.Sprintf("Tile r%d c%d:  left %.3f  right %.3f  top %.3f  bottom %.3f",
				t.Row+1, t.Col+1, t.Crop.Left, t.Crop.Right, t.Crop.Top, t.Crop.Bottom)
			if hasPage {
				w, h := t.Size(l.PageWidth, l.PageHeight)
				line += fmt.Sprintf("  (%.1f x %.1f pt)", w, h)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("===================")
	return b.String()
}
