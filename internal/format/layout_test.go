package format

import (
	"strings"
	"testing"
	"time"

	"gridsplit/internal/model"
	"gridsplit/internal/partition"
)

func TestFormatAxisEven(t *testing.T) {
	a := partition.NewAxis()
	a.SetSplitCount(4)

	out := FormatAxis(partition.Vertical, a)

	if !strings.HasPrefix(out, "Columns: 4 (equal)") {
		t.Errorf("unexpected title line: %q", out)
	}
	if !strings.Contains(out, "#Col") || !strings.Contains(out, "Width in %") {
		t.Error("missing column headers")
	}
	if strings.Count(out, "25%") != 4 {
		t.Errorf("expected four 25%% rows, got:\n%s", out)
	}
	if strings.Contains(out, "WARNING") {
		t.Error("balanced axis should not warn")
	}
}

func TestFormatAxisManual(t *testing.T) {
	a := partition.NewAxis()
	a.SetSplitCount(3)
	a.EditEntry(1, 50)

	out := FormatAxis(partition.Horizontal, a)

	if !strings.HasPrefix(out, "Rows: 3 (manual)") {
		t.Errorf("unexpected title line: %q", out)
	}
	if !strings.Contains(out, "Height in %") {
		t.Error("missing height header")
	}
	if !strings.Contains(out, "17%") {
		t.Errorf("missing rebalanced last row:\n%s", out)
	}
}

func TestFormatCrops(t *testing.T) {
	got := FormatCrops([]float64{0, 0.25, 0.5, 1})
	want := "[0.000, 0.250, 0.500, 1.000]"
	if got != want {
		t.Errorf("FormatCrops() = %q, want %q", got, want)
	}
	if got := FormatCrops(nil); got != "[]" {
		t.Errorf("FormatCrops(nil) = %q, want []", got)
	}
}

func TestFormatLayout(t *testing.T) {
	l := &model.Layout{
		ID:              "20261017-120000-01",
		Created:         time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		VerticalCrops:   []float64{0, 0.5, 1},
		HorizontalCrops: []float64{0, 1},
		PageWidth:       600,
		PageHeight:      800,
	}

	out := FormatLayout(l)

	if !strings.Contains(out, "=== Grid Layout ===") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "20261017-120000-01") {
		t.Error("missing layout id")
	}
	if !strings.Contains(out, "2 columns x 1 rows (2 pages)") {
		t.Errorf("missing grid summary:\n%s", out)
	}
	if !strings.Contains(out, "Tile r1 c2") {
		t.Error("missing second tile")
	}
	if !strings.Contains(out, "(300.0 x 800.0 pt)") {
		t.Errorf("missing tile size:\n%s", out)
	}
}

func TestFormatLayoutSingleTile(t *testing.T) {
	l := &model.Layout{
		VerticalCrops:   []float64{0, 1},
		HorizontalCrops: []float64{0, 1},
	}

	out := FormatLayout(l)

	if strings.Contains(out, "--- Tiles ---") {
		t.Error("single tile layout should not list tiles")
	}
	if strings.Contains(out, "Page:") {
		t.Error("unknown page size should not be printed")
	}
}
