package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"gridsplit/internal/format"
	"gridsplit/internal/model"
)

var historyColumns = []string{"Time", "Layout", "Grid", "Column cuts", "Row cuts"}

// HistoryView displays a table of layouts confirmed in this session.
type HistoryView struct {
	mu      sync.Mutex
	layouts []model.Layout
	table   *widget.Table

	// OnSelected is called with a copy of the layout on the tapped row.
	OnSelected func(model.Layout)
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 160) // Time
	hv.table.SetColumnWidth(1, 170) // Layout
	hv.table.SetColumnWidth(2, 80)  // Grid
	hv.table.SetColumnWidth(3, 220) // Column cuts
	hv.table.SetColumnWidth(4, 220) // Row cuts

	hv.table.OnSelected = func(id widget.TableCellID) {
		hv.table.UnselectAll()
		if id.Row == 0 {
			return
		}
		hv.mu.Lock()
		idx := id.Row - 1
		if idx >= len(hv.layouts) {
			hv.mu.Unlock()
			return
		}
		l := hv.layouts[idx]
		hv.mu.Unlock()
		if hv.OnSelected != nil {
			hv.OnSelected(l)
		}
	}

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddLayout appends a confirmed layout to the history.
func (hv *HistoryView) AddLayout(l model.Layout) {
	hv.mu.Lock()
	hv.layouts = append(hv.layouts, l)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Layouts returns a copy of all stored layouts.
func (hv *HistoryView) Layouts() []model.Layout {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Layout, len(hv.layouts))
	copy(out, hv.layouts)
	return out
}

// Last returns the most recent layout, or nil if there is none.
func (hv *HistoryView) Last() *model.Layout {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	if len(hv.layouts) == 0 {
		return nil
	}
	l := hv.layouts[len(hv.layouts)-1]
	return &l
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.layouts) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(historyColumns[id.Col])
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.layouts) {
		label.SetText("")
		return
	}

	l := hv.layouts[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(l.Created.Format("2006-01-02 15:04:05"))
	case 1:
		label.SetText(l.ID)
	case 2:
		label.SetText(fmt.Sprintf("%d x %d", l.Columns(), l.Rows()))
	case 3:
		label.SetText(format.FormatCrops(l.VerticalCrops))
	case 4:
		label.SetText(format.FormatCrops(l.HorizontalCrops))
	}
}
