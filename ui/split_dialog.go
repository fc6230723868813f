package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"gridsplit/internal/format"
	"gridsplit/internal/model"
	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

// axisFrame holds the widgets of one axis: split count, even check and the
// editable share list.
type axisFrame struct {
	dir     partition.Direction
	session *session.Session
	onError func(error)

	count *widget.Select
	even  *widget.Check
	list  *widget.List
	sum   *widget.Label
	card  *widget.Card

	// set while widgets are updated from the model, so their callbacks
	// do not feed the same values back
	syncing bool
}

func newAxisFrame(s *session.Session, d partition.Direction, maxSplits int, onError func(error)) *axisFrame {
	f := &axisFrame{dir: d, session: s, onError: onError}

	f.count = widget.NewSelect(countOptions(maxSplits), func(v string) {
		if f.syncing {
			return
		}
		f.session.SetSplitCount(f.dir, parseIntOrDefault(v, 1))
	})

	f.even = widget.NewCheck(format.EvenLabel(d), func(on bool) {
		if f.syncing {
			return
		}
		f.session.ToggleEvenMode(f.dir, on)
	})

	f.list = widget.NewList(
		func() int {
			return f.axis().Len()
		},
		func() fyne.CanvasObject {
			return container.NewGridWithColumns(2, widget.NewLabel("template"), newPercentEntry())
		},
		f.updateRow,
	)

	f.sum = widget.NewLabel("")

	header := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle(format.IndexHeader(d), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(format.PercentHeader(d), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	top := container.NewVBox(
		widget.NewForm(widget.NewFormItem(format.SplitsLabel(d), f.count)),
		f.even,
		header,
	)
	f.card = widget.NewCard(format.AxisTitle(d), "", container.NewBorder(top, f.sum, nil, nil, f.list))

	f.refresh()
	return f
}

func (f *axisFrame) axis() *partition.Axis {
	return f.session.Model.Axis(f.dir)
}

func (f *axisFrame) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	entries := f.axis().Entries()
	if id >= len(entries) {
		return
	}
	row := obj.(*fyne.Container)
	row.Objects[0].(*widget.Label).SetText(strconv.Itoa(entries[id].Index))

	entry := row.Objects[1].(*percentEntry)
	entry.SetText(strconv.Itoa(entries[id].Percent))
	entry.onCommit = func(text string) {
		f.submit(id, text)
	}
}

// submit applies an edited percentage typed into row position.
func (f *axisFrame) submit(position int, text string) {
	v, err := parseIntInRange(text, 0, 100, format.PercentHeader(f.dir))
	if err != nil {
		if f.onError != nil {
			f.onError(err)
		}
		// Put the current value back into the entry
		f.list.RefreshItem(position)
		return
	}
	entries := f.axis().Entries()
	if position >= len(entries) || entries[position].Percent == v {
		return
	}
	f.session.EditEntry(f.dir, position, v)
}

// refresh brings the widgets in line with the axis.
func (f *axisFrame) refresh() {
	a := f.axis()

	f.syncing = true
	f.count.SetSelected(strconv.Itoa(a.SplitCount()))
	f.even.SetChecked(a.Even())
	f.syncing = false

	f.sum.SetText(fmt.Sprintf("Total: %d%%   Cuts: %s", a.Sum(), format.FormatCrops(a.Crops())))
	f.list.Refresh()
}

// SplitDialog is the grid-split dialog body: one frame per axis.
type SplitDialog struct {
	session  *session.Session
	frames   [2]*axisFrame
	content  *fyne.Container
	onChange func()
}

// NewSplitDialog builds the dialog body editing s. Split counts are offered
// up to maxSplits; onError receives rejected percentage input.
func NewSplitDialog(s *session.Session, maxSplits int, onError func(error)) *SplitDialog {
	if maxSplits < 1 || maxSplits > partition.MaxSplits {
		maxSplits = partition.MaxSplits
	}

	sd := &SplitDialog{session: s}
	for _, d := range partition.Directions {
		sd.frames[d] = newAxisFrame(s, d, maxSplits, onError)
	}
	sd.content = container.NewGridWithColumns(2, sd.frames[partition.Vertical].card, sd.frames[partition.Horizontal].card)

	s.Model.OnChange(func(d partition.Direction) {
		sd.frames[d].refresh()
		if sd.onChange != nil {
			sd.onChange()
		}
	})
	return sd
}

// Content returns the dialog body.
func (sd *SplitDialog) Content() *fyne.Container {
	return sd.content
}

// SetOnChange registers fn to run after any axis changes.
func (sd *SplitDialog) SetOnChange(fn func()) {
	sd.onChange = fn
}

// ShowSplitDialog opens the grid-split dialog on win. onDone receives the
// confirmed layout, or nil when the dialog is cancelled.
func ShowSplitDialog(win fyne.Window, s *session.Session, maxSplits int, onChange func(), onDone func(*model.Layout)) {
	sd := NewSplitDialog(s, maxSplits, func(err error) {
		dialog.ShowError(err, win)
	})
	sd.SetOnChange(onChange)

	d := dialog.NewCustomConfirm("Grid splitting", "OK", "Cancel", sd.Content(), func(ok bool) {
		onDone(s.Confirm(ok))
	}, win)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}
