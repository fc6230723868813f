package ui

import "fyne.io/fyne/v2/widget"

// percentEntry is a share field that applies its value on Enter and when
// focus moves away, so a typed value is never dropped silently.
type percentEntry struct {
	widget.Entry
	onCommit func(string)
}

func newPercentEntry() *percentEntry {
	e := &percentEntry{}
	e.SetPlaceHolder("0-100")
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(string) { e.commit() }
	return e
}

// FocusLost commits the current text.
func (e *percentEntry) FocusLost() {
	e.Entry.FocusLost()
	e.commit()
}

func (e *percentEntry) commit() {
	if e.onCommit != nil {
		e.onCommit(e.Text)
	}
}
