package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

func TestSplitDialogCountSelect(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	sd := NewSplitDialog(s, 20, nil)
	changes := 0
	sd.SetOnChange(func() { changes++ })

	v := sd.frames[partition.Vertical]
	require.Len(t, v.count.Options, 20)
	require.Equal(t, "1", v.count.Selected)
	require.True(t, v.even.Checked)

	v.count.SetSelected("4")
	require.Equal(t, []int{25, 25, 25, 25}, s.Model.Axis(partition.Vertical).Percents())
	require.Equal(t, 4, v.list.Length())
	require.Positive(t, changes)

	h := sd.frames[partition.Horizontal]
	require.Equal(t, 1, h.list.Length())
}

func TestSplitDialogEditUnchecksEven(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	sd := NewSplitDialog(s, 20, nil)
	v := sd.frames[partition.Vertical]
	v.count.SetSelected("3")

	v.submit(1, "50")
	require.Equal(t, []int{33, 50, 17}, s.Model.Axis(partition.Vertical).Percents())
	require.False(t, v.even.Checked)
	require.Contains(t, v.sum.Text, "Total: 100%")

	v.even.SetChecked(true)
	require.Equal(t, []int{33, 33, 34}, s.Model.Axis(partition.Vertical).Percents())
}

func TestSplitDialogRejectsBadInput(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	var got error
	sd := NewSplitDialog(s, 20, func(err error) { got = err })
	v := sd.frames[partition.Vertical]
	v.count.SetSelected("2")

	v.submit(0, "150")
	require.Error(t, got)
	require.Equal(t, []int{50, 50}, s.Model.Axis(partition.Vertical).Percents())
	require.True(t, v.even.Checked)
}

func TestSplitDialogMaxSplits(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sd := NewSplitDialog(session.New(0, 0), 8, nil)
	require.Len(t, sd.frames[partition.Horizontal].count.Options, 8)

	sd = NewSplitDialog(session.New(0, 0), 0, nil)
	require.Len(t, sd.frames[partition.Horizontal].count.Options, partition.MaxSplits)
}

// rowEntry binds list row id of f to a fresh row and returns its entry.
func rowEntry(f *axisFrame, id int) *percentEntry {
	obj := f.list.CreateItem()
	f.updateRow(id, obj)
	return obj.(*fyne.Container).Objects[1].(*percentEntry)
}

func TestSplitDialogCommitsOnFocusLost(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	sd := NewSplitDialog(s, 20, nil)
	v := sd.frames[partition.Vertical]
	v.count.SetSelected("3")

	entry := rowEntry(v, 1)
	require.Equal(t, "33", entry.Text)

	entry.SetText("50")
	entry.FocusLost()
	require.Equal(t, []int{33, 50, 17}, s.Model.Axis(partition.Vertical).Percents())
	require.False(t, v.even.Checked)
}

func TestSplitDialogCommitsOnSubmit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	sd := NewSplitDialog(s, 20, nil)
	h := sd.frames[partition.Horizontal]
	h.count.SetSelected("2")

	entry := rowEntry(h, 0)
	entry.SetText("30")
	entry.OnSubmitted(entry.Text)
	require.Equal(t, []int{30, 70}, s.Model.Axis(partition.Horizontal).Percents())
}

func TestSplitDialogFocusLostWithoutEdit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.New(0, 0)
	sd := NewSplitDialog(s, 20, nil)
	v := sd.frames[partition.Vertical]
	v.count.SetSelected("4")

	rowEntry(v, 2).FocusLost()
	require.True(t, v.even.Checked, "an untouched field leaves even mode on")
	require.Equal(t, []int{25, 25, 25, 25}, s.Model.Axis(partition.Vertical).Percents())
}
