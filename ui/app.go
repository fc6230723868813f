package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"gridsplit/internal/config"
	"gridsplit/internal/model"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, conf config.Config) fyne.Window {
	win := app.NewWindow("Grid Split")
	win.Resize(NewWindowSize())

	prefs := app.Preferences()
	outputView := NewOutputView()
	historyView := NewHistoryView()
	preview := NewPreviewView(conf.Page.Width, conf.Page.Height)
	savedFiles := NewSavedFilesList(conf.Export.Dir)
	controls := NewControls(win, prefs, conf, outputView, historyView, preview, savedFiles)

	historyView.OnSelected = func(l model.Layout) {
		outputView.ShowLayout(&l)
		preview.Show(l.VerticalCrops, l.HorizontalCrops)
	}
	savedFiles.OnLayout = controls.Apply
	savedFiles.OnError = func(err error) {
		dialog.ShowError(err, win)
	}

	leftPanel := container.NewBorder(nil, controls.Container(), nil, nil, preview.Container())
	rightPanel := savedFiles.Container()

	topRow := container.NewHSplit(leftPanel, rightPanel)
	topRow.SetOffset(TopSplitRatio)

	outputTab := container.NewTabItem("Layout", outputView.Container())
	historyTab := container.NewTabItem("History", historyView.Container())
	tabs := container.NewAppTabs(outputTab, historyTab)

	content := container.NewVSplit(topRow, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	return win
}
