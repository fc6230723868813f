package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 900
	WindowHeight = 650
)

// Split ratios
const (
	MainSplitRatio = 0.45 // 45% top (preview and controls), 55% bottom (tabs)
	TopSplitRatio  = 0.6
)

// OutputView dimensions
const (
	OutputViewMinWidth  = 200
	OutputViewMinHeight = 100
)

// Preview box; the page is fitted inside it keeping its aspect ratio.
const (
	PreviewMaxWidth  = 220
	PreviewMaxHeight = 260
)

// Split dialog
const (
	DialogWidth  = 560
	DialogHeight = 420
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewOutputViewMinSize returns the minimum size for the output view
func NewOutputViewMinSize() fyne.Size {
	return fyne.NewSize(OutputViewMinWidth, OutputViewMinHeight)
}
