package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"gridsplit/internal/applog"
	"gridsplit/internal/config"
	"gridsplit/internal/export"
	"gridsplit/internal/model"
	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

// Controls manages the Grid split/Save/Export buttons.
type Controls struct {
	splitBtn  *widget.Button
	saveBtn   *widget.Button
	exportBtn *widget.Button

	win         fyne.Window
	prefs       fyne.Preferences
	conf        config.Config
	outputView  *OutputView
	historyView *HistoryView
	preview     *PreviewView
	savedFiles  *SavedFilesList
	log         *slog.Logger

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(win fyne.Window, prefs fyne.Preferences, conf config.Config,
	ov *OutputView, hv *HistoryView, pv *PreviewView, sfl *SavedFilesList) *Controls {
	c := &Controls{
		win:         win,
		prefs:       prefs,
		conf:        conf,
		outputView:  ov,
		historyView: hv,
		preview:     pv,
		savedFiles:  sfl,
		log:         applog.WithComponent("controls"),
	}

	c.splitBtn = widget.NewButton("Grid split…", c.onSplit)
	c.saveBtn = widget.NewButton("Save Layout", c.onSave)
	c.saveBtn.Disable()
	c.exportBtn = widget.NewButton("Export CSV", c.onExport)
	c.exportBtn.Disable()

	c.container = container.NewHBox(c.splitBtn, c.saveBtn, c.exportBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// newSession starts a dialog session restored from preferences.
func (c *Controls) newSession() *session.Session {
	s := session.New(c.conf.Page.Width, c.conf.Page.Height)
	s.MaxSplits = c.conf.Split.Max
	LoadSplitPreferences(c.prefs, s, [2]int{c.conf.Split.Columns, c.conf.Split.Rows})
	return s
}

func (c *Controls) onSplit() {
	s := c.newSession()
	c.showCrops(s)

	ShowSplitDialog(c.win, s, c.conf.Split.Max,
		func() { c.showCrops(s) },
		c.onDialogDone(s),
	)
}

func (c *Controls) showCrops(s *session.Session) {
	c.preview.Show(s.Model.Crops(partition.Vertical), s.Model.Crops(partition.Horizontal))
}

func (c *Controls) onDialogDone(s *session.Session) func(*model.Layout) {
	return func(l *model.Layout) {
		if l == nil {
			c.outputView.AppendLine("Grid split cancelled.")
			if last := c.historyView.Last(); last != nil {
				c.preview.Show(last.VerticalCrops, last.HorizontalCrops)
			} else {
				c.preview.Show([]float64{0, 1}, []float64{0, 1})
			}
			return
		}

		SaveSplitPreferences(c.prefs, s)
		c.Apply(l)
	}
}

// Apply shows a layout in every view and makes it the current one.
func (c *Controls) Apply(l *model.Layout) {
	c.historyView.AddLayout(*l)
	c.outputView.ShowLayout(l)
	c.preview.Show(l.VerticalCrops, l.HorizontalCrops)
	c.saveBtn.Enable()
	c.exportBtn.Enable()
}

func (c *Controls) onSave() {
	l := c.historyView.Last()
	if l == nil {
		c.outputView.AppendLine("No layout to save.")
		return
	}

	paths, err := SaveLayoutFiles(c.conf.Export.Dir, l)
	for _, p := range paths {
		c.outputView.AppendLine(fmt.Sprintf("Layout saved to: %s", p))
	}
	if err != nil {
		c.log.Error("save layout", slog.String("layout", l.ID), slog.Any("err", err))
		dialog.ShowError(err, c.win)
	}
	c.savedFiles.Refresh()
}

// SaveLayoutFiles writes l as YAML plus SVG and PNG previews into dir and
// returns the paths written.
func SaveLayoutFiles(dir string, l *model.Layout) ([]string, error) {
	var written []string

	yamlPath := export.BuildPath(dir, l.ID, ".yaml")
	if err := export.EnsureDir(yamlPath); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	if err := export.WriteYAML(yamlPath, l); err != nil {
		return nil, err
	}
	written = append(written, yamlPath)

	for _, ext := range []string{".svg", ".png"} {
		p := export.BuildPath(dir, l.ID, ext)
		if err := export.SavePreview(export.PreviewOptions{Path: p, Layout: l}); err != nil {
			return written, fmt.Errorf("save preview: %w", err)
		}
		written = append(written, p)
	}
	return written, nil
}

func (c *Controls) onExport() {
	layouts := c.historyView.Layouts()
	if len(layouts) == 0 {
		c.outputView.AppendLine("No layouts to export.")
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteCSV(path, layouts); exportErr != nil {
			c.outputView.AppendLine(fmt.Sprintf("CSV export error: %v", exportErr))
			return
		}
		c.outputView.AppendLine(fmt.Sprintf("Exported %d layouts to %s", len(layouts), path))

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if exportErr := export.WriteTXT(txtPath, layouts); exportErr != nil {
			c.outputView.AppendLine(fmt.Sprintf("TXT export error: %v", exportErr))
		} else {
			c.outputView.AppendLine(fmt.Sprintf("Exported %d layouts to %s", len(layouts), txtPath))
		}
		c.savedFiles.Refresh()
	}, c.win)
}
