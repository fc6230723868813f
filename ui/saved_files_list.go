package ui

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gridsplit/internal/applog"
	"gridsplit/internal/export"
	"gridsplit/internal/model"
)

// layoutExts are the file types the export step writes.
var layoutExts = map[string]bool{
	".yaml": true,
	".csv":  true,
	".txt":  true,
	".svg":  true,
	".png":  true,
}

// SavedFilesList displays the layout files found in the export directory.
// Tapping a YAML layout loads it back; other files open in the system viewer.
type SavedFilesList struct {
	mu        sync.Mutex
	dir       string
	files     []FileInfo
	list      *widget.List
	container *fyne.Container
	log       *slog.Logger

	// OnLayout receives layouts loaded from a tapped YAML file.
	OnLayout func(*model.Layout)
	// OnError receives load failures.
	OnError func(error)
}

// FileInfo holds metadata about a saved file
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// NewSavedFilesList creates a list scanning dir.
func NewSavedFilesList(dir string) *SavedFilesList {
	sfl := &SavedFilesList{
		dir:   dir,
		files: []FileInfo{},
		log:   applog.WithComponent("saved-files"),
	}

	sfl.list = widget.NewList(
		func() int {
			sfl.mu.Lock()
			defer sfl.mu.Unlock()
			return len(sfl.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			sfl.mu.Lock()
			defer sfl.mu.Unlock()
			if id >= len(sfl.files) {
				return
			}
			label := obj.(*widget.Label)
			label.SetText(formatFileItem(sfl.files[id], time.Now()))
		},
	)

	sfl.list.OnSelected = func(id widget.ListItemID) {
		sfl.mu.Lock()
		if id >= len(sfl.files) {
			sfl.mu.Unlock()
			return
		}
		path := sfl.files[id].Path
		sfl.mu.Unlock()

		sfl.open(path)

		// Deselect immediately to allow re-selection
		sfl.list.UnselectAll()
	}

	header := widget.NewLabel("Saved Layouts")
	header.TextStyle = fyne.TextStyle{Bold: true}

	sfl.container = container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		sfl.list,
	)

	sfl.Refresh()

	return sfl
}

// Container returns the container widget
func (sfl *SavedFilesList) Container() *fyne.Container {
	return sfl.container
}

// SetDir updates the directory to scan and refreshes the list.
func (sfl *SavedFilesList) SetDir(dir string) {
	sfl.mu.Lock()
	sfl.dir = dir
	sfl.mu.Unlock()
	sfl.Refresh()
}

// Files returns a copy of the files found by the last scan.
func (sfl *SavedFilesList) Files() []FileInfo {
	sfl.mu.Lock()
	defer sfl.mu.Unlock()
	out := make([]FileInfo, len(sfl.files))
	copy(out, sfl.files)
	return out
}

// Refresh rescans the directory and updates the file list
func (sfl *SavedFilesList) Refresh() {
	sfl.mu.Lock()
	dir := sfl.dir
	sfl.mu.Unlock()

	files, err := scanFiles(dir)
	if err != nil && !os.IsNotExist(err) {
		sfl.log.Error("scan saved layouts", slog.String("dir", dir), slog.Any("err", err))
		return
	}
	if files == nil {
		files = []FileInfo{}
	}

	sfl.mu.Lock()
	sfl.files = files
	sfl.mu.Unlock()

	sfl.list.Refresh()
}

func (sfl *SavedFilesList) open(path string) {
	if strings.ToLower(filepath.Ext(path)) != ".yaml" || sfl.OnLayout == nil {
		go openFile(sfl.log, path)
		return
	}

	l, err := export.ReadYAML(path)
	if err != nil {
		if sfl.OnError != nil {
			sfl.OnError(err)
		}
		return
	}
	sfl.OnLayout(l)
}

// scanFiles discovers layout files under dir (recursive), newest first.
func scanFiles(dir string) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if !layoutExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Name:     path,
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}

// formatFileItem formats a file entry for display
func formatFileItem(fi FileInfo, now time.Time) string {
	var sizeStr string
	if fi.Size < 1024 {
		sizeStr = fmt.Sprintf("%d B", fi.Size)
	} else if fi.Size < 1024*1024 {
		sizeStr = fmt.Sprintf("%.1f KB", float64(fi.Size)/1024)
	} else {
		sizeStr = fmt.Sprintf("%.1f MB", float64(fi.Size)/(1024*1024))
	}

	// Time of day for today's files, date otherwise
	var timeStr string
	if fi.Modified.Year() == now.Year() && fi.Modified.YearDay() == now.YearDay() {
		timeStr = fi.Modified.Format("15:04:05")
	} else {
		timeStr = fi.Modified.Format("2006-01-02")
	}

	return fmt.Sprintf("%s  (%s, %s)", fi.Name, sizeStr, timeStr)
}

// openFile opens a file with the system default application
func openFile(log *slog.Logger, path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		log.Warn("unsupported platform for opening files", slog.String("os", runtime.GOOS))
		return
	}

	if err := cmd.Start(); err != nil {
		log.Error("open file", slog.String("path", path), slog.Any("err", err))
	}
}
