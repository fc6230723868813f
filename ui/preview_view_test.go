package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestFitPage(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		wantW float32
		wantH float32
	}{
		{"square fallback", 0, 0, 220, 220},
		{"landscape", 440, 220, 220, 110},
		{"tall", 100, 520, 50, 260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitPage(tt.w, tt.h)
			if got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("fitPage(%v, %v) = %v, want %vx%v", tt.w, tt.h, got, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPreviewShow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	pv := NewPreviewView(0, 0)
	if got := pv.LineCount(); got != 0 {
		t.Errorf("LineCount() = %d, want 0", got)
	}

	pv.Show([]float64{0, 0.25, 0.5, 1}, []float64{0, 0.5, 1})
	if got := pv.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
}
