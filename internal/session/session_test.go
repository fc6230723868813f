package session

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gridsplit/internal/applog"
	"gridsplit/internal/partition"
)

func TestConfirm(t *testing.T) {
	s := New(595, 842)
	s.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }

	s.SetSplitCount(partition.Vertical, 4)
	s.SetSplitCount(partition.Horizontal, 2)

	l := s.Confirm(true)
	require.NotNil(t, l)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, l.VerticalCrops)
	require.Equal(t, []float64{0, 0.5, 1}, l.HorizontalCrops)
	require.Equal(t, s.ID, l.Session)
	require.True(t, strings.HasPrefix(l.ID, "20261017-093000-"), l.ID)
	require.Equal(t, 8, l.TileCount())
	require.Equal(t, 595.0, l.PageWidth)
}

func TestConfirmCancel(t *testing.T) {
	s := New(0, 0)
	s.SetSplitCount(partition.Vertical, 3)
	require.Nil(t, s.Confirm(false))
}

func TestSessionIDsDiffer(t *testing.T) {
	if New(0, 0).ID == New(0, 0).ID {
		t.Error("sessions should get distinct IDs")
	}
}

func TestStateAndRestore(t *testing.T) {
	s := New(0, 0)
	s.SetSplitCount(partition.Vertical, 3)
	s.EditEntry(partition.Vertical, 0, 50)
	s.SetSplitCount(partition.Horizontal, 5)

	v := s.State(partition.Vertical)
	h := s.State(partition.Horizontal)
	require.Equal(t, AxisState{Count: 3, Even: false, Shares: []int{50, 33, 17}}, v)
	require.Equal(t, AxisState{Count: 5, Even: true}, h)

	restored := New(0, 0)
	require.NoError(t, restored.Restore(partition.Vertical, v))
	require.NoError(t, restored.Restore(partition.Horizontal, h))
	require.Equal(t, v, restored.State(partition.Vertical))
	require.Equal(t, h, restored.State(partition.Horizontal))
}

func TestRestoreUnevenWithoutShares(t *testing.T) {
	s := New(0, 0)
	require.NoError(t, s.Restore(partition.Horizontal, AxisState{Count: 4}))

	a := s.Model.Axis(partition.Horizontal)
	require.False(t, a.Even())
	require.Equal(t, []int{25, 25, 25, 25}, a.Percents())
}

func TestRestoreRejectsBadShares(t *testing.T) {
	s := New(0, 0)
	err := s.Restore(partition.Vertical, AxisState{Count: 2, Shares: []int{70, 20}})
	require.Error(t, err)
	require.True(t, errors.Is(err, partition.ErrInvalidShares))

	a := s.Model.Axis(partition.Vertical)
	require.True(t, a.Even(), "axis falls back to the even split")
	require.Equal(t, []int{50, 50}, a.Percents())
}

func TestRestoreClampsCountToLimit(t *testing.T) {
	s := New(0, 0)
	s.MaxSplits = 6

	require.NoError(t, s.Restore(partition.Vertical, AxisState{Count: 15, Even: true}))
	require.Equal(t, 6, s.Model.Axis(partition.Vertical).SplitCount())

	require.NoError(t, s.Restore(partition.Horizontal, AxisState{Count: 0, Even: true}))
	require.Equal(t, 1, s.Model.Axis(partition.Horizontal).SplitCount())
}

func TestSetSplitCountHonoursLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		count int
		want  int
	}{
		{"within limit", 8, 5, 5},
		{"above limit", 8, 12, 8},
		{"unset limit", 0, 25, partition.MaxSplits},
		{"limit above max", 40, 25, partition.MaxSplits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(0, 0)
			s.MaxSplits = tt.limit
			s.SetSplitCount(partition.Vertical, tt.count)
			if got := s.Model.Axis(partition.Vertical).SplitCount(); got != tt.want {
				t.Errorf("SplitCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEventsAreLogged(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	applog.Init(applog.Options{Level: "debug", Writer: &buf})

	s := New(0, 0)
	s.SetSplitCount(partition.Vertical, 2)
	s.ToggleEvenMode(partition.Vertical, false)
	s.EditEntry(partition.Vertical, 1, 30)

	out := buf.String()
	for _, want := range []string{"split count changed", "even mode toggled", "entry edited", "session=" + s.ID} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
