// Package session ties one grid-split dialog session together: the partition
// model the shell mutates, a session ID for log correlation, and the page the
// resulting layout is prepared for.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gridsplit/internal/applog"
	"gridsplit/internal/export"
	"gridsplit/internal/model"
	"gridsplit/internal/partition"
)

// AxisState is the restorable state of one axis.
type AxisState struct {
	Count  int
	Even   bool
	Shares []int // used only when Even is false
}

// Session is the state of one dialog, from open to confirm or cancel.
type Session struct {
	ID         string
	Model      *partition.Model
	PageWidth  float64
	PageHeight float64
	// MaxSplits bounds split counts set through the session; values outside
	// [1, partition.MaxSplits] mean partition.MaxSplits.
	MaxSplits int

	log *slog.Logger
	now func() time.Time
}

// New starts a session for a page of the given size in points (0 = unknown).
func New(pageWidth, pageHeight float64) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Model:      partition.NewModel(),
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		MaxSplits:  partition.MaxSplits,
		now:        time.Now,
	}
	s.log = applog.WithComponent("session").With(slog.String("session", s.ID))
	s.log.Debug("session started")
	return s
}

// Limit returns the effective upper bound for split counts.
func (s *Session) Limit() int {
	if s.MaxSplits < 1 || s.MaxSplits > partition.MaxSplits {
		return partition.MaxSplits
	}
	return s.MaxSplits
}

func (s *Session) clampCount(count int) int {
	return min(max(count, 1), s.Limit())
}

// SetSplitCount forwards a split-count change, bounded by Limit.
func (s *Session) SetSplitCount(d partition.Direction, count int) {
	count = s.clampCount(count)
	s.Model.SetSplitCount(d, count)
	s.log.Debug("split count changed",
		slog.String("axis", d.String()), slog.Int("count", count), slog.Any("shares", s.Model.Axis(d).Percents()))
}

// ToggleEvenMode forwards an even-mode toggle.
func (s *Session) ToggleEvenMode(d partition.Direction, enabled bool) {
	s.Model.ToggleEvenMode(d, enabled)
	s.log.Debug("even mode toggled",
		slog.String("axis", d.String()), slog.Bool("even", enabled), slog.Any("shares", s.Model.Axis(d).Percents()))
}

// EditEntry forwards a percentage edit.
func (s *Session) EditEntry(d partition.Direction, position, value int) {
	s.Model.EditEntry(d, position, value)
	s.log.Debug("entry edited",
		slog.String("axis", d.String()), slog.Int("position", position), slog.Int("value", value),
		slog.Any("shares", s.Model.Axis(d).Percents()))
}

// State returns the restorable state of axis d.
func (s *Session) State(d partition.Direction) AxisState {
	a := s.Model.Axis(d)
	st := AxisState{Count: a.SplitCount(), Even: a.Even()}
	if !a.Even() {
		st.Shares = a.Percents()
	}
	return st
}

// Restore replays a saved axis state. The count is bounded by Limit. Shares
// that do not form a valid partition are rejected and the axis keeps the
// even split of the count.
func (s *Session) Restore(d partition.Direction, st AxisState) error {
	a := s.Model.Axis(d)
	a.ToggleEvenMode(true)
	a.SetSplitCount(s.clampCount(st.Count))
	if st.Even {
		return nil
	}
	if len(st.Shares) == 0 {
		a.ToggleEvenMode(false)
		return nil
	}
	if err := a.Load(st.Shares); err != nil {
		return fmt.Errorf("restore %s axis: %w", d, err)
	}
	return nil
}

// Confirm ends the session. On ok it returns the layout built from both
// axes' crop boundaries; on cancel it returns nil.
func (s *Session) Confirm(ok bool) *model.Layout {
	v, h := s.Model.Confirm(ok)
	if !ok {
		s.log.Info("grid split cancelled")
		return nil
	}

	created := s.now()
	l := &model.Layout{
		ID:              export.NextLayoutID(created),
		Created:         created,
		Session:         s.ID,
		VerticalCrops:   v,
		HorizontalCrops: h,
		PageWidth:       s.PageWidth,
		PageHeight:      s.PageHeight,
	}
	s.log.Info("grid split confirmed",
		slog.String("layout", l.ID), slog.Int("columns", l.Columns()), slog.Int("rows", l.Rows()))
	return l
}
