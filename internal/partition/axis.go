package partition

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// MaxSplits is the largest split count a shell offers per axis.
const MaxSplits = 20

// ErrInvalidShares is returned by Load when the percentages cannot form a partition.
var ErrInvalidShares = errors.New("invalid shares")

// Entry is one row of a partition table.
type Entry struct {
	Index   int // 1-based display label
	Percent int // share of the page in [0,100]
}

// Axis holds the partition of one splitting direction.
type Axis struct {
	splitCount int
	even       bool
	entries    []Entry
	onChange   func()
}

// NewAxis returns an axis with a single full-size entry in even mode.
func NewAxis() *Axis {
	return &Axis{
		splitCount: 1,
		even:       true,
		entries:    []Entry{{Index: 1, Percent: 100}},
	}
}

// SplitCount returns the desired number of entries.
func (a *Axis) SplitCount() int { return a.splitCount }

// Even reports whether the axis is regenerated as an even partition.
func (a *Axis) Even() bool { return a.even }

// Len returns the number of stored entries.
func (a *Axis) Len() int { return len(a.entries) }

// Entries returns a copy of the entries in display order.
func (a *Axis) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Percents returns the percentage column in display order.
func (a *Axis) Percents() []int {
	out := make([]int, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Percent
	}
	return out
}

// Sum returns the total of all percentages.
func (a *Axis) Sum() int {
	sum := 0
	for _, e := range a.entries {
		sum += e.Percent
	}
	return sum
}

// SetOnChange registers fn to be called after every mutation of the entries.
func (a *Axis) SetOnChange(fn func()) {
	a.onChange = fn
}

func (a *Axis) changed() {
	if a.onChange != nil {
		a.onChange()
	}
}

// SetSplitCount changes the desired number of entries. In even mode the
// entries are rebuilt; otherwise zero entries are appended or trailing
// entries are folded into the new last entry.
func (a *Axis) SetSplitCount(count int) {
	if count < 1 {
		count = 1
	}
	a.splitCount = count

	if a.even {
		a.entries = evenPartition(count)
		a.changed()
		return
	}

	delta := count - len(a.entries)
	switch {
	case delta > 0:
		next := a.maxIndex() + 1
		for i := 0; i < delta; i++ {
			a.entries = append(a.entries, Entry{Index: next + i, Percent: 0})
		}
	case delta < 0:
		keep := len(a.entries) + delta
		s := 0
		for _, e := range a.entries[keep:] {
			s += e.Percent
		}
		a.entries = a.entries[:keep]
		a.entries[keep-1].Percent += s
	default:
		return
	}
	a.changed()
}

// ToggleEvenMode switches even mode and reapplies the current split count.
func (a *Axis) ToggleEvenMode(enabled bool) {
	a.even = enabled
	a.SetSplitCount(a.splitCount)
}

// EditEntry sets the percentage at position and leaves even mode. The
// difference is absorbed by the other entries from the last one backwards,
// each giving or taking at most its current percentage.
func (a *Axis) EditEntry(position, value int) {
	if position < 0 || position >= len(a.entries) {
		return
	}
	value = clamp(value, 0, 100)

	delta := a.entries[position].Percent - value
	if delta == 0 {
		return
	}
	a.entries[position].Percent = value
	a.even = false

	for i := len(a.entries) - 1; i >= 0 && delta != 0; i-- {
		if i == position {
			continue
		}
		s := min(abs(delta), a.entries[i].Percent)
		if delta < 0 {
			s = -s
		}
		a.entries[i].Percent += s
		delta -= s
	}

	// Only reachable when every other entry is 0 and the edited one shrank:
	// keep the sum at 100 by under-applying the edit.
	a.entries[position].Percent += delta
	a.changed()
}

// Load replaces the entries with the given percentages and leaves even mode.
func (a *Axis) Load(percents []int) error {
	if len(percents) == 0 {
		return fmt.Errorf("load shares: %w: empty", ErrInvalidShares)
	}
	if len(percents) > MaxSplits {
		return fmt.Errorf("load shares: %w: %d entries, max %d", ErrInvalidShares, len(percents), MaxSplits)
	}
	sum := 0
	for i, p := range percents {
		if p < 0 || p > 100 {
			return fmt.Errorf("load shares: %w: entry %d is %d", ErrInvalidShares, i+1, p)
		}
		sum += p
	}
	if sum != 100 {
		return fmt.Errorf("load shares: %w: sum is %d, want 100", ErrInvalidShares, sum)
	}

	entries := make([]Entry, len(percents))
	for i, p := range percents {
		entries[i] = Entry{Index: i + 1, Percent: p}
	}
	a.entries = entries
	a.splitCount = len(entries)
	a.even = false
	a.changed()
	return nil
}

// Crops returns the fractional cut positions along the axis: 0, the
// cumulative shares, and 1, sorted with duplicates from empty entries removed.
func (a *Axis) Crops() []float64 {
	// Accumulate whole percentages so equal boundaries compare exactly.
	shares := make([]float64, len(a.entries)+1)
	for i, e := range a.entries {
		shares[i+1] = float64(e.Percent)
	}
	cum := floats.CumSum(make([]float64, len(shares)), shares)
	sort.Float64s(cum)

	crops := make([]float64, 0, len(cum))
	for i, c := range cum {
		if i > 0 && c == cum[i-1] {
			continue
		}
		crops = append(crops, c/100)
	}
	return crops
}

func (a *Axis) maxIndex() int {
	m := 0
	for _, e := range a.entries {
		if e.Index > m {
			m = e.Index
		}
	}
	return m
}

// evenPartition splits 100 into count shares; the last one takes the remainder.
func evenPartition(count int) []Entry {
	base := 100 / count
	entries := make([]Entry, count)
	for i := range entries {
		entries[i] = Entry{Index: i + 1, Percent: base}
	}
	entries[count-1].Percent = 100 - (count-1)*base
	return entries
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
