package partition

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkInvariant(t *testing.T, a *Axis) {
	t.Helper()
	if got := a.Sum(); got != 100 {
		t.Fatalf("Sum() = %d, want 100 (entries %v)", got, a.Entries())
	}
	for i, e := range a.Entries() {
		if e.Percent < 0 {
			t.Fatalf("entry %d is negative: %v", i, a.Entries())
		}
	}
}

func TestNewAxis(t *testing.T) {
	a := NewAxis()
	if a.SplitCount() != 1 {
		t.Errorf("SplitCount() = %d, want 1", a.SplitCount())
	}
	if !a.Even() {
		t.Error("new axis should be in even mode")
	}
	require.Equal(t, []Entry{{Index: 1, Percent: 100}}, a.Entries())
}

func TestSetSplitCount_EvenAllCounts(t *testing.T) {
	for count := 1; count <= MaxSplits; count++ {
		a := NewAxis()
		a.SetSplitCount(count)

		if a.Len() != count {
			t.Errorf("count %d: Len() = %d", count, a.Len())
		}
		checkInvariant(t, a)

		base := 100 / count
		entries := a.Entries()
		for i, e := range entries[:count-1] {
			if e.Percent != base {
				t.Errorf("count %d: entry %d = %d, want %d", count, i, e.Percent, base)
			}
			if e.Index != i+1 {
				t.Errorf("count %d: entry %d index = %d, want %d", count, i, e.Index, i+1)
			}
		}
		if last := entries[count-1].Percent; last != 100-base*(count-1) {
			t.Errorf("count %d: last entry = %d, want %d", count, last, 100-base*(count-1))
		}
	}
}

func TestSetSplitCount_EvenFour(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(4)

	require.Equal(t, []Entry{{1, 25}, {2, 25}, {3, 25}, {4, 25}}, a.Entries())
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, a.Crops())
}

func TestSetSplitCount_UnevenGrow(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(3)
	a.EditEntry(1, 50)
	a.SetSplitCount(5)

	require.Equal(t, []Entry{{1, 33}, {2, 50}, {3, 17}, {4, 0}, {5, 0}}, a.Entries())
	checkInvariant(t, a)
}

func TestSetSplitCount_UnevenShrink(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(5)
	a.ToggleEvenMode(false)
	a.SetSplitCount(3)

	require.Equal(t, []Entry{{1, 20}, {2, 20}, {3, 60}}, a.Entries())
	if a.SplitCount() != 3 {
		t.Errorf("SplitCount() = %d, want 3", a.SplitCount())
	}
}

func TestSetSplitCount_ClampsBelowOne(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(0)
	if a.SplitCount() != 1 || a.Len() != 1 {
		t.Errorf("SetSplitCount(0) left count=%d len=%d, want 1/1", a.SplitCount(), a.Len())
	}
	checkInvariant(t, a)
}

func TestSetSplitCount_IndicesContinueFromMax(t *testing.T) {
	a := NewAxis()
	if err := a.Load([]int{40, 60}); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	a.SetSplitCount(4)

	idx := make([]int, 0, a.Len())
	for _, e := range a.Entries() {
		idx = append(idx, e.Index)
	}
	require.Equal(t, []int{1, 2, 3, 4}, idx)
}

func TestToggleEvenMode(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(4)
	a.EditEntry(0, 70)
	if a.Even() {
		t.Fatal("edit should leave even mode")
	}

	a.ToggleEvenMode(false)
	require.Equal(t, []int{70, 25, 5, 0}, a.Percents(), "disabling keeps manual values")

	a.ToggleEvenMode(true)
	require.Equal(t, []int{25, 25, 25, 25}, a.Percents(), "re-enabling rebuilds evenly")
	if !a.Even() {
		t.Error("Even() = false after enabling")
	}
}

func TestEditEntry(t *testing.T) {
	tests := []struct {
		name     string
		start    []int
		position int
		value    int
		want     []int
	}{
		{"grow takes from last", []int{33, 33, 34}, 1, 50, []int{33, 50, 17}},
		{"shrink gives to last", []int{33, 50, 17}, 1, 40, []int{33, 40, 27}},
		{"grow walks backwards", []int{20, 20, 20, 20, 20}, 0, 70, []int{70, 20, 10, 0, 0}},
		{"edit last reaches earlier", []int{50, 50}, 1, 80, []int{20, 80}},
		{"shrink skips zero donors", []int{60, 40, 0}, 0, 50, []int{50, 50, 0}},
		{"all others zero keeps sum", []int{100, 0, 0}, 0, 40, []int{100, 0, 0}},
		{"partially absorbed", []int{90, 10, 0}, 0, 70, []int{80, 20, 0}},
		{"clamps above 100", []int{50, 50}, 0, 150, []int{100, 0}},
		{"clamps below 0", []int{50, 50}, 0, -5, []int{0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis()
			if err := a.Load(tt.start); err != nil {
				t.Fatalf("Load(%v) error: %v", tt.start, err)
			}
			a.EditEntry(tt.position, tt.value)
			require.Equal(t, tt.want, a.Percents())
			checkInvariant(t, a)
		})
	}
}

func TestEditEntry_FromEvenScenario(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(3)
	a.EditEntry(1, 50)

	require.Equal(t, []int{33, 50, 17}, a.Percents())
	if a.Even() {
		t.Error("Even() = true after manual edit")
	}
}

func TestEditEntry_NoOp(t *testing.T) {
	a := NewAxis()
	a.SetSplitCount(2)

	calls := 0
	a.SetOnChange(func() { calls++ })
	a.EditEntry(0, 50)
	a.EditEntry(5, 10)
	a.EditEntry(-1, 10)

	if !a.Even() {
		t.Error("unchanged value should not leave even mode")
	}
	if calls != 0 {
		t.Errorf("onChange called %d times, want 0", calls)
	}
}

func TestEditEntry_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		a := NewAxis()
		a.SetSplitCount(1 + rng.Intn(MaxSplits))
		for step := 0; step < 30; step++ {
			switch rng.Intn(6) {
			case 0:
				a.SetSplitCount(1 + rng.Intn(MaxSplits))
			case 1:
				a.ToggleEvenMode(rng.Intn(2) == 0)
			default:
				a.EditEntry(rng.Intn(a.Len()), rng.Intn(101))
			}
			checkInvariant(t, a)
			if a.Len() != a.SplitCount() {
				t.Fatalf("Len() = %d, SplitCount() = %d", a.Len(), a.SplitCount())
			}
			checkCrops(t, a.Crops())
		}
	}
}

func checkCrops(t *testing.T, crops []float64) {
	t.Helper()
	if len(crops) < 2 {
		t.Fatalf("crops too short: %v", crops)
	}
	if crops[0] != 0 || crops[len(crops)-1] != 1 {
		t.Fatalf("crops must span [0,1]: %v", crops)
	}
	for i := 1; i < len(crops); i++ {
		if crops[i] <= crops[i-1] {
			t.Fatalf("crops not strictly increasing at %d: %v", i, crops)
		}
	}
}

func TestCrops_DropsEmptyTiles(t *testing.T) {
	a := NewAxis()
	if err := a.Load([]int{70, 0, 20, 10, 0}); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	require.Equal(t, []float64{0, 0.7, 0.9, 1}, a.Crops())
}

func TestCrops_Unsplit(t *testing.T) {
	require.Equal(t, []float64{0, 1}, NewAxis().Crops())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		shares  []int
		wantErr bool
	}{
		{"valid", []int{30, 30, 40}, false},
		{"single", []int{100}, false},
		{"zeros allowed", []int{0, 100, 0}, false},
		{"empty", nil, true},
		{"short sum", []int{30, 30}, true},
		{"over sum", []int{60, 60}, true},
		{"negative", []int{110, -10}, true},
		{"too many", make([]int, MaxSplits+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis()
			a.SetSplitCount(2)
			before := a.Entries()

			err := a.Load(tt.shares)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShares) {
					t.Errorf("error %v does not wrap ErrInvalidShares", err)
				}
				require.Equal(t, before, a.Entries(), "failed load must not mutate")
				return
			}
			require.Equal(t, tt.shares, a.Percents())
			if a.Even() {
				t.Error("Load should leave even mode")
			}
			if a.SplitCount() != len(tt.shares) {
				t.Errorf("SplitCount() = %d, want %d", a.SplitCount(), len(tt.shares))
			}
		})
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	a := NewAxis()
	entries := a.Entries()
	entries[0].Percent = 7
	if a.Sum() != 100 {
		t.Error("mutating Entries() result changed the axis")
	}
}
