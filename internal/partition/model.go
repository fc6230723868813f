package partition

import "fmt"

// Direction selects one of the two splitting axes.
type Direction int

const (
	// Vertical splits partition the page into columns.
	Vertical Direction = iota
	// Horizontal splits partition the page into rows.
	Horizontal
)

// Directions lists both axes in display order.
var Directions = [...]Direction{Vertical, Horizontal}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "vertical"/"cols"/"columns" and "horizontal"/"rows".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical", "cols", "columns":
		return Vertical, nil
	case "horizontal", "rows":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Model owns one independent axis per direction for a single dialog session.
type Model struct {
	axes [2]*Axis
}

// NewModel returns a model with both axes unsplit and in even mode.
func NewModel() *Model {
	return &Model{axes: [2]*Axis{NewAxis(), NewAxis()}}
}

// Axis returns the axis for d.
func (m *Model) Axis(d Direction) *Axis {
	return m.axes[d]
}

// OnChange registers fn to be called with the direction of every axis mutation.
func (m *Model) OnChange(fn func(Direction)) {
	for _, d := range Directions {
		if fn == nil {
			m.axes[d].SetOnChange(nil)
			continue
		}
		m.axes[d].SetOnChange(func() { fn(d) })
	}
}

// SetSplitCount handles a split-count change on axis d.
func (m *Model) SetSplitCount(d Direction, count int) {
	m.axes[d].SetSplitCount(count)
}

// ToggleEvenMode handles the even-mode check on axis d.
func (m *Model) ToggleEvenMode(d Direction, enabled bool) {
	m.axes[d].ToggleEvenMode(enabled)
}

// EditEntry handles a percentage edit of the entry at position on axis d.
func (m *Model) EditEntry(d Direction, position, value int) {
	m.axes[d].EditEntry(position, value)
}

// Crops returns the crop boundaries of axis d.
func (m *Model) Crops(d Direction) []float64 {
	return m.axes[d].Crops()
}

// Confirm returns the vertical and horizontal crop boundaries when ok is
// true, and nil for both when the dialog was cancelled.
func (m *Model) Confirm(ok bool) (vertical, horizontal []float64) {
	if !ok {
		return nil, nil
	}
	return m.Crops(Vertical), m.Crops(Horizontal)
}
