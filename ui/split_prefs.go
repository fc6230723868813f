package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"gridsplit/internal/applog"
	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

func prefKey(d partition.Direction, field string) string {
	return "split." + d.String() + "." + field
}

// LoadSplitPreferences restores both axes of s from persistent preferences.
// Axes never saved start evenly split at defaultCounts (columns, rows).
func LoadSplitPreferences(prefs fyne.Preferences, s *session.Session, defaultCounts [2]int) {
	for _, d := range partition.Directions {
		st := session.AxisState{
			Count: prefs.IntWithFallback(prefKey(d, "count"), defaultCounts[d]),
			Even:  prefs.BoolWithFallback(prefKey(d, "even"), true),
		}
		if !st.Even {
			st.Shares = prefs.IntList(prefKey(d, "shares"))
		}
		// On error the axis stays evenly split at st.Count
		if err := s.Restore(d, st); err != nil {
			applog.WithComponent("ui").Warn("discarding saved shares", slog.Any("err", err))
		}
	}
}

// SaveSplitPreferences persists both axes of s.
func SaveSplitPreferences(prefs fyne.Preferences, s *session.Session) {
	for _, d := range partition.Directions {
		st := s.State(d)
		prefs.SetInt(prefKey(d, "count"), st.Count)
		prefs.SetBool(prefKey(d, "even"), st.Even)
		if st.Even {
			prefs.RemoveValue(prefKey(d, "shares"))
		} else {
			prefs.SetIntList(prefKey(d, "shares"), st.Shares)
		}
	}
}
