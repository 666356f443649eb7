package models

// CheckIn is a single day's record for a habit. A record with Completed=false,
// Value=0 and an empty Note is never stored: that state is represented by key
// absence (see store normalization).
type CheckIn struct {
	Completed bool   `json:"completed"`
	Value     int    `json:"value,omitempty"`
	Note      string `json:"note,omitempty"`
	Timestamp int64  `json:"timestamp"` // unix millis of the last mutation
}

// Empty reports whether the record carries no information worth storing.
func (c CheckIn) Empty() bool {
	return !c.Completed && c.Note == ""
}

// CheckInsMap maps habit ID -> day (YYYY-MM-DD) -> CheckIn.
type CheckInsMap map[string]map[string]CheckIn

// Clone returns a deep copy of the map.
func (m CheckInsMap) Clone() CheckInsMap {
	if m == nil {
		return nil
	}
	out := make(CheckInsMap, len(m))
	for habitID, days := range m {
		dc := make(map[string]CheckIn, len(days))
		for day, c := range days {
			dc[day] = c
		}
		out[habitID] = dc
	}
	return out
}

// State is the full persisted unit. Habit slice order is display order;
// ordering within CheckIns is not significant.
type State struct {
	Habits   []Habit     `json:"habits"`
	CheckIns CheckInsMap `json:"checkIns"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{CheckIns: s.CheckIns.Clone()}
	if s.Habits != nil {
		out.Habits = make([]Habit, len(s.Habits))
		copy(out.Habits, s.Habits)
	}
	return out
}
