package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
)

func fixedClock(day string) func() time.Time {
	t, _ := time.Parse(models.DayFormat, day)
	return func() time.Time { return t }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("habit-%d", n)
	}
}

func newTestStore() *Store {
	return New(models.State{},
		WithClock(fixedClock("2024-01-10")),
		WithIDGenerator(sequentialIDs()),
	)
}

func TestAddHabit_AssignsDefaults(t *testing.T) {
	s := newTestStore()

	h := s.AddHabit(HabitInput{Name: "Read"})

	if h.ID != "habit-1" {
		t.Errorf("Expected generated id habit-1, got %q", h.ID)
	}
	if h.Theme != "blue" {
		t.Errorf("Expected default theme blue, got %q", h.Theme)
	}
	if h.Color != "#3b82f6" {
		t.Errorf("Expected color derived from default theme, got %q", h.Color)
	}
	if h.Frequency != models.FrequencyDaily {
		t.Errorf("Expected default frequency daily, got %q", h.Frequency)
	}
	if h.Pattern != "none" {
		t.Errorf("Expected default pattern none, got %q", h.Pattern)
	}
	if h.Archived {
		t.Error("New habits must not be archived")
	}
	if h.CreatedAt.Format(models.DayFormat) != "2024-01-10" {
		t.Errorf("Expected createdAt stamped from clock, got %v", h.CreatedAt)
	}
}

func TestAddHabit_ThemeWinsOverColor(t *testing.T) {
	s := newTestStore()

	h := s.AddHabit(HabitInput{Name: "Run", Theme: "green", Color: "#ffffff"})

	if h.Color != "#22c55e" {
		t.Errorf("Expected color derived from green theme, got %q", h.Color)
	}
}

func TestAddHabit_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore()
	s.AddHabit(HabitInput{Name: "A"})
	s.AddHabit(HabitInput{Name: "B"})
	s.AddHabit(HabitInput{Name: "C"})

	habits := s.Habits()
	for i, want := range []string{"A", "B", "C"} {
		if habits[i].Name != want {
			t.Fatalf("Expected habit %d to be %q, got %q", i, want, habits[i].Name)
		}
	}
}

func TestUpdateHabit_MergesPartialFields(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run", Theme: "green"})

	name := "Morning Run"
	if !s.UpdateHabit(h.ID, HabitPatch{Name: &name}) {
		t.Fatal("Expected update to report success")
	}

	got, _ := s.Habit(h.ID)
	if got.Name != "Morning Run" {
		t.Errorf("Expected name updated, got %q", got.Name)
	}
	if got.Theme != "green" {
		t.Errorf("Expected untouched fields preserved, theme became %q", got.Theme)
	}
}

func TestUpdateHabit_ThemeRederivesColor(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})

	theme := "purple"
	s.UpdateHabit(h.ID, HabitPatch{Theme: &theme})

	got, _ := s.Habit(h.ID)
	if got.Color != "#a855f7" {
		t.Errorf("Expected color rederived from purple theme, got %q", got.Color)
	}
}

func TestUpdateHabit_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddHabit(HabitInput{Name: "Run"})

	name := "X"
	if s.UpdateHabit("missing", HabitPatch{Name: &name}) {
		t.Error("Expected update of unknown id to report failure")
	}
	if s.Habits()[0].Name != "Run" {
		t.Error("Unknown-id update must not corrupt other habits")
	}
}

func TestDeleteHabit_CascadesToCheckIns(t *testing.T) {
	s := newTestStore()
	a := s.AddHabit(HabitInput{Name: "A"})
	b := s.AddHabit(HabitInput{Name: "B"})
	s.ToggleCheckIn(a.ID, "2024-01-09")
	s.ToggleCheckIn(b.ID, "2024-01-09")

	if !s.DeleteHabit(a.ID) {
		t.Fatal("Expected delete to report success")
	}

	if _, ok := s.Habit(a.ID); ok {
		t.Error("Deleted habit still present")
	}
	if len(s.HabitCheckIns(a.ID)) != 0 {
		t.Error("Deleted habit's check-ins still present")
	}
	if !s.HabitCheckIns(b.ID)["2024-01-09"].Completed {
		t.Error("Other habits' check-ins must be untouched by delete")
	}
}

func TestReorderHabits_AppliesPermutation(t *testing.T) {
	s := newTestStore()
	a := s.AddHabit(HabitInput{Name: "A"})
	b := s.AddHabit(HabitInput{Name: "B"})
	c := s.AddHabit(HabitInput{Name: "C"})

	if err := s.ReorderHabits([]string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderHabits failed: %v", err)
	}

	habits := s.Habits()
	for i, want := range []string{"C", "A", "B"} {
		if habits[i].Name != want {
			t.Fatalf("Expected habit %d to be %q, got %q", i, want, habits[i].Name)
		}
	}
}

func TestReorderHabits_RejectsMismatchedSet(t *testing.T) {
	s := newTestStore()
	a := s.AddHabit(HabitInput{Name: "A"})
	b := s.AddHabit(HabitInput{Name: "B"})

	cases := []struct {
		name  string
		order []string
	}{
		{"missing id", []string{a.ID}},
		{"unknown id", []string{a.ID, "nope"}},
		{"duplicate id", []string{a.ID, a.ID}},
		{"extra id", []string{a.ID, b.ID, "extra"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.ReorderHabits(tc.order); err == nil {
				t.Fatal("Expected reorder to be rejected")
			}
			habits := s.Habits()
			if habits[0].ID != a.ID || habits[1].ID != b.ID {
				t.Fatal("Rejected reorder must leave the original order unchanged")
			}
		})
	}
}

func TestToggleCheckIn_OnAndOff(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})

	s.ToggleCheckIn(h.ID, "2024-01-09")
	c := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !c.Completed || c.Value != 1 {
		t.Fatalf("Expected completed=true value=1 after toggle on, got %+v", c)
	}

	// Re-toggle with no note returns the day to absent
	s.ToggleCheckIn(h.ID, "2024-01-09")
	if _, ok := s.HabitCheckIns(h.ID)["2024-01-09"]; ok {
		t.Error("Expected record absent after toggling off with no note")
	}
}

func TestToggleCheckIn_PreservesNoteWhenUnchecking(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})

	s.ToggleCheckIn(h.ID, "2024-01-09")
	s.UpdateNote(h.ID, "2024-01-09", "went to the park")
	s.ToggleCheckIn(h.ID, "2024-01-09")

	c, ok := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !ok {
		t.Fatal("Record with a note must survive un-checking")
	}
	if c.Completed || c.Value != 0 {
		t.Errorf("Expected completed=false value=0, got %+v", c)
	}
	if c.Note != "went to the park" {
		t.Errorf("Expected note preserved, got %q", c.Note)
	}
}

func TestToggleCheckIn_UnknownHabitIsNoOp(t *testing.T) {
	s := newTestStore()
	s.ToggleCheckIn("missing", "2024-01-09")
	if len(s.CheckIns()) != 0 {
		t.Error("Toggle for unknown habit must not create records")
	}
}

func TestSetCheckInValue_DerivesCompletion(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Pushups"})

	s.SetCheckInValue(h.ID, "2024-01-09", 12)
	c := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !c.Completed || c.Value != 12 {
		t.Fatalf("Expected completed=true value=12, got %+v", c)
	}

	s.SetCheckInValue(h.ID, "2024-01-09", 0)
	if _, ok := s.HabitCheckIns(h.ID)["2024-01-09"]; ok {
		t.Error("Expected record absent after setting value to 0 with no note")
	}
}

func TestSetCheckInValue_ClampsNegativeToZero(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Pushups"})
	s.UpdateNote(h.ID, "2024-01-09", "rest day")

	s.SetCheckInValue(h.ID, "2024-01-09", -5)

	c, ok := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !ok {
		t.Fatal("Record with a note must survive a clamped write")
	}
	if c.Completed || c.Value != 0 {
		t.Errorf("Expected negative value clamped to 0, got %+v", c)
	}
}

func TestUpdateNote_NoteAloneKeepsRecordAlive(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})

	s.UpdateNote(h.ID, "2024-01-09", "skipped, raining")

	c, ok := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !ok {
		t.Fatal("Expected note-only record to be stored")
	}
	if c.Completed || c.Value != 0 {
		t.Errorf("Expected completed=false value=0, got %+v", c)
	}

	// Clearing the note on an incomplete day deletes the record
	s.UpdateNote(h.ID, "2024-01-09", "")
	if _, ok := s.HabitCheckIns(h.ID)["2024-01-09"]; ok {
		t.Error("Expected record absent after clearing note on incomplete day")
	}
}

func TestUpdateNote_ClearingNoteKeepsCompletedDay(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})

	s.ToggleCheckIn(h.ID, "2024-01-09")
	s.UpdateNote(h.ID, "2024-01-09", "note")
	s.UpdateNote(h.ID, "2024-01-09", "")

	c, ok := s.HabitCheckIns(h.ID)["2024-01-09"]
	if !ok {
		t.Fatal("Completed day must survive clearing its note")
	}
	if !c.Completed || c.Value != 1 {
		t.Errorf("Expected completion preserved, got %+v", c)
	}
}

// The tombstone invariant: after any mutation sequence, a key exists iff the
// record is completed or carries a note, and completed always matches value>0.
func TestCheckInMutations_HoldInvariants(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})
	day := "2024-01-09"

	ops := []func(){
		func() { s.ToggleCheckIn(h.ID, day) },
		func() { s.SetCheckInValue(h.ID, day, 7) },
		func() { s.UpdateNote(h.ID, day, "n") },
		func() { s.ToggleCheckIn(h.ID, day) },
		func() { s.SetCheckInValue(h.ID, day, -1) },
		func() { s.UpdateNote(h.ID, day, "") },
		func() { s.SetCheckInValue(h.ID, day, 3) },
		func() { s.ToggleCheckIn(h.ID, day) },
		func() { s.ToggleCheckIn(h.ID, day) },
	}

	for i, op := range ops {
		op()
		c, exists := s.HabitCheckIns(h.ID)[day]
		if exists && c.Empty() {
			t.Fatalf("After op %d: empty record stored: %+v", i, c)
		}
		if exists && c.Completed != (c.Value > 0) {
			t.Fatalf("After op %d: completed=%v inconsistent with value=%d", i, c.Completed, c.Value)
		}
	}
}

func TestImportData_ReplacesEverything(t *testing.T) {
	s := newTestStore()
	s.AddHabit(HabitInput{Name: "Old"})

	imported := []models.Habit{{ID: "x", Name: "New", CreatedAt: time.Now()}}
	checkIns := models.CheckInsMap{"x": {"2024-01-01": {Completed: true, Value: 1}}}
	s.ImportData(imported, checkIns)

	habits := s.Habits()
	if len(habits) != 1 || habits[0].Name != "New" {
		t.Fatalf("Expected imported habits to replace existing ones, got %+v", habits)
	}
	if !s.HabitCheckIns("x")["2024-01-01"].Completed {
		t.Error("Expected imported check-ins to replace existing ones")
	}
}

func TestResetData_EmptiesBothCollections(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})
	s.ToggleCheckIn(h.ID, "2024-01-09")

	s.ResetData()

	if len(s.Habits()) != 0 || len(s.CheckIns()) != 0 {
		t.Error("Expected reset to empty both collections")
	}
}

type countingPersister struct {
	saves int
	last  models.State
}

func (p *countingPersister) Save(state models.State) error {
	p.saves++
	p.last = state
	return nil
}

func TestStore_PersistsAfterEveryMutation(t *testing.T) {
	p := &countingPersister{}
	s := New(models.State{},
		WithClock(fixedClock("2024-01-10")),
		WithIDGenerator(sequentialIDs()),
		WithPersister(p),
	)

	h := s.AddHabit(HabitInput{Name: "Run"})
	s.ToggleCheckIn(h.ID, "2024-01-09")
	s.UpdateNote(h.ID, "2024-01-09", "n")

	if p.saves != 3 {
		t.Errorf("Expected 3 saves, got %d", p.saves)
	}
	if !p.last.CheckIns[h.ID]["2024-01-09"].Completed {
		t.Error("Persisted state does not reflect the latest mutation")
	}
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := newTestStore()
	h := s.AddHabit(HabitInput{Name: "Run"})
	s.ToggleCheckIn(h.ID, "2024-01-09")

	// Mutating returned collections must not leak back into the store
	s.HabitCheckIns(h.ID)["2024-01-09"] = models.CheckIn{}
	delete(s.CheckIns()[h.ID], "2024-01-09")
	s.Habits()[0].Name = "Hacked"

	if s.Habits()[0].Name != "Run" {
		t.Error("Habits() must return a copy")
	}
	if !s.HabitCheckIns(h.ID)["2024-01-09"].Completed {
		t.Error("Check-in accessors must return copies")
	}
}
