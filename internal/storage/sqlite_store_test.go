package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/habittrack/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "habittrack.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_InitCreatesEmptyState(t *testing.T) {
	s := newTestSQLiteStore(t)

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(state.Habits) != 0 || len(state.CheckIns) != 0 {
		t.Errorf("Expected empty state after init, got %+v", state)
	}
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Init(); err != nil {
		t.Errorf("Expected re-init of an existing database to succeed, got %v", err)
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "habittrack.db"))
	if _, err := s.Load(); err == nil {
		t.Error("Expected load to fail before init")
	}
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	want := testState()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got.Habits, want.Habits) {
		t.Errorf("Habits mismatch:\ngot  %+v\nwant %+v", got.Habits, want.Habits)
	}
	if !reflect.DeepEqual(got.CheckIns, want.CheckIns) {
		t.Errorf("Check-ins mismatch:\ngot  %+v\nwant %+v", got.CheckIns, want.CheckIns)
	}
}

func TestSQLiteStore_SaveReplacesPreviousState(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Save(testState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Saving a smaller state must not leave stale rows behind
	replacement := testState()
	replacement.Habits = replacement.Habits[:1]
	replacement.CheckIns = models.CheckInsMap{}
	if err := s.Save(replacement); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Habits) != 1 {
		t.Errorf("Expected 1 habit after rewrite, got %d", len(got.Habits))
	}
	if len(got.CheckIns) != 0 {
		t.Errorf("Expected no check-ins after rewrite, got %+v", got.CheckIns)
	}
}

func TestSQLiteStore_PreservesHabitOrder(t *testing.T) {
	s := newTestSQLiteStore(t)

	state := testState()
	state.Habits[0], state.Habits[1] = state.Habits[1], state.Habits[0]
	if err := s.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Habits[0].ID != "h2" || got.Habits[1].ID != "h1" {
		t.Errorf("Expected display order preserved, got %s, %s", got.Habits[0].ID, got.Habits[1].ID)
	}
}

func TestSQLiteStore_AcceptsOrphanCheckIns(t *testing.T) {
	s := newTestSQLiteStore(t)

	// Imported payloads may carry check-ins for habits that no longer exist
	state := models.State{
		CheckIns: models.CheckInsMap{
			"gone": {"2024-01-02": {Completed: true, Value: 1}},
		},
	}
	if err := s.Save(state); err != nil {
		t.Fatalf("Save failed for orphan check-ins: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.CheckIns["gone"]["2024-01-02"].Completed {
		t.Error("Expected orphan check-in to survive the round trip")
	}
}
