package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habittrack/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	frequency TEXT NOT NULL,
	color TEXT NOT NULL,
	theme TEXT NOT NULL DEFAULT '',
	pattern TEXT NOT NULL,
	created_at TEXT NOT NULL,
	archived INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS check_ins (
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL,
	completed INTEGER NOT NULL,
	value INTEGER NOT NULL DEFAULT 0,
	note TEXT NOT NULL DEFAULT '',
	timestamp INTEGER NOT NULL,
	PRIMARY KEY (habit_id, day)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (models.State, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return models.State{}, fmt.Errorf("storage not initialized, run 'habittrack init' first")
		}
		if err := s.open(); err != nil {
			return models.State{}, err
		}
	}

	state := models.State{CheckIns: models.CheckInsMap{}}

	rows, err := s.db.Query(`
		SELECT id, name, frequency, color, theme, pattern, created_at, archived
		FROM habits ORDER BY position`)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var createdAt string
		var archived int
		if err := rows.Scan(&h.ID, &h.Name, &h.Frequency, &h.Color, &h.Theme, &h.Pattern, &createdAt, &archived); err != nil {
			return models.State{}, err
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return models.State{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}
		h.Archived = archived != 0
		state.Habits = append(state.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return models.State{}, err
	}

	checkRows, err := s.db.Query(`SELECT habit_id, day, completed, value, note, timestamp FROM check_ins`)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to load check-ins: %w", err)
	}
	defer checkRows.Close()

	for checkRows.Next() {
		var habitID, day string
		var c models.CheckIn
		var completed int
		if err := checkRows.Scan(&habitID, &day, &completed, &c.Value, &c.Note, &c.Timestamp); err != nil {
			return models.State{}, err
		}
		c.Completed = completed != 0
		days := state.CheckIns[habitID]
		if days == nil {
			days = make(map[string]models.CheckIn)
			state.CheckIns[habitID] = days
		}
		days[day] = c
	}
	if err := checkRows.Err(); err != nil {
		return models.State{}, err
	}

	return state, nil
}

// Save rewrites the full state in a single transaction. The in-memory store
// is the source of truth, so a wholesale rewrite keeps the database an exact
// mirror without per-operation bookkeeping.
func (s *SQLiteStore) Save(state models.State) error {
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM check_ins"); err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	for i, h := range state.Habits {
		archived := 0
		if h.Archived {
			archived = 1
		}
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, frequency, color, theme, pattern, created_at, archived, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, string(h.Frequency), h.Color, h.Theme, h.Pattern,
			h.CreatedAt.Format(time.RFC3339), archived, i)
		if err != nil {
			return fmt.Errorf("failed to save habit %s: %w", h.ID, err)
		}
	}

	for habitID, days := range state.CheckIns {
		for day, c := range days {
			completed := 0
			if c.Completed {
				completed = 1
			}
			_, err := tx.Exec(`
				INSERT INTO check_ins (habit_id, day, completed, value, note, timestamp)
				VALUES (?, ?, ?, ?, ?, ?)`,
				habitID, day, completed, c.Value, c.Note, c.Timestamp)
			if err != nil {
				return fmt.Errorf("failed to save check-in %s/%s: %w", habitID, day, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
