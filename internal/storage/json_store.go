package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habittrack/internal/models"
)

type jsonFile struct {
	Version  int                `json:"version"`
	Habits   []models.Habit     `json:"habits"`
	CheckIns models.CheckInsMap `json:"checkIns"`
}

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.State{CheckIns: models.CheckInsMap{}})
}

func (s *JSONStore) Load() (models.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.State{}, fmt.Errorf("storage not initialized, run 'habittrack init' first")
		}
		return models.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return models.State{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	state := models.State{Habits: file.Habits, CheckIns: file.CheckIns}
	if state.CheckIns == nil {
		state.CheckIns = models.CheckInsMap{}
	}

	return state, nil
}

func (s *JSONStore) Save(state models.State) error {
	file := jsonFile{
		Version:  1,
		Habits:   state.Habits,
		CheckIns: state.CheckIns,
	}
	if file.Habits == nil {
		file.Habits = []models.Habit{}
	}
	if file.CheckIns == nil {
		file.CheckIns = models.CheckInsMap{}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
