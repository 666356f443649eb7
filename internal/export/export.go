// Package export reads and writes .habittrack backup files. It is the
// validation boundary for imports: malformed payloads are rejected here and
// never reach the store.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
)

// Version is the only file format version in existence.
const Version = 1

// Data is the .habittrack file layout.
type Data struct {
	Version    int                `json:"version"`
	Habits     []models.Habit     `json:"habits"`
	CheckIns   models.CheckInsMap `json:"checkIns"`
	ExportedAt string             `json:"exportedAt"`
}

// Marshal serializes the state into the export file format, stamping
// exportedAt with the given instant.
func Marshal(state models.State, exportedAt time.Time) ([]byte, error) {
	data := Data{
		Version:    Version,
		Habits:     state.Habits,
		CheckIns:   state.CheckIns,
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
	}
	if data.Habits == nil {
		data.Habits = []models.Habit{}
	}
	if data.CheckIns == nil {
		data.CheckIns = models.CheckInsMap{}
	}
	return json.MarshalIndent(data, "", "  ")
}

// WriteFile writes the state to path as a .habittrack file.
func WriteFile(path string, state models.State, exportedAt time.Time) error {
	data, err := Marshal(state, exportedAt)
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Parse validates and decodes an export payload. Payloads missing the habits
// or checkIns keys are rejected.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("invalid file format: %w", err)
	}
	if data.Habits == nil || data.CheckIns == nil {
		return Data{}, fmt.Errorf("invalid file format: missing habits or checkIns")
	}
	return data, nil
}

// ReadFile parses a .habittrack file from disk.
func ReadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read import file: %w", err)
	}
	return Parse(raw)
}
