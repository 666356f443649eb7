package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habittrack/internal/models"
	"github.com/julianstephens/habittrack/internal/storage"
	"github.com/julianstephens/habittrack/internal/store"
)

type Context struct {
	Provider storage.Provider
	Debug    bool

	appStore *store.Store
}

// Load reads the persisted state and wires it into a store that saves back
// through the provider on every mutation. The store is built once per
// invocation.
func (c *Context) Load() (*store.Store, error) {
	if c.appStore != nil {
		return c.appStore, nil
	}
	state, err := c.Provider.Load()
	if err != nil {
		return nil, err
	}
	c.appStore = store.New(state, store.WithPersister(c.Provider))
	return c.appStore, nil
}

// parseDay validates a YYYY-MM-DD argument, defaulting to today when empty.
func parseDay(s string) (string, error) {
	if s == "" {
		return time.Now().Format(models.DayFormat), nil
	}
	if _, err := time.Parse(models.DayFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return s, nil
}

// findHabit resolves a habit by name with a friendly error.
func findHabit(s *store.Store, name string) (models.Habit, error) {
	h, ok := s.HabitByName(name)
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return h, nil
}
