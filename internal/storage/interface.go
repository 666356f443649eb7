package storage

import "github.com/julianstephens/habittrack/internal/models"

// Provider loads and saves the full application state. The state is the sole
// persisted unit: Save always rewrites everything. Save also satisfies the
// store's Persister port, so a Provider can be wired directly into the store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.State, error)
	Close() error

	// State
	Save(models.State) error

	// Utils
	GetConfigPath() string
}
