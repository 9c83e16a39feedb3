package store

import "sync"

// SettingsStore holds the site configuration blob: a fixed default set with
// persisted per-key overrides merged on top. Values are never validated
// beyond their JSON shape.
type SettingsStore struct {
	mu      sync.Mutex
	storage *Storage
}

func NewSettingsStore(storage *Storage) *SettingsStore {
	return &SettingsStore{storage: storage}
}

// DefaultSettings returns a fresh copy of the built-in defaults.
func DefaultSettings() map[string]any {
	return map[string]any{
		"whatsapp":     "+91 8989015959",
		"email":        "safarsorted@gmail.com",
		"company":      "SafarSorted",
		"tagline":      "Your Journey, Sorted!",
		"currency":     "INR",
		"notifyEmail":  true,
		"notifySound":  true,
		"autoResponse": true,
		"responseTime": "2 hours",
	}
}

// Get returns the effective settings: stored overrides win per key over the
// defaults.
func (s *SettingsStore) Get() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effective()
}

func (s *SettingsStore) effective() map[string]any {
	settings := DefaultSettings()
	var stored map[string]any
	if s.storage.Get(KeySettings, &stored) {
		for key, value := range stored {
			settings[key] = value
		}
	}
	return settings
}

// Set merges the partial settings over the current effective set and
// persists the result.
func (s *SettingsStore) Set(partial map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.effective()
	for key, value := range partial {
		settings[key] = value
	}
	return s.storage.Set(KeySettings, settings)
}

// Reset restores the defaults exactly, discarding all overrides.
func (s *SettingsStore) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Set(KeySettings, DefaultSettings())
}
