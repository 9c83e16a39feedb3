package store

import "testing"

func TestSettingsDefaultsWhenEmpty(t *testing.T) {
	settings := NewSettingsStore(newTestStorage(t))

	got := settings.Get()
	if got["company"] != "SafarSorted" {
		t.Errorf("company default: got %v", got["company"])
	}
	if got["currency"] != "INR" {
		t.Errorf("currency default: got %v", got["currency"])
	}
	if got["notifyEmail"] != true {
		t.Errorf("notifyEmail default: got %v", got["notifyEmail"])
	}
}

func TestSettingsOverridesWinPerKey(t *testing.T) {
	settings := NewSettingsStore(newTestStorage(t))

	if !settings.Set(map[string]any{"currency": "USD", "theme": "dark"}) {
		t.Fatal("Set failed")
	}

	got := settings.Get()
	if got["currency"] != "USD" {
		t.Errorf("override lost: currency = %v", got["currency"])
	}
	if got["theme"] != "dark" {
		t.Errorf("new key lost: theme = %v", got["theme"])
	}
	// Untouched keys keep their defaults.
	if got["company"] != "SafarSorted" {
		t.Errorf("default clobbered: company = %v", got["company"])
	}
}

func TestSettingsSetMergesOverCurrent(t *testing.T) {
	settings := NewSettingsStore(newTestStorage(t))

	settings.Set(map[string]any{"currency": "USD"})
	settings.Set(map[string]any{"tagline": "Go far, sorted"})

	got := settings.Get()
	if got["currency"] != "USD" || got["tagline"] != "Go far, sorted" {
		t.Errorf("successive merges lost keys: %+v", got)
	}
}

func TestSettingsReset(t *testing.T) {
	settings := NewSettingsStore(newTestStorage(t))

	settings.Set(map[string]any{"currency": "USD", "theme": "dark"})
	if !settings.Reset() {
		t.Fatal("Reset failed")
	}

	got := settings.Get()
	if got["currency"] != "INR" {
		t.Errorf("currency after reset: got %v, want INR", got["currency"])
	}
	if _, present := got["theme"]; present {
		t.Error("override key survived reset")
	}
}
