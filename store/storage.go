// Package store implements the SafarSorted data layer: a key-value slot
// facade over local SQLite, plus the inquiry, traveler, analytics, settings,
// preference and backup stores built on top of it. Each dataset owns exactly
// one named slot holding a JSON-serialized value.
package store

import (
	"database/sql"
	"encoding/json"
	"log"

	"safarsorted/api/database"
)

// Fixed slot keys. Every store exclusively owns its key.
const (
	KeyInquiries = "safarsorted_inquiries"
	KeySettings  = "safarsorted_settings"
	KeyAnalytics = "safarsorted_analytics"
	KeyUserPrefs = "safarsorted_user_prefs"
	KeyBookings  = "safarsorted_bookings"
)

// SlotKeys lists every known slot, for full wipes.
var SlotKeys = []string{KeyInquiries, KeySettings, KeyAnalytics, KeyUserPrefs, KeyBookings}

type Storage struct {
	db *sql.DB
}

func NewStorage(client *database.SQLiteClient) *Storage {
	return &Storage{db: client.DB}
}

// Get loads the slot into dest. It returns false when the slot is missing,
// its content is not valid JSON, or the read fails; callers must treat false
// as "absent", never as "empty". A stored empty list still returns true.
func (s *Storage) Get(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM storage_slots WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Storage: failed to read slot %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("Storage: corrupt content in slot %q: %v", key, err)
		return false
	}
	return true
}

// Set serializes value into the slot, reporting failure as false rather
// than raising. A false return means nothing durable happened.
func (s *Storage) Set(key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Storage: failed to serialize slot %q: %v", key, err)
		return false
	}
	_, err = s.db.Exec(`
		INSERT INTO storage_slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		log.Printf("Storage: failed to write slot %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the slot. Removing an absent slot is a no-op.
func (s *Storage) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM storage_slots WHERE key = ?`, key); err != nil {
		log.Printf("Storage: failed to remove slot %q: %v", key, err)
	}
}
