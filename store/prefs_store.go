package store

import (
	"sync"

	"safarsorted/api/models"
)

// maxRecentViews caps the recently-viewed destination list.
const maxRecentViews = 5

// PrefsStore keeps per-visitor preferences: the quiz-selected traveler type,
// recently viewed destinations and the wishlist.
type PrefsStore struct {
	mu      sync.Mutex
	storage *Storage
}

func NewPrefsStore(storage *Storage) *PrefsStore {
	return &PrefsStore{storage: storage}
}

// Get returns the stored preferences, or an empty blob when none exist.
func (s *PrefsStore) Get() models.UserPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *PrefsStore) load() models.UserPrefs {
	prefs := models.UserPrefs{
		RecentViews: []string{},
		Wishlist:    []string{},
	}
	s.storage.Get(KeyUserPrefs, &prefs)
	if prefs.RecentViews == nil {
		prefs.RecentViews = []string{}
	}
	if prefs.Wishlist == nil {
		prefs.Wishlist = []string{}
	}
	return prefs
}

func (s *PrefsStore) save(prefs models.UserPrefs) bool {
	return s.storage.Set(KeyUserPrefs, prefs)
}

// Set merges the given preferences over the stored blob: zero-valued fields
// keep their current value.
func (s *PrefsStore) Set(partial models.UserPrefs) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.load()
	if partial.TravelerType != "" {
		prefs.TravelerType = partial.TravelerType
	}
	if partial.RecentViews != nil {
		prefs.RecentViews = partial.RecentViews
	}
	if partial.Wishlist != nil {
		prefs.Wishlist = partial.Wishlist
	}
	return s.save(prefs)
}

func (s *PrefsStore) SetTravelerType(travelerType string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.load()
	prefs.TravelerType = travelerType
	return s.save(prefs)
}

// AddRecentView moves the destination to the front of the recent list,
// dropping any earlier occurrence and trimming the list to its cap.
func (s *PrefsStore) AddRecentView(destination string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.load()
	views := []string{destination}
	for _, seen := range prefs.RecentViews {
		if seen != destination {
			views = append(views, seen)
		}
	}
	if len(views) > maxRecentViews {
		views = views[:maxRecentViews]
	}
	prefs.RecentViews = views
	return s.save(prefs)
}

// ToggleWishlist adds the destination to the wishlist if absent, removes it
// if present, and reports whether it is now on the list.
func (s *PrefsStore) ToggleWishlist(destination string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.load()
	kept := make([]string, 0, len(prefs.Wishlist))
	found := false
	for _, d := range prefs.Wishlist {
		if d == destination {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		kept = append(kept, destination)
	}
	prefs.Wishlist = kept
	return !found, s.save(prefs)
}

func (s *PrefsStore) IsInWishlist(destination string) bool {
	for _, d := range s.Get().Wishlist {
		if d == destination {
			return true
		}
	}
	return false
}
