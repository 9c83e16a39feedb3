package models

// UserPrefs is the per-visitor preference blob: quiz-selected traveler type,
// most recently viewed destinations (newest first, capped) and the wishlist.
type UserPrefs struct {
	TravelerType string   `json:"travelerType"`
	RecentViews  []string `json:"recentViews"`
	Wishlist     []string `json:"wishlist"`
}
