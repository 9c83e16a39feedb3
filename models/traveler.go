package models

import "time"

// Traveler is a derived grouping of all leads sharing a phone number. It is
// never persisted; the inquiry store stays authoritative.
type Traveler struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Trips        []Trip    `json:"trips"`
	TotalTrips   int       `json:"totalTrips"`
	FirstContact time.Time `json:"firstContact"`
	LastContact  time.Time `json:"lastContact"`
}

// Trip is one lead projected into a traveler's history.
type Trip struct {
	Destination string     `json:"destination"`
	Date        string     `json:"date"`
	Status      LeadStatus `json:"status"`
	Created     time.Time  `json:"created"`
}

type TravelerStats struct {
	Total               int     `json:"total"`
	RepeatCustomers     int     `json:"repeatCustomers"`
	AvgTripsPerCustomer float64 `json:"avgTripsPerCustomer"`
}
