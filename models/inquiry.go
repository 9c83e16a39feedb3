package models

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusBooked    LeadStatus = "booked"
	LeadStatusCancelled LeadStatus = "cancelled"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusCancelled:
		return true
	default:
		return false
	}
}

// Lead represents one submitted travel inquiry. The phone number doubles as
// the stable traveler identity key for the traveler roster.
type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Travelers   int        `json:"travelers"`
	Destination string     `json:"destination"`
	TravelDate  string     `json:"travelDate"`
	TripType    string     `json:"tripType"`
	Budget      string     `json:"budget"`
	Message     string     `json:"message"`
	Status      LeadStatus `json:"status"`
	Notes       string     `json:"notes"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InquiryRequest is the inquiry form payload. Travelers is deliberately
// untyped: the form may send it as a string or a number and the store
// normalizes it either way.
type InquiryRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Travelers   any    `json:"travelers"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travelDate"`
	TripType    string `json:"tripType"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
	Source      string `json:"source"`
}

// LeadUpdate is a partial-merge update: nil fields keep their current value.
// ID and created_at are never updatable.
type LeadUpdate struct {
	Name        *string     `json:"name"`
	Phone       *string     `json:"phone"`
	Email       *string     `json:"email"`
	Travelers   *int        `json:"travelers"`
	Destination *string     `json:"destination"`
	TravelDate  *string     `json:"travelDate"`
	TripType    *string     `json:"tripType"`
	Budget      *string     `json:"budget"`
	Message     *string     `json:"message"`
	Status      *LeadStatus `json:"status"`
	Notes       *string     `json:"notes"`
	Source      *string     `json:"source"`
}

type InquiryStats struct {
	Total          int `json:"total"`
	New            int `json:"new"`
	Contacted      int `json:"contacted"`
	Booked         int `json:"booked"`
	Cancelled      int `json:"cancelled"`
	ConversionRate int `json:"conversionRate"`
}
