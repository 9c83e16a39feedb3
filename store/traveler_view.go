package store

import (
	"sort"

	"safarsorted/api/models"
	"safarsorted/api/utils"
)

// TravelerView derives the traveler roster by grouping leads by their exact
// phone number. It is a pure projection recomputed on every call: it holds
// no storage of its own and must never be treated as a source of truth.
type TravelerView struct {
	inquiries *InquiryStore
}

func NewTravelerView(inquiries *InquiryStore) *TravelerView {
	return &TravelerView{inquiries: inquiries}
}

// GetAll builds one traveler per distinct phone number. Trips accumulate in
// the inquiry store's iteration order, first/last contact track the group's
// min/max creation time, and the name follows the latest-created lead.
// The result is sorted by last contact, most recent first.
func (v *TravelerView) GetAll() []models.Traveler {
	leads := v.inquiries.GetAll()

	byPhone := map[string]*models.Traveler{}
	var order []string

	for _, lead := range leads {
		traveler, seen := byPhone[lead.Phone]
		if !seen {
			traveler = &models.Traveler{
				ID:           lead.Phone,
				Name:         lead.Name,
				Phone:        lead.Phone,
				Email:        lead.Email,
				Trips:        []models.Trip{},
				FirstContact: lead.CreatedAt,
				LastContact:  lead.CreatedAt,
			}
			byPhone[lead.Phone] = traveler
			order = append(order, lead.Phone)
		}

		traveler.Trips = append(traveler.Trips, models.Trip{
			Destination: lead.Destination,
			Date:        lead.TravelDate,
			Status:      lead.Status,
			Created:     lead.CreatedAt,
		})
		traveler.TotalTrips++

		if lead.CreatedAt.Before(traveler.FirstContact) {
			traveler.FirstContact = lead.CreatedAt
		}
		if lead.CreatedAt.After(traveler.LastContact) {
			traveler.LastContact = lead.CreatedAt
			traveler.Name = lead.Name
		}
	}

	travelers := make([]models.Traveler, 0, len(order))
	for _, phone := range order {
		travelers = append(travelers, *byPhone[phone])
	}
	sort.SliceStable(travelers, func(i, j int) bool {
		return travelers[i].LastContact.After(travelers[j].LastContact)
	})
	return travelers
}

// GetByPhone returns the traveler with that exact phone number, or nil.
func (v *TravelerView) GetByPhone(phone string) *models.Traveler {
	for _, traveler := range v.GetAll() {
		if traveler.Phone == phone {
			return &traveler
		}
	}
	return nil
}

// Stats returns the roster size, how many travelers have more than one trip,
// and the mean trips per traveler rounded to one decimal.
func (v *TravelerView) Stats() models.TravelerStats {
	travelers := v.GetAll()

	stats := models.TravelerStats{Total: len(travelers)}
	totalTrips := 0
	for _, traveler := range travelers {
		if traveler.TotalTrips > 1 {
			stats.RepeatCustomers++
		}
		totalTrips += traveler.TotalTrips
	}
	if stats.Total > 0 {
		stats.AvgTripsPerCustomer = utils.Round1(float64(totalTrips) / float64(stats.Total))
	}
	return stats
}
