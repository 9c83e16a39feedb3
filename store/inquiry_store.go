package store

import (
	"strings"
	"sync"
	"time"

	"safarsorted/api/models"
	"safarsorted/api/utils"
)

// InquiryStore owns the canonical lead dataset. The stored list is kept in
// newest-first creation order; every query reads the slot fresh so the store
// never serves a stale snapshot.
type InquiryStore struct {
	mu        sync.Mutex
	storage   *Storage
	analytics *AnalyticsStore

	now   func() time.Time
	newID func() string
}

func NewInquiryStore(storage *Storage, analytics *AnalyticsStore) *InquiryStore {
	return &InquiryStore{
		storage:   storage,
		analytics: analytics,
		now:       time.Now,
		newID:     utils.NewLeadID,
	}
}

// GetAll returns every lead in canonical (newest-first) order. A missing or
// unreadable slot degrades to an empty list.
func (s *InquiryStore) GetAll() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *InquiryStore) load() []models.Lead {
	var leads []models.Lead
	if !s.storage.Get(KeyInquiries, &leads) {
		return []models.Lead{}
	}
	return leads
}

func (s *InquiryStore) save(leads []models.Lead) bool {
	return s.storage.Set(KeyInquiries, leads)
}

// Create builds a lead from the submission, prepends it to the stored list
// and tracks an inquiry_created event. The lead is returned even when
// persistence fails; the boolean tells the caller whether it is durable.
func (s *InquiryStore) Create(req models.InquiryRequest) (*models.Lead, bool) {
	s.mu.Lock()

	travelers, _ := utils.CoerceTravelers(req.Travelers)
	source := req.Source
	if source == "" {
		source = "website"
	}

	now := s.now()
	lead := models.Lead{
		ID:          s.newID(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Travelers:   travelers,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		TripType:    req.TripType,
		Budget:      req.Budget,
		Message:     req.Message,
		Status:      models.LeadStatusNew,
		Notes:       "",
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	leads := append([]models.Lead{lead}, s.load()...)
	persisted := s.save(leads)
	s.mu.Unlock()

	s.analytics.Track("inquiry_created", map[string]any{"destination": lead.Destination})

	return &lead, persisted
}

// Update shallow-merges the given fields over the lead with that id and
// restamps updated_at. It returns nil when the id is unknown. The id and
// created_at of a lead never change, and an invalid status is not applied.
func (s *InquiryStore) Update(id string, upd models.LeadUpdate) (*models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads := s.load()
	for i := range leads {
		if leads[i].ID != id {
			continue
		}

		lead := &leads[i]
		if upd.Name != nil {
			lead.Name = *upd.Name
		}
		if upd.Phone != nil {
			lead.Phone = *upd.Phone
		}
		if upd.Email != nil {
			lead.Email = *upd.Email
		}
		if upd.Travelers != nil && *upd.Travelers >= 1 {
			lead.Travelers = *upd.Travelers
		}
		if upd.Destination != nil {
			lead.Destination = *upd.Destination
		}
		if upd.TravelDate != nil {
			lead.TravelDate = *upd.TravelDate
		}
		if upd.TripType != nil {
			lead.TripType = *upd.TripType
		}
		if upd.Budget != nil {
			lead.Budget = *upd.Budget
		}
		if upd.Message != nil {
			lead.Message = *upd.Message
		}
		if upd.Status != nil && upd.Status.Valid() {
			lead.Status = *upd.Status
		}
		if upd.Notes != nil {
			lead.Notes = *upd.Notes
		}
		if upd.Source != nil {
			lead.Source = *upd.Source
		}
		lead.UpdatedAt = s.now()

		persisted := s.save(leads)
		updated := *lead
		return &updated, persisted
	}
	return nil, false
}

// Delete removes the lead with that id, if present. It is idempotent:
// deleting an absent id still succeeds.
func (s *InquiryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads := s.load()
	kept := leads[:0]
	for _, lead := range leads {
		if lead.ID != id {
			kept = append(kept, lead)
		}
	}
	return s.save(kept)
}

// GetByID returns the lead with that id, or nil.
func (s *InquiryStore) GetByID(id string) *models.Lead {
	for _, lead := range s.GetAll() {
		if lead.ID == id {
			return &lead
		}
	}
	return nil
}

// GetByStatus returns all leads with the given status, in canonical order.
func (s *InquiryStore) GetByStatus(status models.LeadStatus) []models.Lead {
	matches := []models.Lead{}
	for _, lead := range s.GetAll() {
		if lead.Status == status {
			matches = append(matches, lead)
		}
	}
	return matches
}

// Search returns all leads whose name, phone, destination or email contains
// the query, case-insensitively. No ranking is applied.
func (s *InquiryStore) Search(query string) []models.Lead {
	q := strings.ToLower(query)
	matches := []models.Lead{}
	for _, lead := range s.GetAll() {
		if strings.Contains(strings.ToLower(lead.Name), q) ||
			strings.Contains(lead.Phone, q) ||
			strings.Contains(strings.ToLower(lead.Destination), q) ||
			(lead.Email != "" && strings.Contains(strings.ToLower(lead.Email), q)) {
			matches = append(matches, lead)
		}
	}
	return matches
}

// Stats returns the total and per-status lead counts plus the conversion
// rate: round(100 * booked / total), or 0 when there are no leads.
func (s *InquiryStore) Stats() models.InquiryStats {
	stats := models.InquiryStats{}
	for _, lead := range s.GetAll() {
		stats.Total++
		switch lead.Status {
		case models.LeadStatusNew:
			stats.New++
		case models.LeadStatusContacted:
			stats.Contacted++
		case models.LeadStatusBooked:
			stats.Booked++
		case models.LeadStatusCancelled:
			stats.Cancelled++
		}
	}
	if stats.Total > 0 {
		stats.ConversionRate = int(float64(stats.Booked)/float64(stats.Total)*100 + 0.5)
	}
	return stats
}
