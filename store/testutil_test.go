package store

import (
	"fmt"
	"testing"
	"time"

	"safarsorted/api/database"
	"safarsorted/api/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	client, err := database.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { client.DB.Close() })
	return NewStorage(client)
}

// newTestStores wires an inquiry store and its analytics store over one
// ephemeral database, with a deterministic clock that advances one minute
// per tick and sequential ids.
func newTestStores(t *testing.T) (*InquiryStore, *AnalyticsStore) {
	t.Helper()
	storage := newTestStorage(t)

	analytics := NewAnalyticsStore(storage)
	inquiries := NewInquiryStore(storage, analytics)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	now := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	inquiries.now = now

	seq := 0
	inquiries.newID = func() string {
		seq++
		return fmt.Sprintf("LEAD-%03d", seq)
	}

	eventSeq := 0
	analytics.now = func() time.Time { return base }
	analytics.newEventID = func() string {
		eventSeq++
		return fmt.Sprintf("EV-%04d", eventSeq)
	}

	return inquiries, analytics
}

func submitLead(t *testing.T, s *InquiryStore, name, phone, destination string) *models.Lead {
	t.Helper()
	lead, persisted := s.Create(models.InquiryRequest{
		Name:        name,
		Phone:       phone,
		Travelers:   2,
		Destination: destination,
	})
	if !persisted {
		t.Fatalf("failed to persist lead for %s", name)
	}
	return lead
}
