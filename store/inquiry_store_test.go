package store

import (
	"testing"

	"safarsorted/api/models"
)

func TestCreateNormalizesSubmission(t *testing.T) {
	inquiries, analytics := newTestStores(t)

	lead, persisted := inquiries.Create(models.InquiryRequest{
		Name:        "Asha",
		Phone:       "9999999999",
		Destination: "Goa",
		Travelers:   "3",
	})
	if !persisted {
		t.Fatal("Create did not persist")
	}

	if lead.Travelers != 3 {
		t.Errorf("travelers: got %d, want 3 (string coerced)", lead.Travelers)
	}
	if lead.Status != models.LeadStatusNew {
		t.Errorf("status: got %q, want new", lead.Status)
	}
	if lead.Source != "website" {
		t.Errorf("source: got %q, want website default", lead.Source)
	}
	if lead.Email != "" || lead.Notes != "" {
		t.Errorf("optional fields should default to empty, got email=%q notes=%q", lead.Email, lead.Notes)
	}
	if !lead.UpdatedAt.Equal(lead.CreatedAt) {
		t.Errorf("updated_at %v should equal created_at %v on creation", lead.UpdatedAt, lead.CreatedAt)
	}

	events := analytics.Data().Events
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 analytics event, got %d", len(events))
	}
	if events[0].Event != "inquiry_created" {
		t.Errorf("event: got %q, want inquiry_created", events[0].Event)
	}
	if dest := events[0].Properties["destination"]; dest != "Goa" {
		t.Errorf("event destination: got %v, want Goa", dest)
	}
}

func TestCreateTravelersCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"numeric string", "3", 3},
		{"number", float64(5), 5},
		{"int", 4, 4},
		{"garbage string", "abc", 1},
		{"missing", nil, 1},
		{"zero", "0", 1},
		{"negative", -2, 1},
		{"float string", "4.5", 4},
		{"padded string", " 2 ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inquiries, _ := newTestStores(t)
			lead, _ := inquiries.Create(models.InquiryRequest{
				Name:        "Test",
				Phone:       "8888888888",
				Destination: "Kerala",
				Travelers:   tt.input,
			})
			if lead.Travelers != tt.want {
				t.Errorf("travelers %v: got %d, want %d", tt.input, lead.Travelers, tt.want)
			}
		})
	}
}

func TestGetAllNewestFirst(t *testing.T) {
	inquiries, _ := newTestStores(t)

	first := submitLead(t, inquiries, "First", "1111111111", "Goa")
	second := submitLead(t, inquiries, "Second", "2222222222", "Manali")
	third := submitLead(t, inquiries, "Third", "3333333333", "Kerala")

	all := inquiries.GetAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(all))
	}
	wantOrder := []string{third.ID, second.ID, first.ID}
	for i, want := range wantOrder {
		if all[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, all[i].ID, want)
		}
	}
}

func TestUpdateMergesAndRestamps(t *testing.T) {
	inquiries, _ := newTestStores(t)

	lead := submitLead(t, inquiries, "Asha", "9999999999", "Goa")

	booked := models.LeadStatusBooked
	notes := "called back, confirmed"
	updated, persisted := inquiries.Update(lead.ID, models.LeadUpdate{
		Status: &booked,
		Notes:  &notes,
	})
	if updated == nil {
		t.Fatal("Update returned nil for an existing lead")
	}
	if !persisted {
		t.Fatal("Update did not persist")
	}

	if updated.Status != models.LeadStatusBooked {
		t.Errorf("status: got %q, want booked", updated.Status)
	}
	if updated.Notes != notes {
		t.Errorf("notes: got %q, want %q", updated.Notes, notes)
	}
	// Unspecified fields stay put.
	if updated.Name != "Asha" || updated.Destination != "Goa" || updated.Travelers != 2 {
		t.Errorf("unspecified fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(lead.CreatedAt) {
		t.Errorf("created_at changed: got %v, want %v", updated.CreatedAt, lead.CreatedAt)
	}
	if updated.UpdatedAt.Before(lead.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", updated.UpdatedAt, lead.UpdatedAt)
	}

	got := inquiries.GetByID(lead.ID)
	if got == nil || got.Status != models.LeadStatusBooked {
		t.Errorf("GetByID after update: got %+v", got)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	inquiries, _ := newTestStores(t)
	submitLead(t, inquiries, "Asha", "9999999999", "Goa")

	name := "Nobody"
	if updated, _ := inquiries.Update("LEAD-404", models.LeadUpdate{Name: &name}); updated != nil {
		t.Errorf("Update of unknown id returned %+v, want nil", updated)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	inquiries, _ := newTestStores(t)
	lead := submitLead(t, inquiries, "Asha", "9999999999", "Goa")

	bogus := models.LeadStatus("archived")
	updated, _ := inquiries.Update(lead.ID, models.LeadUpdate{Status: &bogus})
	if updated.Status != models.LeadStatusNew {
		t.Errorf("invalid status applied: got %q, want new", updated.Status)
	}
}

func TestUpdateKeepsListOrder(t *testing.T) {
	inquiries, _ := newTestStores(t)

	submitLead(t, inquiries, "First", "1111111111", "Goa")
	middle := submitLead(t, inquiries, "Middle", "2222222222", "Manali")
	submitLead(t, inquiries, "Last", "3333333333", "Kerala")

	contacted := models.LeadStatusContacted
	inquiries.Update(middle.ID, models.LeadUpdate{Status: &contacted})

	all := inquiries.GetAll()
	if all[1].ID != middle.ID {
		t.Errorf("update moved the lead: position 1 is %s, want %s", all[1].ID, middle.ID)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	inquiries, _ := newTestStores(t)

	lead := submitLead(t, inquiries, "Asha", "9999999999", "Goa")
	keeper := submitLead(t, inquiries, "Keeper", "8888888888", "Manali")

	if !inquiries.Delete(lead.ID) {
		t.Fatal("first Delete failed")
	}
	if got := inquiries.GetByID(lead.ID); got != nil {
		t.Errorf("lead still present after delete: %+v", got)
	}

	// Deleting again must still succeed.
	if !inquiries.Delete(lead.ID) {
		t.Fatal("second Delete failed")
	}
	if got := inquiries.GetByID(keeper.ID); got == nil {
		t.Error("unrelated lead disappeared")
	}
}

func TestGetByStatus(t *testing.T) {
	inquiries, _ := newTestStores(t)

	submitLead(t, inquiries, "A", "1111111111", "Goa")
	b := submitLead(t, inquiries, "B", "2222222222", "Manali")
	booked := models.LeadStatusBooked
	inquiries.Update(b.ID, models.LeadUpdate{Status: &booked})

	got := inquiries.GetByStatus(models.LeadStatusBooked)
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("GetByStatus(booked): got %+v", got)
	}
	if n := len(inquiries.GetByStatus(models.LeadStatusCancelled)); n != 0 {
		t.Errorf("GetByStatus(cancelled): got %d leads, want 0", n)
	}
}

func TestSearch(t *testing.T) {
	inquiries, _ := newTestStores(t)

	inquiries.Create(models.InquiryRequest{
		Name: "Asha Verma", Phone: "9999911111", Destination: "Goa",
		Email: "asha@example.com", Travelers: 1,
	})
	inquiries.Create(models.InquiryRequest{
		Name: "Rohan", Phone: "8888822222", Destination: "Manali", Travelers: 1,
	})

	tests := []struct {
		query string
		want  int
	}{
		{"asha", 1},
		{"ASHA", 1},
		{"99999", 1},
		{"manali", 1},
		{"example.com", 1},
		{"a", 2},
		{"nowhere", 0},
	}
	for _, tt := range tests {
		if got := len(inquiries.Search(tt.query)); got != tt.want {
			t.Errorf("Search(%q): got %d matches, want %d", tt.query, got, tt.want)
		}
	}
}

func TestStatsConversionRate(t *testing.T) {
	inquiries, _ := newTestStores(t)

	if stats := inquiries.Stats(); stats.Total != 0 || stats.ConversionRate != 0 {
		t.Errorf("empty store stats: %+v", stats)
	}

	for i, phone := range []string{"1111111111", "2222222222", "3333333333"} {
		lead := submitLead(t, inquiries, "Lead", phone, "Goa")
		if i < 2 {
			booked := models.LeadStatusBooked
			inquiries.Update(lead.ID, models.LeadUpdate{Status: &booked})
		}
	}

	stats := inquiries.Stats()
	if stats.Total != 3 || stats.Booked != 2 || stats.New != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	// round(100 * 2/3) = 67
	if stats.ConversionRate != 67 {
		t.Errorf("conversionRate: got %d, want 67", stats.ConversionRate)
	}
}
