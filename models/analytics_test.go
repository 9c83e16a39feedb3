package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDestinationCountsKeepInsertionOrder(t *testing.T) {
	var d DestinationCounts
	d.Increment("Goa")
	d.Increment("Manali")
	d.Increment("Goa")
	d.Increment("Kerala")

	want := []DestinationCount{{"Goa", 2}, {"Manali", 1}, {"Kerala", 1}}
	if got := d.Pairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs: got %+v, want %+v", got, want)
	}
	if d.Len() != 3 {
		t.Errorf("Len: got %d, want 3", d.Len())
	}
}

func TestDestinationCountsJSONRoundTrip(t *testing.T) {
	var d DestinationCounts
	d.Increment("Zanzibar")
	d.Increment("Agra")
	d.Increment("Zanzibar")

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Keys must encode in first-insertion order, not sorted.
	if string(raw) != `{"Zanzibar":2,"Agra":1}` {
		t.Errorf("marshal: got %s", raw)
	}

	var back DestinationCounts
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Pairs(), d.Pairs()) {
		t.Errorf("round trip: got %+v, want %+v", back.Pairs(), d.Pairs())
	}
}

func TestDestinationCountsEmptyJSON(t *testing.T) {
	var d DestinationCounts

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("empty marshal: got %s, want {}", raw)
	}

	var back DestinationCounts
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if back.Len() != 0 {
		t.Errorf("null should decode to empty, got %d entries", back.Len())
	}
}

func TestLeadStatusValid(t *testing.T) {
	for _, status := range []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusCancelled} {
		if !status.Valid() {
			t.Errorf("%q should be valid", status)
		}
	}
	for _, status := range []LeadStatus{"", "archived", "New"} {
		if status.Valid() {
			t.Errorf("%q should be invalid", status)
		}
	}
}
