package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AnalyticsEvent is one tracked event in the bounded event log.
type AnalyticsEvent struct {
	EventID    string         `json:"eventId"`
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
	Timestamp  time.Time      `json:"timestamp"`
}

// DayStat holds the per-calendar-day rollup counters.
type DayStat struct {
	Views     int `json:"views"`
	Inquiries int `json:"inquiries"`
}

// DailyStat is one row of the weekly stats window.
type DailyStat struct {
	Date      string `json:"date"`
	Views     int    `json:"views"`
	Inquiries int    `json:"inquiries"`
}

type DestinationCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsData is the whole analytics storage slot.
type AnalyticsData struct {
	PageViews    map[string]int     `json:"pageViews"`
	Events       []AnalyticsEvent   `json:"events"`
	Destinations DestinationCounts  `json:"destinations"`
	DailyStats   map[string]DayStat `json:"dailyStats"`
}

// NewAnalyticsData returns an empty, fully initialized analytics blob.
func NewAnalyticsData() AnalyticsData {
	return AnalyticsData{
		PageViews:  map[string]int{},
		Events:     []AnalyticsEvent{},
		DailyStats: map[string]DayStat{},
	}
}

// DestinationCounts is a counter mapping that remembers the order in which
// destinations were first seen. Popularity ties break on that order, so a
// plain Go map (unordered, marshals key-sorted) cannot back it. It encodes
// as a regular JSON object with keys in first-insertion order.
type DestinationCounts struct {
	names  []string
	counts map[string]int
}

func (d *DestinationCounts) Increment(name string) {
	if d.counts == nil {
		d.counts = map[string]int{}
	}
	if _, seen := d.counts[name]; !seen {
		d.names = append(d.names, name)
	}
	d.counts[name]++
}

func (d DestinationCounts) Get(name string) int {
	return d.counts[name]
}

func (d DestinationCounts) Len() int {
	return len(d.names)
}

// Pairs returns all counters in first-insertion order.
func (d DestinationCounts) Pairs() []DestinationCount {
	pairs := make([]DestinationCount, 0, len(d.names))
	for _, name := range d.names {
		pairs = append(pairs, DestinationCount{Name: name, Count: d.counts[name]})
	}
	return pairs
}

func (d DestinationCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", d.counts[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *DestinationCounts) UnmarshalJSON(data []byte) error {
	d.names = nil
	d.counts = map[string]int{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("destinations: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("destinations: unexpected key token %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("destinations: bad count for %q: %w", key, err)
		}
		if _, seen := d.counts[key]; !seen {
			d.names = append(d.names, key)
		}
		d.counts[key] = count
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
