package store

import (
	"sort"
	"sync"
	"time"

	"safarsorted/api/models"
	"safarsorted/api/utils"
)

// maxEvents bounds the event log; the oldest events are evicted first.
const maxEvents = 1000

const dayKeyLayout = "2006-01-02"

// AnalyticsStore keeps page-view counters, a bounded event log, destination
// popularity counters and per-day rollups in the analytics slot.
type AnalyticsStore struct {
	mu      sync.Mutex
	storage *Storage

	now        func() time.Time
	newEventID func() string
}

func NewAnalyticsStore(storage *Storage) *AnalyticsStore {
	return &AnalyticsStore{
		storage:    storage,
		now:        time.Now,
		newEventID: utils.NewEventID,
	}
}

// Data returns the current analytics blob, degrading to an empty one when
// the slot is missing or unreadable.
func (s *AnalyticsStore) Data() models.AnalyticsData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *AnalyticsStore) load() models.AnalyticsData {
	data := models.NewAnalyticsData()
	s.storage.Get(KeyAnalytics, &data)
	if data.PageViews == nil {
		data.PageViews = map[string]int{}
	}
	if data.DailyStats == nil {
		data.DailyStats = map[string]models.DayStat{}
	}
	return data
}

func (s *AnalyticsStore) save(data models.AnalyticsData) bool {
	return s.storage.Set(KeyAnalytics, data)
}

// TrackPageView counts a view of the given page and bumps today's daily
// view counter.
func (s *AnalyticsStore) TrackPageView(page string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	today := s.now().Format(dayKeyLayout)

	data.PageViews[page]++

	day := data.DailyStats[today]
	day.Views++
	data.DailyStats[today] = day

	return s.save(data)
}

// Track appends an event with the current timestamp, counts any destination
// it carries, and evicts the oldest events once the log exceeds its cap.
// Inquiry-creation events also bump today's daily inquiry counter.
func (s *AnalyticsStore) Track(event string, properties map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()

	data.Events = append(data.Events, models.AnalyticsEvent{
		EventID:    s.newEventID(),
		Event:      event,
		Properties: properties,
		Timestamp:  s.now(),
	})

	if dest, ok := properties["destination"].(string); ok && dest != "" {
		data.Destinations.Increment(dest)
	}

	if event == "inquiry_created" {
		today := s.now().Format(dayKeyLayout)
		day := data.DailyStats[today]
		day.Inquiries++
		data.DailyStats[today] = day
	}

	if excess := len(data.Events) - maxEvents; excess > 0 {
		data.Events = data.Events[excess:]
	}

	return s.save(data)
}

// PopularDestinations returns the top 10 destinations by count, descending.
// Ties keep the order in which destinations were first tracked.
func (s *AnalyticsStore) PopularDestinations() []models.DestinationCount {
	data := s.Data()
	pairs := data.Destinations.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	if len(pairs) > 10 {
		pairs = pairs[:10]
	}
	return pairs
}

// WeeklyStats returns exactly seven rows, from six days ago through today,
// with zero counters for days that have no rollup entry.
func (s *AnalyticsStore) WeeklyStats() []models.DailyStat {
	data := s.Data()

	stats := make([]models.DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		key := s.now().AddDate(0, 0, -i).Format(dayKeyLayout)
		day := data.DailyStats[key]
		stats = append(stats, models.DailyStat{
			Date:      key,
			Views:     day.Views,
			Inquiries: day.Inquiries,
		})
	}
	return stats
}
