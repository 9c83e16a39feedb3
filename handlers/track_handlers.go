package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"safarsorted/api/store"
)

type TrackHandlers struct {
	Analytics *store.AnalyticsStore
}

func NewTrackHandlers(analytics *store.AnalyticsStore) *TrackHandlers {
	return &TrackHandlers{Analytics: analytics}
}

type trackEventRequest struct {
	Event      string         `json:"event" binding:"required"`
	Properties map[string]any `json:"properties"`
}

type trackPageViewRequest struct {
	Page string `json:"page" binding:"required"`
}

// TrackEvent records one analytics event sent by the site.
func (h *TrackHandlers) TrackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !h.Analytics.Track(req.Event, req.Properties) {
		log.Printf("TrackEvent: failed to record event %q", req.Event)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}
	c.Status(http.StatusOK)
}

// TrackPageView counts a page view.
func (h *TrackHandlers) TrackPageView(c *gin.Context) {
	var req trackPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !h.Analytics.TrackPageView(req.Page) {
		log.Printf("TrackPageView: failed to record view of %q", req.Page)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record page view"})
		return
	}
	c.Status(http.StatusOK)
}

// GetPopularDestinations returns the top destinations by tracked interest.
func (h *TrackHandlers) GetPopularDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Analytics.PopularDestinations())
}

// GetWeeklyStats returns the seven-day view/inquiry window ending today.
func (h *TrackHandlers) GetWeeklyStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Analytics.WeeklyStats())
}
