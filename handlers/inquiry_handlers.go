package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"safarsorted/api/models"
	"safarsorted/api/store"
	"safarsorted/api/utils"
)

type InquiryHandlers struct {
	Inquiries *store.InquiryStore
	Travelers *store.TravelerView
}

func NewInquiryHandlers(inquiries *store.InquiryStore, travelers *store.TravelerView) *InquiryHandlers {
	return &InquiryHandlers{Inquiries: inquiries, Travelers: travelers}
}

// SubmitInquiry handles the public inquiry form. Validation failures come
// back as a list of human-readable messages and create nothing.
func (h *InquiryHandlers) SubmitInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if errors := utils.ValidateInquiry(req); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errors})
		return
	}

	inquiry, persisted := h.Inquiries.Create(req)
	if !persisted {
		log.Printf("SubmitInquiry: failed to persist inquiry from %s", req.Phone)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
		return
	}

	log.Printf("Inquiry created: ID=%s, Destination=%s", inquiry.ID, inquiry.Destination)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"inquiry": inquiry,
		"message": "Thank you! We'll contact you within 2 hours.",
	})
}

// ListInquiries returns all leads, optionally filtered by ?status= or
// searched with ?q=.
func (h *InquiryHandlers) ListInquiries(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, h.Inquiries.Search(query))
		return
	}

	if status := c.Query("status"); status != "" {
		leadStatus := models.LeadStatus(status)
		if !leadStatus.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter. Must be one of: new, contacted, booked, cancelled"})
			return
		}
		c.JSON(http.StatusOK, h.Inquiries.GetByStatus(leadStatus))
		return
	}

	c.JSON(http.StatusOK, h.Inquiries.GetAll())
}

func (h *InquiryHandlers) GetInquiry(c *gin.Context) {
	inquiry := h.Inquiries.GetByID(c.Param("id"))
	if inquiry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

// UpdateInquiry applies a partial-field merge to one lead. Unknown ids are
// a 404; an unknown status value is rejected outright.
func (h *InquiryHandlers) UpdateInquiry(c *gin.Context) {
	var upd models.LeadUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if upd.Status != nil && !upd.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: new, contacted, booked, cancelled"})
		return
	}

	inquiry, persisted := h.Inquiries.Update(c.Param("id"), upd)
	if inquiry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if !persisted {
		log.Printf("UpdateInquiry: failed to persist update for %s", inquiry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// DeleteInquiry removes a lead. Deleting an unknown id still succeeds.
func (h *InquiryHandlers) DeleteInquiry(c *gin.Context) {
	if !h.Inquiries.Delete(c.Param("id")) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats returns the lead funnel counters alongside the traveler roster
// summary, for the admin dashboard.
func (h *InquiryHandlers) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"inquiries": h.Inquiries.Stats(),
		"travelers": h.Travelers.Stats(),
	})
}

func (h *InquiryHandlers) ListTravelers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Travelers.GetAll())
}

func (h *InquiryHandlers) GetTraveler(c *gin.Context) {
	traveler := h.Travelers.GetByPhone(c.Param("phone"))
	if traveler == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Traveler not found"})
		return
	}
	c.JSON(http.StatusOK, traveler)
}
