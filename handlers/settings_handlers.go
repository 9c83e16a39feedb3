package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"safarsorted/api/models"
	"safarsorted/api/store"
)

// SettingsHandlers serves the settings blob, visitor preferences and the
// backup/restore surface.
type SettingsHandlers struct {
	Settings *store.SettingsStore
	Prefs    *store.PrefsStore
	Data     *store.DataManager
}

func NewSettingsHandlers(settings *store.SettingsStore, prefs *store.PrefsStore, data *store.DataManager) *SettingsHandlers {
	return &SettingsHandlers{Settings: settings, Prefs: prefs, Data: data}
}

func (h *SettingsHandlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Get())
}

func (h *SettingsHandlers) UpdateSettings(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !h.Settings.Set(partial) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, h.Settings.Get())
}

func (h *SettingsHandlers) ResetSettings(c *gin.Context) {
	if !h.Settings.Reset() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset settings"})
		return
	}
	c.JSON(http.StatusOK, h.Settings.Get())
}

func (h *SettingsHandlers) GetPrefs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Prefs.Get())
}

func (h *SettingsHandlers) UpdatePrefs(c *gin.Context) {
	var partial models.UserPrefs
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !h.Prefs.Set(partial) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, h.Prefs.Get())
}

type travelerTypeRequest struct {
	TravelerType string `json:"travelerType" binding:"required"`
}

func (h *SettingsHandlers) SetTravelerType(c *gin.Context) {
	var req travelerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !h.Prefs.SetTravelerType(req.TravelerType) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, h.Prefs.Get())
}

type destinationRequest struct {
	Destination string `json:"destination" binding:"required"`
}

func (h *SettingsHandlers) AddRecentView(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !h.Prefs.AddRecentView(req.Destination) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, h.Prefs.Get())
}

func (h *SettingsHandlers) ToggleWishlist(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	added, persisted := h.Prefs.ToggleWishlist(req.Destination)
	if !persisted {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": req.Destination, "wishlisted": added})
}

// ExportData returns the full backup snapshot as a downloadable document.
func (h *SettingsHandlers) ExportData(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.ExportAll())
}

// ImportData overwrites the stores with the sections present in the upload.
// On failure a subset may already have been written; the caller should
// re-export and verify.
func (h *SettingsHandlers) ImportData(c *gin.Context) {
	var backup models.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document", "details": err.Error()})
		return
	}

	if !h.Data.ImportAll(backup) {
		log.Println("ImportData: one or more sections failed to import")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import backup"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearData wipes every storage slot.
func (h *SettingsHandlers) ClearData(c *gin.Context) {
	h.Data.ClearAll()
	log.Println("ClearData: all storage slots removed")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
