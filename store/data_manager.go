package store

import (
	"log"
	"time"

	"safarsorted/api/models"
)

// DataManager bundles export, import and wipe across every storage slot,
// for backup and restore.
type DataManager struct {
	storage   *Storage
	inquiries *InquiryStore
	settings  *SettingsStore
	analytics *AnalyticsStore

	now func() time.Time
}

func NewDataManager(storage *Storage, inquiries *InquiryStore, settings *SettingsStore, analytics *AnalyticsStore) *DataManager {
	return &DataManager{
		storage:   storage,
		inquiries: inquiries,
		settings:  settings,
		analytics: analytics,
		now:       time.Now,
	}
}

// ExportAll snapshots the inquiry, settings and analytics slots into one
// transferable backup document.
func (m *DataManager) ExportAll() models.Backup {
	analytics := m.analytics.Data()
	return models.Backup{
		Version:    models.BackupVersion,
		ExportedAt: m.now(),
		Inquiries:  m.inquiries.GetAll(),
		Settings:   m.settings.Get(),
		Analytics:  &analytics,
	}
}

// ImportAll overwrites each store wholesale with the sections present in the
// snapshot; absent sections are left untouched. The three writes are
// independent, so a failure partway can leave a subset imported — the false
// return is the signal to re-export and verify.
func (m *DataManager) ImportAll(backup models.Backup) bool {
	ok := true
	if backup.Inquiries != nil {
		ok = m.storage.Set(KeyInquiries, backup.Inquiries) && ok
	}
	if backup.Settings != nil {
		ok = m.storage.Set(KeySettings, backup.Settings) && ok
	}
	if backup.Analytics != nil {
		ok = m.storage.Set(KeyAnalytics, backup.Analytics) && ok
	}
	if !ok {
		log.Println("DataManager: import completed with failed sections")
	}
	return ok
}

// ClearAll removes every known storage slot, bookings and preferences
// included.
func (m *DataManager) ClearAll() {
	for _, key := range SlotKeys {
		m.storage.Remove(key)
	}
}
