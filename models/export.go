package models

import "time"

// BackupVersion tags the export file format.
const BackupVersion = "2.0"

// Backup is the transferable snapshot produced by export and consumed by
// import. Nil sections are treated as absent on import.
type Backup struct {
	Version    string         `json:"version"`
	ExportedAt time.Time      `json:"exportedAt"`
	Inquiries  []Lead         `json:"inquiries"`
	Settings   map[string]any `json:"settings"`
	Analytics  *AnalyticsData `json:"analytics"`
}
