package dto

import "time"

// BackupMetadata summarizes the exported tree.
type BackupMetadata struct {
	TotalSections int `json:"totalSections"`
	TotalRules    int `json:"totalRules"`
}

// BackupDocument is the exported backup format. Import accepts the same
// shape and rejects any document missing the top-level sections list.
type BackupDocument struct {
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Sections  []SectionResponse `json:"sections"`
	Metadata  BackupMetadata    `json:"metadata"`
}

// BackupImportResult reports what a restore replaced.
type BackupImportResult struct {
	SectionsRestored int `json:"sectionsRestored"`
	RulesRestored    int `json:"rulesRestored"`
}
