package models

import "time"

// Note is one uploaded course-notes file in the catalog.
type Note struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Subject       string    `db:"subject" json:"subject"`
	Module        string    `db:"module" json:"module,omitempty"`
	Branch        string    `db:"branch" json:"branch"`
	Semester      int       `db:"semester" json:"semester"`
	University    string    `db:"university" json:"university"`
	Description   string    `db:"description" json:"description,omitempty"`
	FileURL       string    `db:"file_url" json:"file_url"`
	FileName      string    `db:"file_name" json:"file_name"`
	FileType      string    `db:"file_type" json:"file_type"`
	FileSize      int64     `db:"file_size" json:"file_size"`
	DownloadCount int64     `db:"download_count" json:"download_count"`
	IsEnabled     bool      `db:"is_enabled" json:"is_enabled"`
	UploadedBy    string    `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// NoteFilter narrows catalog reads. Zero values mean "no constraint".
type NoteFilter struct {
	Branch     string
	Semester   int
	University string
	Subject    string
	Limit      int
}

// NoteStats backs the admin dashboard.
type NoteStats struct {
	TotalNotes           int64 `db:"total_notes" json:"total_notes"`
	TotalDownloads       int64 `db:"total_downloads" json:"total_downloads"`
	DistinctSubjects     int64 `db:"distinct_subjects" json:"distinct_subjects"`
	DistinctUniversities int64 `db:"distinct_universities" json:"distinct_universities"`
}
