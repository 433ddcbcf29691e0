package dto

import "github.com/notevault/vtu-notes-api/internal/models"

// NoteListQuery carries catalog filters. "all" (or absence) disables a
// facet; Search applies as an in-service substring post-filter.
type NoteListQuery struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Branch     string `form:"branch"`
	Semester   string `form:"semester"`
	University string `form:"university"`
	Subject    string `form:"subject"`
}

// NoteFacets are the distinct filter values present in the loaded
// result set.
type NoteFacets struct {
	Universities []string `json:"universities"`
	Branches     []string `json:"branches"`
	Subjects     []string `json:"subjects"`
}

type NoteListResponse struct {
	Notes  []models.Note `json:"notes"`
	Facets NoteFacets    `json:"facets"`
	Total  int           `json:"total"`
}

type UploadNoteRequest struct {
	Title       string `form:"title" validate:"required"`
	University  string `form:"university" validate:"required"`
	Branch      string `form:"branch" validate:"required"`
	Subject     string `form:"subject" validate:"required"`
	Semester    int    `form:"semester" validate:"required,min=1,max=8"`
	Module      string `form:"module"`
	Description string `form:"description"`
}

type BulkDownloadRequest struct {
	NoteIDs []string `json:"note_ids" validate:"required,min=1,dive,required"`
}

type AdminStatsResponse struct {
	TotalNotes           int64         `json:"total_notes"`
	TotalDownloads       int64         `json:"total_downloads"`
	DistinctSubjects     int64         `json:"distinct_subjects"`
	DistinctUniversities int64         `json:"distinct_universities"`
	RecentUploads        []models.Note `json:"recent_uploads"`
}
