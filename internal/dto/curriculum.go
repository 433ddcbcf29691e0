package dto

import "github.com/notevault/vtu-notes-api/internal/curriculum"

type CategoryResponse struct {
	Categories []curriculum.Category `json:"categories"`
}

type CategoryDetailResponse struct {
	Category curriculum.Category `json:"category"`
}

type SubjectListResponse struct {
	Category string               `json:"category"`
	Semester int                  `json:"semester"`
	Subjects []curriculum.Subject `json:"subjects"`
}

type SubjectDetailResponse struct {
	Subject curriculum.Entry `json:"subject"`
	// InitialExpandedIndex is the group index clients open on load, -1
	// when no group has modules.
	InitialExpandedIndex int `json:"initial_expanded_index"`
}

type FirstYearSchemesResponse struct {
	Schemes []string `json:"schemes"`
	Cycles  []string `json:"cycles"`
}

// DownloadNotice is the payload returned instead of bytes when a
// download cannot be dispatched.
type DownloadNotice struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
