// Package curriculum holds the compiled-in VTU curriculum index: branch
// categories, semester subject lists, first-year cycle subjects and the
// per-subject note groups the download endpoints serve.
package curriculum

import (
	"sort"
	"strings"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// ComingSoonURL marks a note group or module whose file is not hosted
// yet. Download dispatch must never fetch it.
const ComingSoonURL = "#"

// NoteGroup types.
const (
	TypeNotes    = "notes"
	TypeTextbook = "textbook"
	TypeQP       = "qp"
)

// Module is one downloadable unit inside an expandable note group.
type Module struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NoteGroup is one download option on a subject page. A group with
// modules is an expandable container and its own URL is ignored.
type NoteGroup struct {
	Title   string   `json:"title"`
	Source  string   `json:"source"`
	Type    string   `json:"type"`
	URL     string   `json:"url"`
	Modules []Module `json:"modules,omitempty"`
}

// Entry is the curriculum record for one subject code.
type Entry struct {
	Name     string      `json:"name"`
	Code     string      `json:"code"`
	Semester int         `json:"semester"`
	Groups   []NoteGroup `json:"groups"`
}

// Subject is one row in a category/semester subject list.
type Subject struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Category is one engineering branch grouping.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	// MatchLabel is the substring catalog queries match against the
	// free-form note branch column.
	MatchLabel string `json:"match_label"`
	Semesters  []int  `json:"semesters"`
}

// Categories returns the branch categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up one category.
func CategoryByID(id string) (Category, error) {
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, apperrors.ErrNotFound.WithMessage("category not found")
}

// SubjectsFor returns the subject list for a category and semester. An
// unknown category is an error; a known category with no subjects for
// the semester returns an empty list.
func SubjectsFor(categoryID string, semester int) ([]Subject, error) {
	if _, err := CategoryByID(categoryID); err != nil {
		return nil, err
	}

	semesters, ok := subjectsByCategory[categoryID]
	if !ok {
		return []Subject{}, nil
	}

	subjects := semesters[semester]
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out, nil
}

// EntryByCode looks up the note groups for a subject code.
func EntryByCode(code string) (Entry, error) {
	entry, ok := entriesByCode[code]
	if !ok {
		return Entry{}, apperrors.ErrNotFound.WithMessage("subject not found")
	}
	return entry, nil
}

// FirstYearSchemes returns the scheme identifiers in display order.
func FirstYearSchemes() []string {
	schemes := make([]string, 0, len(firstYearSubjects))
	for scheme := range firstYearSubjects {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// FirstYearSubjects returns the subject list for a scheme and cycle.
func FirstYearSubjects(scheme, cycle string) ([]Subject, error) {
	cycles, ok := firstYearSubjects[scheme]
	if !ok {
		return nil, apperrors.ErrNotFound.WithMessage("scheme not found")
	}
	subjects, ok := cycles[cycle]
	if !ok {
		return nil, apperrors.ErrNotFound.WithMessage("cycle not found")
	}

	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out, nil
}

// InitialExpandedIndex returns the index of the first group with
// modules, or -1 when no group expands. Subject pages open with that
// group expanded so the page is never empty-looking.
func InitialExpandedIndex(e Entry) int {
	for i, g := range e.Groups {
		if len(g.Modules) > 0 {
			return i
		}
	}
	return -1
}

// FilenameFromURL derives a local filename from a download URL: strip
// any fragment or query, take the last non-empty path segment, default
// to "download.pdf".
func FilenameFromURL(url string) string {
	clean := url
	if i := strings.Index(clean, "#"); i >= 0 {
		clean = clean[:i]
	}
	if i := strings.Index(clean, "?"); i >= 0 {
		clean = clean[:i]
	}

	segments := strings.Split(clean, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return "download.pdf"
}
