package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/notevault/vtu-notes-api/internal/models"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

type NoteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, title, subject, module, branch, semester, university, description,
	file_url, file_name, file_type, file_size, download_count, is_enabled,
	uploaded_by, created_at, updated_at`

// List returns enabled notes newest first, narrowed by the filter's
// non-zero fields. Branch and university match as case-insensitive
// substrings; semester and subject match exactly.
func (r *NoteRepository) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes WHERE is_enabled = true", noteColumns)
	var args []interface{}

	if filter.Branch != "" {
		args = append(args, "%"+filter.Branch+"%")
		query += fmt.Sprintf(" AND branch ILIKE $%d", len(args))
	}
	if filter.Semester != 0 {
		args = append(args, filter.Semester)
		query += fmt.Sprintf(" AND semester = $%d", len(args))
	}
	if filter.University != "" {
		args = append(args, "%"+filter.University+"%")
		query += fmt.Sprintf(" AND university ILIKE $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes WHERE id = $1 AND is_enabled = true", noteColumns)

	var note models.Note
	if err := r.db.GetContext(ctx, &note, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound.WithMessage("note not found")
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &note, nil
}

// ListByIDs returns the enabled notes among the given ids, preserving
// catalog order.
func (r *NoteRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Note, error) {
	if len(ids) == 0 {
		return []models.Note{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT %s FROM notes WHERE is_enabled = true AND id IN (%s) ORDER BY created_at DESC",
		noteColumns, strings.Join(placeholders, ", "),
	)

	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("list notes by ids: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `INSERT INTO notes (
		id, title, subject, module, branch, semester, university, description,
		file_url, file_name, file_type, file_size, uploaded_by, is_enabled
	) VALUES (
		:id, :title, :subject, :module, :branch, :semester, :university, :description,
		:file_url, :file_name, :file_type, :file_size, :uploaded_by, :is_enabled
	)`

	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	return nil
}

// IncrementDownloadCount bumps the counter by one. Missing rows are
// not an error; the increment is best-effort telemetry.
func (r *NoteRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	query := "UPDATE notes SET download_count = download_count + 1, updated_at = NOW() WHERE id = $1"

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("increment download count: %w", err)
	}

	return nil
}

func (r *NoteRepository) Stats(ctx context.Context) (*models.NoteStats, error) {
	query := `SELECT
		COUNT(*) AS total_notes,
		COALESCE(SUM(download_count), 0) AS total_downloads,
		COUNT(DISTINCT subject) AS distinct_subjects,
		COUNT(DISTINCT university) AS distinct_universities
	FROM notes WHERE is_enabled = true`

	var stats models.NoteStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("note stats: %w", err)
	}

	return &stats, nil
}

// Recent returns the newest enabled notes for the admin dashboard.
func (r *NoteRepository) Recent(ctx context.Context, limit int) ([]models.Note, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM notes WHERE is_enabled = true ORDER BY created_at DESC LIMIT $1",
		noteColumns,
	)

	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, limit); err != nil {
		return nil, fmt.Errorf("recent notes: %w", err)
	}

	return notes, nil
}
