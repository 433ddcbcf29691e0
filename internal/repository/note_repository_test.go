package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notevault/vtu-notes-api/internal/models"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func noteRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "subject", "module", "branch", "semester", "university", "description",
		"file_url", "file_name", "file_type", "file_size", "download_count",
		"is_enabled", "uploaded_by", "created_at", "updated_at",
	}).AddRow(
		"note-1", "OS Module 1", "BCS304", "Module 1", "CSE", 3, "VTU", "",
		"https://files.example.com/os.pdf", "os.pdf", "pdf", 1024, 42,
		true, "admin-1", now, now,
	)
}

func modelsNoteFilter() models.NoteFilter {
	return models.NoteFilter{}
}

func noteFixture() *models.Note {
	return &models.Note{
		ID:         "note-1",
		Title:      "OS Module 1",
		Subject:    "BCS304",
		Module:     "Module 1",
		Branch:     "CSE",
		Semester:   3,
		University: "VTU",
		FileURL:    "https://files.example.com/os.pdf",
		FileName:   "os.pdf",
		FileType:   "pdf",
		FileSize:   1024,
		UploadedBy: "admin-1",
		IsEnabled:  true,
	}
}

func TestNoteRepositoryList(t *testing.T) {
	t.Run("no filter selects enabled notes newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE is_enabled = true") + `.*ORDER BY created_at DESC`).
			WillReturnRows(noteRows())

		notes, err := repo.List(context.Background(), modelsNoteFilter())

		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "note-1", notes[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters are conjunctive and positional", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`branch ILIKE \$1 AND semester = \$2 AND university ILIKE \$3 AND subject = \$4`).
			WithArgs("%CSE%", 3, "%VTU%", "BCS304").
			WillReturnRows(noteRows())

		filter := modelsNoteFilter()
		filter.Branch = "CSE"
		filter.Semester = 3
		filter.University = "VTU"
		filter.Subject = "BCS304"

		notes, err := repo.List(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, notes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit is appended last", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(100).
			WillReturnRows(noteRows())

		filter := modelsNoteFilter()
		filter.Limit = 100

		_, err := repo.List(context.Background(), filter)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepositoryGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`FROM notes WHERE id = \$1 AND is_enabled = true`).
			WithArgs("note-1").
			WillReturnRows(noteRows())

		note, err := repo.GetByID(context.Background(), "note-1")

		require.NoError(t, err)
		assert.Equal(t, "OS Module 1", note.Title)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`FROM notes WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestNoteRepositoryIncrementDownloadCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(`UPDATE notes SET download_count = download_count \+ 1`).
		WithArgs("note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementDownloadCount(context.Background(), "note-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(`INSERT INTO notes \(\s*id, title, subject, module, branch,`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	note := noteFixture()
	err := repo.Create(context.Background(), note)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepositoryStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectQuery(`COUNT\(\*\) AS total_notes`).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_notes", "total_downloads", "distinct_subjects", "distinct_universities",
		}).AddRow(10, 250, 5, 2))

	stats, err := repo.Stats(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.TotalNotes)
	assert.EqualValues(t, 250, stats.TotalDownloads)
	assert.EqualValues(t, 5, stats.DistinctSubjects)
	assert.EqualValues(t, 2, stats.DistinctUniversities)
}

func TestNoteRepositoryListByIDs(t *testing.T) {
	t.Run("empty input short-circuits", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewNoteRepository(db)

		notes, err := repo.ListByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("builds one placeholder per id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`id IN \(\$1, \$2\)`).
			WithArgs("a", "b").
			WillReturnRows(noteRows())

		notes, err := repo.ListByIDs(context.Background(), []string{"a", "b"})

		require.NoError(t, err)
		assert.Len(t, notes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
