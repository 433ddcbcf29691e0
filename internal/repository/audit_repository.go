package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/notevault/vtu-notes-api/internal/models"
)

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, log *models.AuditLog) error {
	query := `INSERT INTO audit_logs (id, user_id, action, detail, ip_address)
		VALUES (:id, :user_id, :action, :detail, :ip_address)`

	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}

	return nil
}
