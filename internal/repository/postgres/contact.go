package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

const contactColumns = `id, name, email, subject, message, status, priority, tags,
	assigned_to, notes, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES (
			:id, :name, :email, :subject, :message, :status, :priority, :tags,
			:assigned_to, :notes, :created_at, :updated_at
		)
	`
	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contactRepository) Get(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	var contact model.Contact
	err := r.db.GetContext(ctx, &contact, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("contact")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &contact, nil
}

func (r *contactRepository) List(ctx context.Context, filter *model.ContactFilter) ([]*model.Contact, int, error) {
	q := &listQuery{}
	if filter.Status != "" {
		q.Eq("status", filter.Status)
	}
	if filter.Priority != "" {
		q.Eq("priority", filter.Priority)
	}
	q.Search(filter.Search, "name", "email", "subject", "message")

	countQuery, countArgs := q.Count("contacts")
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query, args := q.Select(contactColumns, "contacts", "created_at DESC", filter.PageParams)
	contacts := []*model.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, total, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	query := `
		UPDATE contacts SET
			status = :status, priority = :priority, tags = :tags,
			assigned_to = :assigned_to, notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`
	contact.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("contact")
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("contact")
	}
	return nil
}

func (r *contactRepository) Stats(ctx context.Context) (*model.Stats, error) {
	return countByStatusAndPriority(ctx, r.db, "contacts")
}
