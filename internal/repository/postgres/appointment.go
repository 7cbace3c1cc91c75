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

const appointmentColumns = `id, name, email, phone, treatment_type, preferred_date, preferred_time,
	message, status, priority, confirmed_date, confirmed_time, actual_date, actual_time,
	duration_minutes, notes, assigned_to, tags, reminder_sent, cancelled_at, cancelled_reason,
	created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (
			:id, :name, :email, :phone, :treatment_type, :preferred_date, :preferred_time,
			:message, :status, :priority, :confirmed_date, :confirmed_time, :actual_date, :actual_time,
			:duration_minutes, :notes, :assigned_to, :tags, :reminder_sent, :cancelled_at, :cancelled_reason,
			:created_at, :updated_at
		)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, int, error) {
	q := &listQuery{}
	if filter.Status != "" {
		q.Eq("status", filter.Status)
	}
	if filter.Priority != "" {
		q.Eq("priority", filter.Priority)
	}
	if filter.TreatmentType != "" {
		q.Eq("treatment_type", filter.TreatmentType)
	}
	if filter.DateFrom != "" {
		q.Gte("preferred_date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q.Lte("preferred_date", filter.DateTo)
	}
	q.Search(filter.Search, "name", "email", "phone", "treatment_type")

	countQuery, countArgs := q.Count("appointments")
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query, args := q.Select(appointmentColumns, "appointments", "preferred_date ASC, preferred_time ASC", filter.PageParams)
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments SET
			status = :status, priority = :priority,
			confirmed_date = :confirmed_date, confirmed_time = :confirmed_time,
			actual_date = :actual_date, actual_time = :actual_time,
			duration_minutes = :duration_minutes, notes = :notes, assigned_to = :assigned_to,
			tags = :tags, reminder_sent = :reminder_sent,
			cancelled_at = :cancelled_at, cancelled_reason = :cancelled_reason,
			updated_at = :updated_at
		WHERE id = :id
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, appointment)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment")
	}
	return nil
}

func (r *appointmentRepository) Stats(ctx context.Context) (*model.Stats, error) {
	return countByStatusAndPriority(ctx, r.db, "appointments")
}
