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

const subscriberColumns = `id, email, source, created_at, updated_at`

func (r *subscriberRepository) Create(ctx context.Context, subscriber *model.Subscriber) error {
	query := `
		INSERT INTO subscribers (` + subscriberColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`
	subscriber.ID = uuid.New()
	subscriber.CreatedAt = time.Now()
	subscriber.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		subscriber.ID,
		subscriber.Email,
		subscriber.Source,
		subscriber.CreatedAt,
		subscriber.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("email is already subscribed")
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = $1`

	var subscriber model.Subscriber
	err := r.db.GetContext(ctx, &subscriber, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("subscriber")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return &subscriber, nil
}

func (r *subscriberRepository) List(ctx context.Context, filter *model.SubscriberFilter) ([]*model.Subscriber, int, error) {
	q := &listQuery{}
	q.Search(filter.Search, "email")

	countQuery, countArgs := q.Count("subscribers")
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	query, args := q.Select(subscriberColumns, "subscribers", "created_at DESC", filter.PageParams)
	subscribers := []*model.Subscriber{}
	if err := r.db.SelectContext(ctx, &subscribers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, total, nil
}
