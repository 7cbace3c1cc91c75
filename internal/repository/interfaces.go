package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	List(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, int, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.Stats, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	Get(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, filter *model.ContactFilter) ([]*model.Contact, int, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.Stats, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	Get(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter *model.BlogFilter) ([]*model.Blog, int, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *model.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context, filter *model.SubscriberFilter) ([]*model.Subscriber, int, error)
}
