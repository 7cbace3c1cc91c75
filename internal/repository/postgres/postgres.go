package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/akashmongoosetech/shashank-backend/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

type contactRepository struct {
	db *sqlx.DB
}

type blogRepository struct {
	db *sqlx.DB
}

type subscriberRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func NewBlogRepository(db *sqlx.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func NewSubscriberRepository(db *sqlx.DB) repository.SubscriberRepository {
	return &subscriberRepository{db: db}
}
