package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

type Contact struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Email      string         `db:"email" json:"email"`
	Subject    string         `db:"subject" json:"subject"`
	Message    string         `db:"message" json:"message"`
	Status     ContactStatus  `db:"status" json:"status"`
	Priority   Priority       `db:"priority" json:"priority"`
	Tags       pq.StringArray `db:"tags" json:"tags"`
	AssignedTo string         `db:"assigned_to" json:"assignedTo,omitempty"`
	Notes      string         `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updatedAt"`
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Message string `json:"message" binding:"required,min=5,max=2000"`
}

type UpdateContactRequest struct {
	Status     *ContactStatus `json:"status"`
	Priority   *Priority      `json:"priority"`
	Tags       []string       `json:"tags"`
	AssignedTo *string        `json:"assignedTo"`
	Notes      *string        `json:"notes"`
}

type ContactFilter struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
	PageParams
}
