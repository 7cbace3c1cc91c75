package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Source    string    `db:"source" json:"source,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email,max=254"`
	Source string `json:"source" binding:"max=100"`
}

type SubscriberFilter struct {
	Search string `form:"search"`
	PageParams
}
