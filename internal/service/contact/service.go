package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akashmongoosetech/shashank-backend/internal/email"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

type Service struct {
	repo   repository.ContactRepository
	mailer email.Service
}

func NewService(repo repository.ContactRepository, mailer email.Service) *Service {
	return &Service{repo: repo, mailer: mailer}
}

func (s *Service) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   model.ContactStatusNew,
		Priority: model.PriorityMedium,
		Tags:     []string{},
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	// Best-effort: the submission is already durable.
	s.notify("contact_ack", contact.Email, s.mailer.SendContactAcknowledgement(ctx, contact))
	s.notify("contact_admin_alert", "admin", s.mailer.SendContactAdminAlert(ctx, contact))

	return contact, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.ContactFilter) ([]*model.Contact, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateContactRequest) (*model.Contact, error) {
	contact, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.ValidationMsg("status", "must be one of new, read, replied, archived")
		}
		contact.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, apperrors.ValidationMsg("priority", "must be one of low, medium, high")
		}
		contact.Priority = *req.Priority
	}
	if req.Tags != nil {
		contact.Tags = req.Tags
	}
	if req.AssignedTo != nil {
		contact.AssignedTo = *req.AssignedTo
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) notify(scenario, recipient string, err error) {
	if err != nil {
		log.Warn().Err(err).
			Str("scenario", scenario).
			Str("recipient", recipient).
			Msg("notification email failed")
	}
}
