package subscriber

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/akashmongoosetech/shashank-backend/internal/email"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

type Service struct {
	repo   repository.SubscriberRepository
	mailer email.Service
}

func NewService(repo repository.SubscriberRepository, mailer email.Service) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Subscribe is idempotent: an already-subscribed email returns the existing
// record as a success, without re-sending the confirmation email. The
// returned bool reports whether a new record was created.
func (s *Service) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscriber, bool, error) {
	address := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(ctx, address)
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	subscriber := &model.Subscriber{
		Email:  address,
		Source: req.Source,
	}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		// Lost a race with a concurrent subscribe for the same address;
		// the uniqueness constraint keeps this idempotent too.
		if apperrors.IsConflict(err) {
			existing, getErr := s.repo.GetByEmail(ctx, address)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	if err := s.mailer.SendSubscriptionConfirmation(ctx, subscriber); err != nil {
		log.Warn().Err(err).
			Str("scenario", "subscription_confirmation").
			Str("recipient", subscriber.Email).
			Msg("notification email failed")
	}
	return subscriber, true, nil
}

func (s *Service) List(ctx context.Context, filter *model.SubscriberFilter) ([]*model.Subscriber, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}
