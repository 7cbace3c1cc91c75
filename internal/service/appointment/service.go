package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akashmongoosetech/shashank-backend/internal/email"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

type Service struct {
	repo              repository.AppointmentRepository
	mailer            email.Service
	strictTransitions bool
}

func NewService(repo repository.AppointmentRepository, mailer email.Service, strictTransitions bool) *Service {
	return &Service{
		repo:              repo,
		mailer:            mailer,
		strictTransitions: strictTransitions,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	preferredDate, err := s.validateCreate(req)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		TreatmentType:   req.TreatmentType,
		PreferredDate:   preferredDate,
		PreferredTime:   req.PreferredTime,
		Message:         req.Message,
		Status:          model.AppointmentStatusPending,
		Priority:        model.PriorityMedium,
		DurationMinutes: model.DefaultAppointmentDuration,
		Tags:            []string{},
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	// Best-effort: the booking is already durable, notification failures
	// must not surface to the patient.
	s.notify(ctx, "appointment_ack", appointment.Email,
		s.mailer.SendAppointmentAcknowledgement(ctx, appointment))
	s.notify(ctx, "appointment_admin_alert", "admin",
		s.mailer.SendAppointmentAdminAlert(ctx, appointment))

	return appointment, nil
}

func (s *Service) validateCreate(req *model.CreateAppointmentRequest) (time.Time, error) {
	var fields []apperrors.FieldError

	if !model.ValidTreatmentType(req.TreatmentType) {
		fields = append(fields, apperrors.FieldError{
			Field: "treatmentType", Message: "is not a recognised treatment",
		})
	}
	if !model.ValidTimeSlot(req.PreferredTime) {
		fields = append(fields, apperrors.FieldError{
			Field: "preferredTime", Message: "is not an available time slot",
		})
	}

	preferredDate, err := time.Parse(model.DateLayout, req.PreferredDate)
	if err != nil {
		fields = append(fields, apperrors.FieldError{
			Field: "preferredDate", Message: "must be a date in YYYY-MM-DD format",
		})
	} else if preferredDate.Before(today()) {
		fields = append(fields, apperrors.FieldError{
			Field: "preferredDate", Message: "cannot be in the past",
		})
	}

	if len(fields) > 0 {
		return time.Time{}, apperrors.Validation(fields...)
	}
	return preferredDate, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, int, error) {
	filter.Normalize()
	if err := validateDateFilter(filter.DateFrom, "dateFrom"); err != nil {
		return nil, 0, err
	}
	if err := validateDateFilter(filter.DateTo, "dateTo"); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

func validateDateFilter(value, field string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, value); err != nil {
		return apperrors.ValidationMsg(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := appointment.Status
	if err := s.applyUpdate(appointment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if appointment.Status == model.AppointmentStatusConfirmed && previousStatus != model.AppointmentStatusConfirmed {
		s.notify(ctx, "appointment_confirmation", appointment.Email,
			s.mailer.SendAppointmentConfirmation(ctx, appointment))
	}
	return appointment, nil
}

func (s *Service) applyUpdate(appointment *model.Appointment, req *model.UpdateAppointmentRequest) error {
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return apperrors.ValidationMsg("priority", "must be one of low, medium, high")
		}
		appointment.Priority = *req.Priority
	}
	if req.ConfirmedDate != nil {
		date, err := time.Parse(model.DateLayout, *req.ConfirmedDate)
		if err != nil {
			return apperrors.ValidationMsg("confirmedDate", "must be a date in YYYY-MM-DD format")
		}
		appointment.ConfirmedDate = &date
	}
	if req.ConfirmedTime != nil {
		if !model.ValidTimeSlot(*req.ConfirmedTime) {
			return apperrors.ValidationMsg("confirmedTime", "is not an available time slot")
		}
		appointment.ConfirmedTime = req.ConfirmedTime
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < model.MinAppointmentDuration || *req.DurationMinutes > model.MaxAppointmentDuration {
			return apperrors.ValidationMsg("durationMinutes",
				fmt.Sprintf("must be between %d and %d", model.MinAppointmentDuration, model.MaxAppointmentDuration))
		}
		appointment.DurationMinutes = *req.DurationMinutes
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.AssignedTo != nil {
		appointment.AssignedTo = *req.AssignedTo
	}
	if req.Tags != nil {
		appointment.Tags = req.Tags
	}
	if req.CancelledReason != nil {
		appointment.CancelledReason = *req.CancelledReason
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return apperrors.ValidationMsg("status", "is not a valid appointment status")
		}
		if err := s.setStatus(appointment, *req.Status, false); err != nil {
			return err
		}
	}
	return nil
}

// setStatus writes the target status and applies its lifecycle side effects.
// Out-of-table transitions are rejected in strict mode and logged otherwise;
// force bypasses the table (used by the confirm action).
func (s *Service) setStatus(appointment *model.Appointment, to model.AppointmentStatus, force bool) error {
	from := appointment.Status
	if !allowedTransition(from, to) && !force {
		if s.strictTransitions {
			return apperrors.ValidationMsg("status",
				fmt.Sprintf("cannot transition from %s to %s", from, to))
		}
		log.Warn().
			Str("appointment_id", appointment.ID.String()).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("appointment status set outside the expected lifecycle")
	}

	appointment.Status = to
	switch to {
	case model.AppointmentStatusConfirmed:
		if appointment.ConfirmedDate == nil {
			date := appointment.PreferredDate
			appointment.ConfirmedDate = &date
		}
		if appointment.ConfirmedTime == nil {
			slot := appointment.PreferredTime
			appointment.ConfirmedTime = &slot
		}
	case model.AppointmentStatusCancelled:
		if appointment.CancelledAt == nil {
			now := time.Now()
			appointment.CancelledAt = &now
		}
	case model.AppointmentStatusCompleted:
		if appointment.ActualDate == nil {
			if appointment.ConfirmedDate != nil {
				appointment.ActualDate = appointment.ConfirmedDate
			} else {
				date := appointment.PreferredDate
				appointment.ActualDate = &date
			}
		}
		if appointment.ActualTime == nil {
			if appointment.ConfirmedTime != nil {
				appointment.ActualTime = appointment.ConfirmedTime
			} else {
				slot := appointment.PreferredTime
				appointment.ActualTime = &slot
			}
		}
	}
	return nil
}

// Confirm forces the appointment into the confirmed state, regardless of the
// transition table, and sends the confirmation email best-effort.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, req *model.ConfirmAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ConfirmedDate != nil {
		date, err := time.Parse(model.DateLayout, *req.ConfirmedDate)
		if err != nil {
			return nil, apperrors.ValidationMsg("confirmedDate", "must be a date in YYYY-MM-DD format")
		}
		appointment.ConfirmedDate = &date
	}
	if req.ConfirmedTime != nil {
		if !model.ValidTimeSlot(*req.ConfirmedTime) {
			return nil, apperrors.ValidationMsg("confirmedTime", "is not an available time slot")
		}
		appointment.ConfirmedTime = req.ConfirmedTime
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := s.setStatus(appointment, model.AppointmentStatusConfirmed, true); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(ctx, "appointment_confirmation", appointment.Email,
		s.mailer.SendAppointmentConfirmation(ctx, appointment))
	return appointment, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) notify(_ context.Context, scenario, recipient string, err error) {
	if err != nil {
		log.Warn().Err(err).
			Str("scenario", scenario).
			Str("recipient", recipient).
			Msg("notification email failed")
	}
}
