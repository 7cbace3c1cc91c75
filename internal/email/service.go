package email

import (
	"context"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

// Service dispatches the notification scenarios the site triggers. Every
// method is a single synchronous send; callers decide whether a failure is
// fatal.
type Service interface {
	Enabled() bool
	SendContactAcknowledgement(ctx context.Context, contact *model.Contact) error
	SendContactAdminAlert(ctx context.Context, contact *model.Contact) error
	SendAppointmentAcknowledgement(ctx context.Context, appointment *model.Appointment) error
	SendAppointmentAdminAlert(ctx context.Context, appointment *model.Appointment) error
	SendAppointmentConfirmation(ctx context.Context, appointment *model.Appointment) error
	SendSubscriptionConfirmation(ctx context.Context, subscriber *model.Subscriber) error
}
