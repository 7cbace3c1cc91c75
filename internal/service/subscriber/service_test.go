package subscriber

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

type fakeRepo struct {
	byEmail map[string]*model.Subscriber
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*model.Subscriber)}
}

var _ repository.SubscriberRepository = (*fakeRepo)(nil)

func (r *fakeRepo) Create(_ context.Context, s *model.Subscriber) error {
	if _, ok := r.byEmail[s.Email]; ok {
		return apperrors.Conflict("email is already subscribed")
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.byEmail[s.Email] = s
	return nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	s, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("subscriber")
	}
	return s, nil
}

func (r *fakeRepo) List(_ context.Context, _ *model.SubscriberFilter) ([]*model.Subscriber, int, error) {
	var out []*model.Subscriber
	for _, s := range r.byEmail {
		out = append(out, s)
	}
	return out, len(out), nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Enabled() bool { return true }

func (m *fakeMailer) record(scenario string) error {
	m.sent = append(m.sent, scenario)
	return nil
}

func (m *fakeMailer) SendContactAcknowledgement(context.Context, *model.Contact) error {
	return m.record("contact_ack")
}

func (m *fakeMailer) SendContactAdminAlert(context.Context, *model.Contact) error {
	return m.record("contact_admin_alert")
}

func (m *fakeMailer) SendAppointmentAcknowledgement(context.Context, *model.Appointment) error {
	return m.record("appointment_ack")
}

func (m *fakeMailer) SendAppointmentAdminAlert(context.Context, *model.Appointment) error {
	return m.record("appointment_admin_alert")
}

func (m *fakeMailer) SendAppointmentConfirmation(context.Context, *model.Appointment) error {
	return m.record("appointment_confirmation")
}

func (m *fakeMailer) SendSubscriptionConfirmation(context.Context, *model.Subscriber) error {
	return m.record("subscription_confirmation")
}

func TestSubscribe_NormalizesAndNotifies(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(newFakeRepo(), mailer)

	sub, created, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{
		Email:  "  Priya@Example.COM ",
		Source: "footer",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "priya@example.com", sub.Email)
	assert.Equal(t, "footer", sub.Source)
	assert.Equal(t, []string{"subscription_confirmation"}, mailer.sent)
}

func TestSubscribe_Idempotent(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(newFakeRepo(), mailer)

	first, created, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "priya@example.com"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "PRIYA@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// Confirmation email only went out for the first subscribe.
	assert.Len(t, mailer.sent, 1)
}
