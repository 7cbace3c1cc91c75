package email

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/akashmongoosetech/shashank-backend/config"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/pkg/metrics"
)

// Mailer sends the notification scenarios over SMTP. When credentials are
// not configured every send logs a warning and no-ops.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	clinic  config.ClinicConfig
	enabled bool
	metrics *metrics.Metrics
}

func NewMailer(cfg config.SMTPConfig, clinic config.ClinicConfig, m *metrics.Metrics) *Mailer {
	mailer := &Mailer{
		from:    cfg.From,
		clinic:  clinic,
		enabled: cfg.Enabled(),
		metrics: m,
	}
	if mailer.enabled {
		mailer.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		if mailer.from == "" {
			mailer.from = cfg.Username
		}
	} else {
		log.Warn().Msg("SMTP credentials not configured, notification emails are disabled")
	}
	return mailer
}

func (m *Mailer) Enabled() bool {
	return m.enabled
}

func (m *Mailer) send(scenario, to, subject, templateName string, data map[string]interface{}) error {
	if to == "" {
		log.Warn().Str("scenario", scenario).Msg("no recipient configured, skipping send")
		return nil
	}
	if !m.enabled {
		log.Warn().Str("scenario", scenario).Str("to", to).Msg("email sending disabled, skipping")
		return nil
	}

	data["ClinicName"] = m.clinic.Name
	data["ClinicPhone"] = m.clinic.Phone
	data["ClinicAddress"] = m.clinic.Address

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		m.count(scenario, "failure")
		return fmt.Errorf("failed to render %s email: %w", scenario, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.count(scenario, "failure")
		return fmt.Errorf("failed to send %s email: %w", scenario, err)
	}

	m.count(scenario, "success")
	log.Info().Str("scenario", scenario).Str("to", to).Msg("notification email sent")
	return nil
}

func (m *Mailer) count(scenario, outcome string) {
	if m.metrics != nil {
		m.metrics.EmailSendsTotal.WithLabelValues(scenario, outcome).Inc()
	}
}

func (m *Mailer) SendContactAcknowledgement(_ context.Context, contact *model.Contact) error {
	return m.send("contact_ack", contact.Email,
		"We received your message - "+m.clinic.Name,
		"contact_ack", map[string]interface{}{
			"Name":    contact.Name,
			"Subject": contact.Subject,
		})
}

func (m *Mailer) SendContactAdminAlert(_ context.Context, contact *model.Contact) error {
	return m.send("contact_admin_alert", m.clinic.AdminEmail,
		"New contact message: "+contact.Subject,
		"contact_admin_alert", map[string]interface{}{
			"Name":    contact.Name,
			"Email":   contact.Email,
			"Subject": contact.Subject,
			"Message": contact.Message,
		})
}

func (m *Mailer) SendAppointmentAcknowledgement(_ context.Context, appointment *model.Appointment) error {
	return m.send("appointment_ack", appointment.Email,
		"Appointment request received - "+m.clinic.Name,
		"appointment_ack", appointmentData(appointment))
}

func (m *Mailer) SendAppointmentAdminAlert(_ context.Context, appointment *model.Appointment) error {
	return m.send("appointment_admin_alert", m.clinic.AdminEmail,
		"New appointment request "+appointment.ReferenceCode(),
		"appointment_admin_alert", appointmentData(appointment))
}

func (m *Mailer) SendAppointmentConfirmation(_ context.Context, appointment *model.Appointment) error {
	data := appointmentData(appointment)
	// Fall back to the requested slot if confirmation details are missing.
	data["ConfirmedDate"] = appointment.PreferredDate.Format(model.DateLayout)
	data["ConfirmedTime"] = appointment.PreferredTime
	if appointment.ConfirmedDate != nil {
		data["ConfirmedDate"] = appointment.ConfirmedDate.Format(model.DateLayout)
	}
	if appointment.ConfirmedTime != nil {
		data["ConfirmedTime"] = *appointment.ConfirmedTime
	}
	return m.send("appointment_confirmation", appointment.Email,
		"Your appointment is confirmed - "+m.clinic.Name,
		"appointment_confirmation", data)
}

func (m *Mailer) SendSubscriptionConfirmation(_ context.Context, subscriber *model.Subscriber) error {
	return m.send("subscription_confirmation", subscriber.Email,
		"Welcome to the "+m.clinic.Name+" newsletter",
		"subscription_confirmation", map[string]interface{}{})
}

func appointmentData(appointment *model.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"Name":          appointment.Name,
		"Email":         appointment.Email,
		"Phone":         appointment.Phone,
		"TreatmentType": appointment.TreatmentType,
		"PreferredDate": appointment.PreferredDate.Format(model.DateLayout),
		"PreferredTime": appointment.PreferredTime,
		"Message":       appointment.Message,
		"ReferenceCode": appointment.ReferenceCode(),
	}
}
