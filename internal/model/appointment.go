package model

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

const (
	MinAppointmentDuration     = 15
	MaxAppointmentDuration     = 480
	DefaultAppointmentDuration = 60
)

// TreatmentTypes is the fixed list of clinic services bookable online.
var TreatmentTypes = []string{
	"General Consultation",
	"Acne Treatment",
	"Skin Whitening",
	"Laser Hair Removal",
	"Chemical Peel",
	"Hair Loss Treatment",
	"Anti-Aging Treatment",
	"Other",
}

// TimeSlots is the fixed list of bookable appointment slots.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

func ValidTreatmentType(t string) bool {
	for _, v := range TreatmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidTimeSlot(t string) bool {
	for _, v := range TimeSlots {
		if v == t {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	Name            string            `db:"name" json:"name"`
	Email           string            `db:"email" json:"email"`
	Phone           string            `db:"phone" json:"phone"`
	TreatmentType   string            `db:"treatment_type" json:"treatmentType"`
	PreferredDate   time.Time         `db:"preferred_date" json:"preferredDate"`
	PreferredTime   string            `db:"preferred_time" json:"preferredTime"`
	Message         string            `db:"message" json:"message,omitempty"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Priority        Priority          `db:"priority" json:"priority"`
	ConfirmedDate   *time.Time        `db:"confirmed_date" json:"confirmedDate,omitempty"`
	ConfirmedTime   *string           `db:"confirmed_time" json:"confirmedTime,omitempty"`
	ActualDate      *time.Time        `db:"actual_date" json:"actualDate,omitempty"`
	ActualTime      *string           `db:"actual_time" json:"actualTime,omitempty"`
	DurationMinutes int               `db:"duration_minutes" json:"durationMinutes"`
	Notes           string            `db:"notes" json:"notes,omitempty"`
	AssignedTo      string            `db:"assigned_to" json:"assignedTo,omitempty"`
	Tags            pq.StringArray    `db:"tags" json:"tags"`
	ReminderSent    bool              `db:"reminder_sent" json:"reminderSent"`
	CancelledAt     *time.Time        `db:"cancelled_at" json:"cancelledAt,omitempty"`
	CancelledReason string            `db:"cancelled_reason" json:"cancelledReason,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updatedAt"`
}

// ReferenceCode derives the human-readable booking reference from the
// trailing bytes of the appointment id.
func (a *Appointment) ReferenceCode() string {
	raw := a.ID[len(a.ID)-3:]
	return "APT-" + strings.ToUpper(hex.EncodeToString(raw))
}

// Summary is the public shape returned to the booking form.
type Summary struct {
	ID            uuid.UUID         `json:"id"`
	ReferenceCode string            `json:"referenceCode"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	TreatmentType string            `json:"treatmentType"`
	PreferredDate string            `json:"preferredDate"`
	PreferredTime string            `json:"preferredTime"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (a *Appointment) Summary() Summary {
	return Summary{
		ID:            a.ID,
		ReferenceCode: a.ReferenceCode(),
		Name:          a.Name,
		Email:         a.Email,
		TreatmentType: a.TreatmentType,
		PreferredDate: a.PreferredDate.Format(DateLayout),
		PreferredTime: a.PreferredTime,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

type CreateAppointmentRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email,max=254"`
	Phone         string `json:"phone" binding:"required,min=7,max=20"`
	TreatmentType string `json:"treatmentType" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
	Message       string `json:"message" binding:"max=1000"`
}

// UpdateAppointmentRequest holds the admin-updatable allow-list. Nil fields
// are left untouched.
type UpdateAppointmentRequest struct {
	Status          *AppointmentStatus `json:"status"`
	Priority        *Priority          `json:"priority"`
	ConfirmedDate   *string            `json:"confirmedDate"`
	ConfirmedTime   *string            `json:"confirmedTime"`
	DurationMinutes *int               `json:"durationMinutes"`
	Notes           *string            `json:"notes"`
	AssignedTo      *string            `json:"assignedTo"`
	Tags            []string           `json:"tags"`
	CancelledReason *string            `json:"cancelledReason"`
}

type ConfirmAppointmentRequest struct {
	ConfirmedDate *string `json:"confirmedDate"`
	ConfirmedTime *string `json:"confirmedTime"`
	Notes         *string `json:"notes"`
}

type AppointmentFilter struct {
	Status        string `form:"status"`
	Priority      string `form:"priority"`
	TreatmentType string `form:"treatmentType"`
	DateFrom      string `form:"dateFrom"`
	DateTo        string `form:"dateTo"`
	Search        string `form:"search"`
	PageParams
}
