package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	"github.com/akashmongoosetech/shashank-backend/internal/service/appointment"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

type fakeRepo struct {
	byID  map[uuid.UUID]*model.Appointment
	order []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*model.Appointment)}
}

var _ repository.AppointmentRepository = (*fakeRepo)(nil)

func (r *fakeRepo) Create(_ context.Context, a *model.Appointment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("appointment")
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, int, error) {
	total := len(r.order)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	out := []*model.Appointment{}
	for _, id := range r.order[start:end] {
		out = append(out, r.byID[id])
	}
	return out, total, nil
}

func (r *fakeRepo) Update(_ context.Context, a *model.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperrors.NotFound("appointment")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.NotFound("appointment")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) Stats(_ context.Context) (*model.Stats, error) {
	return &model.Stats{Total: len(r.byID)}, nil
}

type noopMailer struct{}

func (noopMailer) Enabled() bool { return false }

func (noopMailer) SendContactAcknowledgement(context.Context, *model.Contact) error     { return nil }
func (noopMailer) SendContactAdminAlert(context.Context, *model.Contact) error          { return nil }
func (noopMailer) SendAppointmentAcknowledgement(context.Context, *model.Appointment) error {
	return nil
}
func (noopMailer) SendAppointmentAdminAlert(context.Context, *model.Appointment) error { return nil }
func (noopMailer) SendAppointmentConfirmation(context.Context, *model.Appointment) error {
	return nil
}
func (noopMailer) SendSubscriptionConfirmation(context.Context, *model.Subscriber) error { return nil }

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func setupRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	svc := appointment.NewService(repo, noopMailer{}, false)
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Asha Patel",
		"email":         "asha@example.com",
		"phone":         "9876543210",
		"treatmentType": "Acne Treatment",
		"preferredDate": time.Now().AddDate(0, 0, 7).Format(model.DateLayout),
		"preferredTime": "10:00 AM",
	}
}

func TestCreateAppointment(t *testing.T) {
	engine := setupRouter(newFakeRepo())

	w, env := doJSON(t, engine, http.MethodPost, "/api/appointment", bookingPayload())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	ref, ok := env.Data["referenceCode"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^APT-[0-9A-F]{6}$`, ref)
	assert.Equal(t, "pending", env.Data["status"])
}

func TestCreateAppointment_MissingFields(t *testing.T) {
	engine := setupRouter(newFakeRepo())

	w, env := doJSON(t, engine, http.MethodPost, "/api/appointment", map[string]interface{}{
		"name": "Asha Patel",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
}

func TestCreateAppointment_UnknownTreatment(t *testing.T) {
	engine := setupRouter(newFakeRepo())

	payload := bookingPayload()
	payload["treatmentType"] = "Palm Reading"

	w, env := doJSON(t, engine, http.MethodPost, "/api/appointment", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "treatmentType", env.Errors[0].Field)
}

func TestListPagination_PageBeyondData(t *testing.T) {
	repo := newFakeRepo()
	engine := setupRouter(repo)

	for i := 0; i < 3; i++ {
		payload := bookingPayload()
		payload["email"] = fmt.Sprintf("patient%d@example.com", i)
		w, _ := doJSON(t, engine, http.MethodPost, "/api/appointment", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := doJSON(t, engine, http.MethodGet, "/api/appointment?page=5&limit=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items, ok := env.Data["appointments"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)

	pagination, ok := env.Data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalItems"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
}

func TestGetAppointment_InvalidAndMissingID(t *testing.T) {
	engine := setupRouter(newFakeRepo())

	w, _ := doJSON(t, engine, http.MethodGet, "/api/appointment/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, engine, http.MethodGet, "/api/appointment/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestConfirmEndpoint(t *testing.T) {
	repo := newFakeRepo()
	engine := setupRouter(repo)

	w, env := doJSON(t, engine, http.MethodPost, "/api/appointment", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := env.Data["id"].(string)

	slot := "03:00 PM"
	w, env = doJSON(t, engine, http.MethodPost, "/api/appointment/"+id+"/confirm",
		map[string]interface{}{"confirmedTime": slot})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", env.Data["status"])
	assert.Equal(t, slot, env.Data["confirmedTime"])
	assert.NotEmpty(t, env.Data["confirmedDate"])
}

func TestTreatmentOptions(t *testing.T) {
	engine := setupRouter(newFakeRepo())

	w, env := doJSON(t, engine, http.MethodGet, "/api/appointment/treatments", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	types, ok := env.Data["treatmentTypes"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, types, "General Consultation")

	slots, ok := env.Data["timeSlots"].([]interface{})
	require.True(t, ok)
	assert.NotContains(t, slots, "01:00 PM")
}

func TestStatsEndpoint(t *testing.T) {
	repo := newFakeRepo()
	engine := setupRouter(repo)

	w, env := doJSON(t, engine, http.MethodGet, "/api/appointment/stats/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), env.Data["total"])

	// Writes invalidate the cached summary, so the booking shows up
	// immediately.
	w, _ = doJSON(t, engine, http.MethodPost, "/api/appointment", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	_, env = doJSON(t, engine, http.MethodGet, "/api/appointment/stats/summary", nil)
	assert.Equal(t, float64(1), env.Data["total"])
}
