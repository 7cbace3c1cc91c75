package appointment

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/service/appointment"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
	"github.com/akashmongoosetech/shashank-backend/pkg/httputil"
)

const statsCacheKey = "appointment_stats"

type Handler struct {
	service    *appointment.Service
	statsCache *gocache.Cache
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{
		service:    service,
		statsCache: gocache.New(30*time.Second, time.Minute),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointment")
	{
		appointments.POST("", h.Create)
		appointments.GET("", h.List)
		appointments.GET("/treatments", h.Treatments)
		appointments.GET("/stats/summary", h.Stats)
		appointments.GET("/:id", h.Get)
		appointments.PUT("/:id", h.Update)
		appointments.POST("/:id/confirm", h.Confirm)
		appointments.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.Delete(statsCacheKey)
	httputil.RespondCreated(c, "appointment request submitted", created.Summary())
}

func (h *Handler) List(c *gin.Context) {
	var filter model.AppointmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	appointments, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "appointments retrieved", gin.H{
		"appointments": appointments,
		"pagination":   model.NewPagination(filter.Page, filter.Limit, total),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid appointment id"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "appointment retrieved", found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid appointment id"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.Delete(statsCacheKey)
	httputil.RespondOK(c, "appointment updated", updated)
}

func (h *Handler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid appointment id"))
		return
	}

	// Every confirm field is optional, so an empty body is fine.
	var req model.ConfirmAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondBindError(c, err)
			return
		}
	}

	confirmed, err := h.service.Confirm(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.Delete(statsCacheKey)
	httputil.RespondOK(c, "appointment confirmed", confirmed)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid appointment id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.Delete(statsCacheKey)
	httputil.RespondOK(c, "appointment deleted", nil)
}

func (h *Handler) Stats(c *gin.Context) {
	if cached, ok := h.statsCache.Get(statsCacheKey); ok {
		httputil.RespondOK(c, "appointment statistics", cached)
		return
	}

	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.SetDefault(statsCacheKey, stats)
	httputil.RespondOK(c, "appointment statistics", stats)
}

// Treatments serves the static lists the booking form renders.
func (h *Handler) Treatments(c *gin.Context) {
	httputil.RespondOK(c, "treatment options retrieved", gin.H{
		"treatmentTypes": model.TreatmentTypes,
		"timeSlots":      model.TimeSlots,
	})
}
