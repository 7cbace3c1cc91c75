package contact

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/service/contact"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
	"github.com/akashmongoosetech/shashank-backend/pkg/httputil"
)

const statsCacheKey = "contact_stats"

type Handler struct {
	service    *contact.Service
	statsCache *gocache.Cache
}

func NewHandler(service *contact.Service) *Handler {
	return &Handler{
		service:    service,
		statsCache: gocache.New(30*time.Second, time.Minute),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	contacts := r.Group("/contact")
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.List)
		contacts.GET("/stats/summary", h.Stats)
		contacts.GET("/:id", h.Get)
		contacts.PUT("/:id", h.Update)
		contacts.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateContactRequest
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
	httputil.RespondCreated(c, "contact message received", created)
}

func (h *Handler) List(c *gin.Context) {
	var filter model.ContactFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	contacts, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "contacts retrieved", gin.H{
		"contacts":   contacts,
		"pagination": model.NewPagination(filter.Page, filter.Limit, total),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid contact id"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "contact retrieved", found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid contact id"))
		return
	}

	var req model.UpdateContactRequest
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
	httputil.RespondOK(c, "contact updated", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid contact id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.Delete(statsCacheKey)
	httputil.RespondOK(c, "contact deleted", nil)
}

func (h *Handler) Stats(c *gin.Context) {
	if cached, ok := h.statsCache.Get(statsCacheKey); ok {
		httputil.RespondOK(c, "contact statistics", cached)
		return
	}

	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	h.statsCache.SetDefault(statsCacheKey, stats)
	httputil.RespondOK(c, "contact statistics", stats)
}
