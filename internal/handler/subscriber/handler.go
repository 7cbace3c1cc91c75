package subscriber

import (
	"github.com/gin-gonic/gin"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/service/subscriber"
	"github.com/akashmongoosetech/shashank-backend/pkg/httputil"
)

type Handler struct {
	service *subscriber.Service
}

func NewHandler(service *subscriber.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	subscribers := r.Group("/subscriber")
	{
		subscribers.POST("", h.Subscribe)
		subscribers.GET("", h.List)
	}
}

// Subscribe is idempotent. Re-subscribing an existing address returns
// the stored record with 200 instead of a conflict.
func (h *Handler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	sub, created, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	if created {
		httputil.RespondCreated(c, "subscribed successfully", sub)
		return
	}
	httputil.RespondOK(c, "email is already subscribed", sub)
}

func (h *Handler) List(c *gin.Context) {
	var filter model.SubscriberFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	subscribers, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "subscribers retrieved", gin.H{
		"subscribers": subscribers,
		"pagination":  model.NewPagination(filter.Page, filter.Limit, total),
	})
}
