package blog

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/service/blog"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
	"github.com/akashmongoosetech/shashank-backend/pkg/httputil"
)

type Handler struct {
	service *blog.Service
}

func NewHandler(service *blog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	blogs := r.Group("/blog")
	{
		blogs.POST("", h.Create)
		blogs.GET("", h.List)
		blogs.GET("/:slug", h.GetBySlug)
		blogs.PUT("/:id", h.Update)
		blogs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondCreated(c, "blog created", created)
}

func (h *Handler) List(c *gin.Context) {
	var filter model.BlogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	blogs, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "blogs retrieved", gin.H{
		"blogs":      blogs,
		"pagination": model.NewPagination(filter.Page, filter.Limit, total),
	})
}

// GetBySlug looks the post up by its URL slug, not its id. Public pages
// link by slug only.
func (h *Handler) GetBySlug(c *gin.Context) {
	found, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "blog retrieved", found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid blog id"))
		return
	}

	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "blog updated", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, apperrors.ValidationMsg("id", "must be a valid blog id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondError(c, err)
		return
	}

	httputil.RespondOK(c, "blog deleted", nil)
}
