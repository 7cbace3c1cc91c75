package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/akashmongoosetech/shashank-backend/internal/email"
)

type Handler struct {
	db     *sqlx.DB
	mailer email.Service
}

func NewHandler(db *sqlx.DB, mailer email.Service) *Handler {
	return &Handler{db: db, mailer: mailer}
}

func (h *Handler) Check(c *gin.Context) {
	code := http.StatusOK
	overall := "ok"
	dbStatus := "up"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		code = http.StatusServiceUnavailable
		overall = "degraded"
		dbStatus = "down"
	}

	emailStatus := "disabled"
	if h.mailer.Enabled() {
		emailStatus = "enabled"
	}

	c.JSON(code, gin.H{
		"status":    overall,
		"database":  dbStatus,
		"email":     emailStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
