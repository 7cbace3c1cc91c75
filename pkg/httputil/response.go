package httputil

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    interface{}            `json:"data,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// RespondOK sends a 200 success response
func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondCreated sends a 201 success response
func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError maps an error onto the envelope. Unknown errors never leak
// internals to the client.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}

	if appErr.Code == apperrors.ErrInternal {
		log.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
	}

	c.JSON(appErr.StatusCode(), Response{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}

// RespondBindError translates gin binding failures into field-level
// validation errors.
func RespondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{
				Field:   fe.Field(),
				Message: bindMessage(fe),
			})
		}
		RespondError(c, apperrors.Validation(fields...))
		return
	}
	RespondError(c, apperrors.ValidationMsg("body", "invalid request body"))
}

func bindMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
