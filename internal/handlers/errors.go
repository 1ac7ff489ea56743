package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/stitchworks/trim_inventory_app/internal/apperrors"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
)

// bindingErrorResponse turns a gin binding error into the API error shape,
// attributing the failure to a single field when the validator identifies one.
func bindingErrorResponse(err error) dto.ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dto.ErrorResponse{
			Message: validationMessage(fe),
			Field:   lowerFirst(fe.Field()),
		}
	}
	return dto.ErrorResponse{Message: "Invalid request body"}
}

func validationMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// handleServiceError maps service errors to HTTP responses at the request
// boundary. Unexpected errors are logged with detail but reported generically.
func handleServiceError(c *gin.Context, err error, notFoundMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: trimSentinel(err, apperrors.ErrValidation)})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFoundMessage})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Insufficient quantity"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Material already exists"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"})
	}
}

// trimSentinel strips the sentinel prefix ("validation error: ") so clients
// see only the human part of the message.
func trimSentinel(err, sentinel error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return cut
	}
	return msg
}
